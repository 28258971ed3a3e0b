// Package renderer turns moneybook reports into markdown documents,
// ready for a terminal markdown renderer or a plain pager.
package renderer

import (
	"embed"
	"strings"
	"text/template"
)

//go:embed templates/*.md
var templates embed.FS

var reportTemplates = template.Must(template.New("reports").ParseFS(templates, "templates/*.md"))

// renderTemplate executes one of the embedded templates against data.
// Rendering is best effort: a template error yields an error line in the
// output rather than failing the surrounding command.
func renderTemplate(file string, data any) string {
	var b strings.Builder
	if err := reportTemplates.ExecuteTemplate(&b, file, data); err != nil {
		return "rendering error: " + err.Error() + "\n"
	}
	return b.String()
}
