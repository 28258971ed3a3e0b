package agent

import (
	"context"
	"fmt"

	"github.com/yhlin/moneybook"
	"github.com/yhlin/moneybook/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are the facilitator of a personal bookkeeping assistant.
			The user asks about their own income, spending and balances.

			Learn from the Tools what each expert can do and delegate to
			them. They keep context of your previous questions.

			Devise a plan of questions for the experts and compose the
			best answer to the user's request. Amounts are in the user's
			base currency unless a report says otherwise.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper returns the expert that reads the user's books. It
// loads the ledger and registry from the books folder on every call, so
// the assistant always sees the latest recorded transactions.
func NewBookkeeper(books, ledgerKey string) *Expert {
	lib := []Function{
		balancesFunc(books, ledgerKey),
		reportFunc(books, ledgerKey, "Cashflow",
			"Cashflow sums income and expense over a rolling window and nets them.",
			func(l *moneybook.Ledger, reg *moneybook.Registry, w moneybook.Window, on moneybook.Date) string {
				return renderer.Cashflow(moneybook.NewCashflowAsOf(l, reg, w, on))
			}),
		reportFunc(books, ledgerKey, "ExpenseBreakdown",
			"ExpenseBreakdown totals expenses per category over a rolling window, largest first.",
			func(l *moneybook.Ledger, reg *moneybook.Registry, w moneybook.Window, on moneybook.Date) string {
				return renderer.Breakdown(moneybook.NewBreakdownAsOf(l, reg, moneybook.KindExpense, w, on))
			}),
		reportFunc(books, ledgerKey, "ExpenseStatistics",
			"ExpenseStatistics gives count, mean, min, max and quartiles of expense amounts over a rolling window.",
			func(l *moneybook.Ledger, reg *moneybook.Registry, w moneybook.Window, on moneybook.Date) string {
				return renderer.ExpenseStats(w.Range(on), moneybook.NewExpenseStatsAsOf(l, reg, w, on))
			}),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's ledger and can
		compute balances, cashflow summaries, category breakdowns and expense
		statistics. Ask it whenever a question needs actual figures from the books.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of the user's personal ledger.
				Use the available tools to read the books. Other experts
				might phrase questions loosely, figure out which report
				answers them. Report windows are 7, 30, 90, 180 or 365
				days ending on a given date.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// NewAdvisor returns an expert grounded by web search, for questions
// the books cannot answer, like current exchange rates or price levels.
func NewAdvisor() *Expert {
	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. It searches the web for information
		outside the user's books: exchange rates, typical prices, financial news.
		Ask the Advisor whenever a question needs recent outside information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal finance advisor. Use Google Search to
				ground your answers about currencies, prices and financial
				news. Keep answers short and factual.
			`}}},
		},
	}
}

// Func implements Function from a declaration and a callback.
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func balancesFunc(books, ledgerKey string) *Func {
	const name = "Balances"
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: name,
			Description: `Balances folds the whole ledger into one balance per account
			and values the total in the base currency. Takes no arguments.`,
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of account balances with the base-currency net worth.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			l, reg, err := loadBooks(books, ledgerKey)
			if err != nil {
				return errResponse(id, name, err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": renderer.Balances(l, reg),
				},
			}
		},
	}
}

// reportFunc builds a windowed report tool. All windowed reports share
// the same window and date arguments.
func reportFunc(books, ledgerKey, name, description string, render func(*moneybook.Ledger, *moneybook.Registry, moneybook.Window, moneybook.Date) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"window": {
						Type:        genai.TypeString,
						Description: "The rolling window: 'week', 'month', 'quarter', 'half-year' or 'year'. Defaults to 'month'.",
					},
					"date": {
						Type:        genai.TypeString,
						Description: "The day the window ends on, as YYYY-MM-DD or a relative day like '-3d'. Defaults to today.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			w, err := parseWindowArg(args)
			if err != nil {
				return errResponse(id, name, err)
			}
			on, err := parseDateArg(args)
			if err != nil {
				return errResponse(id, name, err)
			}
			l, reg, err := loadBooks(books, ledgerKey)
			if err != nil {
				return errResponse(id, name, err)
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": render(l, reg, w, on),
				},
			}
		},
	}
}

func loadBooks(books, ledgerKey string) (*moneybook.Ledger, *moneybook.Registry, error) {
	l, err := moneybook.FindLedger(books, ledgerKey)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load ledger: %w", err)
	}
	reg, err := moneybook.LoadRegistry(books)
	if err != nil {
		return nil, nil, fmt.Errorf("could not load registry: %w", err)
	}
	return l, reg, nil
}

func parseWindowArg(args map[string]any) (moneybook.Window, error) {
	iwindow, ok := args["window"]
	if !ok {
		return moneybook.Month, nil
	}
	swindow, ok := iwindow.(string)
	if !ok {
		return 0, fmt.Errorf("argument 'window' is not a string but %T", iwindow)
	}
	return moneybook.ParseWindow(swindow)
}

func parseDateArg(args map[string]any) (moneybook.Date, error) {
	idate, ok := args["date"]
	if !ok {
		return moneybook.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return moneybook.Date{}, fmt.Errorf("argument 'date' is not a string but %T", idate)
	}
	date, err := moneybook.ParseDate(sdate)
	if err != nil {
		return moneybook.Date{}, fmt.Errorf("argument 'date' must be YYYY-MM-DD or a relative day like '-3d', got %q", sdate)
	}
	return date, nil
}
