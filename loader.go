package moneybook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// RegistryFile is the name of the registry document inside a books
// directory.
const RegistryFile = "registry.json"

// FindLedger returns the unique ledger matching the sync key under the
// books directory. An empty key with no ledger files yields a fresh
// default ledger; an empty key with exactly one file loads it.
func FindLedger(path, key string) (*Ledger, error) {
	if key != "" {
		if err := ValidateSyncKey(key); err != nil {
			return nil, err
		}
	}
	ledgerPaths, err := findLedgerPaths(path, key)
	if err != nil {
		return nil, err
	}
	switch len(ledgerPaths) {
	case 0:
		if key == "" {
			l := NewLedger()
			l.name = "moneybook"
			return l, nil
		}
		return nil, fmt.Errorf("could not find ledger %q", key)
	case 1:
		return loadLedgerFile(path, ledgerPaths[0])
	default:
		return nil, fmt.Errorf("multiple ledgers found for %q", key)
	}
}

// loadLedgerFile opens, decodes, and names a ledger from a file path.
func loadLedgerFile(booksPath, fullPath string) (*Ledger, error) {
	relPath, err := filepath.Rel(booksPath, fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not determine relative path for %q: %w", fullPath, err)
	}

	f, err := os.Open(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", fullPath, err)
	}
	defer f.Close()

	ledger, err := DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", fullPath, err)
	}
	ledger.name = strings.TrimSuffix(relPath, ".jsonl")
	return ledger, nil
}

// SaveLedger saves a ledger to "<path>/<name>.jsonl".
func SaveLedger(path string, ledger *Ledger) error {
	if ledger.Name() == "" {
		return fmt.Errorf("cannot save ledger with an empty name")
	}

	filePath := filepath.Join(path, ledger.Name()+".jsonl")
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("could not create directory for ledger %q: %w", filePath, err)
	}

	f, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", filePath, err)
	}
	defer f.Close()

	return EncodeLedger(f, ledger)
}

// findLedgerPaths scans the books directory for ledger files matching
// the sync key (all of them when the key is empty).
func findLedgerPaths(path, key string) ([]string, error) {
	var ledgers []string

	err := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".jsonl") {
			return nil
		}
		rel, err := filepath.Rel(path, p)
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(rel, ".jsonl")
		if key == "" || name == key {
			ledgers = append(ledgers, p)
		}
		return nil
	})
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan books directory %q: %w", path, err)
	}
	return ledgers, nil
}

// LoadRegistry reads the registry document of a books directory, or
// returns a fresh default registry when the file does not exist yet.
func LoadRegistry(path string) (*Registry, error) {
	f, err := os.Open(filepath.Join(path, RegistryFile))
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open registry: %w", err)
	}
	defer f.Close()
	return DecodeRegistry(f)
}

// SaveRegistry persists the registry document of a books directory.
func SaveRegistry(path string, reg *Registry) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("could not create books directory %q: %w", path, err)
	}
	f, err := os.Create(filepath.Join(path, RegistryFile))
	if err != nil {
		return fmt.Errorf("could not create registry file: %w", err)
	}
	defer f.Close()
	return EncodeRegistry(f, reg)
}
