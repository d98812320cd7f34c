package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCatalog returns the built-in promotion wheel. Code 0007 is the
// consolation segment and stays eligible after everything else runs out.
func DefaultCatalog() *Catalog {
	return &Catalog{Prizes: []Prize{
		{Text: "2 months of free formula", Code: "0001", Limit: 2, Weight: 1},
		{Text: "One free 800g tin", Code: "0002", Limit: 5, Weight: 2},
		{Text: "Baby feeding gift set", Code: "0003", Limit: 10, Weight: 4},
		{Text: "20% discount voucher", Code: "0004", Limit: 50, Weight: 8},
		{Text: "10% discount voucher", Code: "0005", Limit: 100, Weight: 12},
		{Text: "Free shipping voucher", Code: "0006", Limit: 200, Weight: 15},
		{Text: "Better luck next time", Code: "0007", Limit: 0, Weight: 18, NoWin: true},
	}}
}

// LoadCatalog reads a catalog from a JSON file, falling back to the built-in
// one when path is empty. The result is validated either way.
func LoadCatalog(path string) (*Catalog, error) {
	catalog := DefaultCatalog()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog file: %w", err)
		}

		var prizes []Prize
		if err := json.Unmarshal(data, &prizes); err != nil {
			return nil, fmt.Errorf("failed to parse catalog file: %w", err)
		}
		catalog = &Catalog{Prizes: prizes}
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return catalog, nil
}
