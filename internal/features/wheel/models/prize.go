package models

import "fmt"

// Prize is one segment of the wheel. The catalog index of a prize is the
// stable identifier the front end uses to render which segment stopped; the
// code identifies the prize type independently of its position.
type Prize struct {
	Text   string  `json:"text"`
	Code   string  `json:"code"`
	Limit  int     `json:"limit"` // maximum awards; <= 0 means unbounded
	Weight float64 `json:"weight"`
	NoWin  bool    `json:"no_win"`
}

// Unbounded reports whether the prize has no award cap.
func (p Prize) Unbounded() bool {
	return p.Limit <= 0
}

// Catalog is the ordered, immutable prize list loaded at startup.
type Catalog struct {
	Prizes []Prize
}

// Validate checks the startup invariants: non-empty list, unique codes,
// positive weights, and exactly one unbounded no-win entry.
func (c *Catalog) Validate() error {
	if len(c.Prizes) == 0 {
		return fmt.Errorf("catalog is empty")
	}

	seen := make(map[string]bool, len(c.Prizes))
	noWinCount := 0
	for i, p := range c.Prizes {
		if p.Code == "" {
			return fmt.Errorf("prize %d: code cannot be empty", i)
		}
		if seen[p.Code] {
			return fmt.Errorf("prize %d: duplicate code %q", i, p.Code)
		}
		seen[p.Code] = true

		if p.Weight <= 0 {
			return fmt.Errorf("prize %q: weight must be positive", p.Code)
		}

		if p.NoWin {
			noWinCount++
			if !p.Unbounded() {
				return fmt.Errorf("prize %q: no-win entry must be unbounded", p.Code)
			}
		}
	}

	if noWinCount != 1 {
		return fmt.Errorf("catalog must have exactly one no-win entry, got %d", noWinCount)
	}

	return nil
}

// NoWinIndex returns the catalog index of the consolation entry.
func (c *Catalog) NoWinIndex() int {
	for i, p := range c.Prizes {
		if p.NoWin {
			return i
		}
	}
	return -1
}

// NoWinCode returns the code of the consolation entry.
func (c *Catalog) NoWinCode() string {
	if i := c.NoWinIndex(); i >= 0 {
		return c.Prizes[i].Code
	}
	return ""
}

// ByCode looks a prize up by its code.
func (c *Catalog) ByCode(code string) (Prize, bool) {
	for _, p := range c.Prizes {
		if p.Code == code {
			return p, true
		}
	}
	return Prize{}, false
}

// Codes returns the prize codes in catalog order.
func (c *Catalog) Codes() []string {
	codes := make([]string, len(c.Prizes))
	for i, p := range c.Prizes {
		codes[i] = p.Code
	}
	return codes
}
