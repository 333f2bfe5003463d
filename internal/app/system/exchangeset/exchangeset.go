// Package exchangeset is the configured list of exchanges the dashboard
// trades on and shows tickers for.
package exchangeset

import "strings"

// Set is an ordered, case-insensitive set of exchange names.
type Set struct {
	names []string
	index map[string]string // folded -> configured spelling
}

// Parse reads a comma-separated list. Blank entries and repeats are dropped;
// the first spelling of a name wins.
func Parse(csv string) Set {
	return New(strings.Split(csv, ",")...)
}

// New builds a set from names.
func New(names ...string) Set {
	s := Set{index: make(map[string]string, len(names))}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, dup := s.index[key]; dup {
			continue
		}
		s.index[key] = n
		s.names = append(s.names, n)
	}
	return s
}

// Names returns the configured names in order.
func (s Set) Names() []string {
	out := make([]string, len(s.names))
	copy(out, s.names)
	return out
}

// Len returns the number of exchanges.
func (s Set) Len() int { return len(s.names) }

// Canonical returns the configured spelling of name and whether it is enabled.
func (s Set) Canonical(name string) (string, bool) {
	n, ok := s.index[strings.ToLower(strings.TrimSpace(name))]
	return n, ok
}
