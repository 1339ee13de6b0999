package pattern

import "strings"

// CurrentName is the slot a copied or cut selection is registered under.
const CurrentName = "current"

// Library is a session-scoped registry of patterns keyed by name.
type Library struct {
	order  []string
	byName map[string]*Config
}

// NewLibrary returns an empty registry.
func NewLibrary() *Library {
	return &Library{byName: map[string]*Config{}}
}

// Register stores cfg under its name. Registering an existing name replaces
// the stored pattern but keeps its position in Names.
func (l *Library) Register(cfg *Config) {
	if cfg == nil {
		return
	}
	if _, ok := l.byName[cfg.Name]; !ok {
		l.order = append(l.order, cfg.Name)
	}
	l.byName[cfg.Name] = cfg
}

// Lookup returns the pattern registered under name.
func (l *Library) Lookup(name string) (*Config, bool) {
	cfg, ok := l.byName[name]
	return cfg, ok
}

// Len returns the number of registered patterns.
func (l *Library) Len() int { return len(l.order) }

// Names lists pattern names in registration order.
func (l *Library) Names() []string {
	return append([]string(nil), l.order...)
}

// Filter returns up to limit names matching query: names starting with query
// come first, then names containing it elsewhere. A non-positive limit means
// no cap.
func (l *Library) Filter(query string, limit int) []string {
	return FilterNames(l.order, query, limit)
}

// FilterNames applies the Library.Filter ordering to an arbitrary name list.
func FilterNames(names []string, query string, limit int) []string {
	var out []string
	seen := map[string]bool{}
	full := func() bool { return limit > 0 && len(out) >= limit }
	for _, n := range names {
		if full() {
			return out
		}
		if strings.HasPrefix(n, query) && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	for _, n := range names {
		if full() {
			return out
		}
		if strings.Contains(n, query) && !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	return out
}
