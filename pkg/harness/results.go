package harness

import "github.com/vertti/suricheck/pkg/suricata"

// ResultSet maps each check name to whether it passed. Keys are fixed at
// construction and keep their insertion order for the summary.
type ResultSet struct {
	order  []string
	values map[string]bool
}

// Entry is one name/outcome pair of a ResultSet.
type Entry struct {
	Name   string
	Passed bool
}

// NewResultSet returns a set with every name initialized to false.
func NewResultSet(names ...string) *ResultSet {
	rs := &ResultSet{values: make(map[string]bool, len(names))}
	for _, n := range names {
		if _, dup := rs.values[n]; dup {
			continue
		}
		rs.order = append(rs.order, n)
		rs.values[n] = false
	}
	return rs
}

// DefaultResultSet returns the five Suricata check keys.
func DefaultResultSet() *ResultSet {
	return NewResultSet(
		suricata.NameInstallation,
		suricata.NameConfiguration,
		suricata.NameService,
		suricata.NameDetection,
		suricata.NameRules,
	)
}

// Set records an outcome. Unknown names are ignored so the key set never grows.
func (rs *ResultSet) Set(name string, passed bool) {
	if _, ok := rs.values[name]; ok {
		rs.values[name] = passed
	}
}

// Get returns the recorded outcome for name.
func (rs *ResultSet) Get(name string) bool {
	return rs.values[name]
}

// Len returns the number of checks.
func (rs *ResultSet) Len() int {
	return len(rs.order)
}

// Passed returns how many checks passed.
func (rs *ResultSet) Passed() int {
	n := 0
	for _, v := range rs.values {
		if v {
			n++
		}
	}
	return n
}

// AllPassed reports whether every check passed.
func (rs *ResultSet) AllPassed() bool {
	return rs.Passed() == rs.Len()
}

// Entries returns the outcomes in key order.
func (rs *ResultSet) Entries() []Entry {
	entries := make([]Entry, 0, len(rs.order))
	for _, n := range rs.order {
		entries = append(entries, Entry{Name: n, Passed: rs.values[n]})
	}
	return entries
}
