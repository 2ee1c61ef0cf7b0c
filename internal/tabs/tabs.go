// Package tabs tracks which of a fixed set of panels is visible.
package tabs

// Set is an ordered list of tab names with exactly one active tab.
// The zero value has no tabs.
type Set struct {
	names  []string
	active int
}

// New returns a set with the first tab active.
func New(names ...string) Set {
	return Set{names: append([]string(nil), names...)}
}

// Names returns the tab names in order.
func (s Set) Names() []string {
	return append([]string(nil), s.names...)
}

// Len returns the number of tabs.
func (s Set) Len() int { return len(s.names) }

// Active returns the index of the active tab, or -1 for an empty set.
func (s Set) Active() int {
	if len(s.names) == 0 {
		return -1
	}
	return s.active
}

// ActiveName returns the name of the active tab, or "" for an empty set.
func (s Set) ActiveName() string {
	if len(s.names) == 0 {
		return ""
	}
	return s.names[s.active]
}

// IsActive reports whether tab i is the active one.
func (s Set) IsActive(i int) bool {
	return len(s.names) > 0 && i == s.active
}

// Activate makes tab i the only active tab. Out-of-range indexes leave the
// set unchanged.
func (s Set) Activate(i int) Set {
	if i < 0 || i >= len(s.names) {
		return s
	}
	s.active = i
	return s
}

// ActivateName activates the tab called name, if present.
func (s Set) ActivateName(name string) Set {
	for i, n := range s.names {
		if n == name {
			return s.Activate(i)
		}
	}
	return s
}

// Next activates the following tab, wrapping to the first.
func (s Set) Next() Set {
	if len(s.names) == 0 {
		return s
	}
	return s.Activate((s.active + 1) % len(s.names))
}

// Prev activates the preceding tab, wrapping to the last.
func (s Set) Prev() Set {
	if len(s.names) == 0 {
		return s
	}
	return s.Activate((s.active - 1 + len(s.names)) % len(s.names))
}
