package echo

import "strings"

// Field is a single header occurrence: one name/value pair as it appeared
// on the wire. A header that repeats produces one Field per occurrence.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Header is an ordered header multimap. It preserves the order in which
// occurrences were added and keeps repeated names as separate fields.
// Name comparisons are case-insensitive; the stored casing is whatever the
// transport handed over.
type Header []Field

// Add appends an occurrence.
func (h *Header) Add(name, value string) {
	*h = append(*h, Field{Name: name, Value: value})
}

// Get returns the first value for the given name and whether it was found.
func (h Header) Get(name string) (string, bool) {
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			return f.Value, true
		}
	}
	return "", false
}

// Values returns all values for the given name in order of occurrence.
func (h Header) Values(name string) []string {
	var vals []string
	for _, f := range h {
		if strings.EqualFold(f.Name, name) {
			vals = append(vals, f.Value)
		}
	}
	return vals
}

// Clone returns a copy that shares no backing storage with h.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	out := make(Header, len(h))
	copy(out, h)
	return out
}
