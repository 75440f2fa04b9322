// Package filter narrows static record lists by free text, category and
// status (or priority). All active criteria must match.
package filter

import (
	"net/url"
	"strings"
)

// All disables a category or status criterion.
const All = "all"

// Record is anything the list filter can narrow.
type Record interface {
	// SearchFields are matched against the free-text criterion.
	SearchFields() []string
	CategoryField() string
	// StatusField is the status or priority, whichever the list uses.
	StatusField() string
}

type Criteria struct {
	Text     string `json:"q"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

// FromQuery reads q, category and status (priority is accepted as an alias
// of status).
func FromQuery(v url.Values) Criteria {
	c := Criteria{
		Text:     v.Get("q"),
		Category: v.Get("category"),
		Status:   v.Get("status"),
	}
	if c.Status == "" {
		c.Status = v.Get("priority")
	}
	return c
}

func inactive(v string) bool {
	return v == "" || v == All
}

// IsZero reports whether c lets every record through.
func (c Criteria) IsZero() bool {
	return c.Text == "" && inactive(c.Category) && inactive(c.Status)
}

func (c Criteria) Matches(r Record) bool {
	if !inactive(c.Category) && r.CategoryField() != c.Category {
		return false
	}
	if !inactive(c.Status) && r.StatusField() != c.Status {
		return false
	}
	if c.Text == "" {
		return true
	}
	needle := strings.ToLower(c.Text)
	for _, f := range r.SearchFields() {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Apply returns the records matching c in their original order. The result
// is always a fresh slice.
func Apply[T Record](records []T, c Criteria) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if c.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
