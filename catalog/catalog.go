// Package catalog holds the dashboard's static collections and answers
// filtered queries over them.
package catalog

import (
	"slices"

	"metrodms/filter"
	"metrodms/nav"
)

type record interface {
	filter.Record
	Cells() []string
}

// Collection is one named, filterable list shown inside a section.
type Collection struct {
	Name        string   `json:"name"`
	Label       string   `json:"label"`
	Section     string   `json:"section"`
	Headers     []string `json:"headers"`
	StatusLabel string   `json:"status_label"`
	Categories  []string `json:"categories"`
	Statuses    []string `json:"statuses"`

	apply func(filter.Criteria) Result
}

// Result is a filtered view of a collection. Items holds the typed
// records, Rows the same records as display cells.
type Result struct {
	Collection string          `json:"collection"`
	Criteria   filter.Criteria `json:"criteria"`
	Total      int             `json:"total"`
	Matched    int             `json:"matched"`
	Items      any             `json:"items"`
	Rows       [][]string      `json:"-"`
}

func (c Collection) Query(criteria filter.Criteria) Result {
	return c.apply(criteria)
}

// Filterable reports whether the collection has any category or status
// values worth offering as a select.
func (c Collection) Filterable() bool {
	return len(c.Categories) > 0 || len(c.Statuses) > 0
}

func newCollection[T record](name, label, section, statusLabel string, headers []string, records []T) Collection {
	c := Collection{
		Name:        name,
		Label:       label,
		Section:     section,
		Headers:     headers,
		StatusLabel: statusLabel,
	}
	for _, r := range records {
		if v := r.CategoryField(); v != "" && !slices.Contains(c.Categories, v) {
			c.Categories = append(c.Categories, v)
		}
		if v := r.StatusField(); v != "" && !slices.Contains(c.Statuses, v) {
			c.Statuses = append(c.Statuses, v)
		}
	}
	c.apply = func(criteria filter.Criteria) Result {
		matched := filter.Apply(records, criteria)
		rows := make([][]string, len(matched))
		for i, r := range matched {
			rows[i] = r.Cells()
		}
		return Result{
			Collection: name,
			Criteria:   criteria,
			Total:      len(records),
			Matched:    len(matched),
			Items:      matched,
			Rows:       rows,
		}
	}
	return c
}

var collections = []Collection{
	newCollection("connectors", "Data Connectors", nav.Ingestion.ID, "Status",
		[]string{"Name", "Description", "Status", "Last Sync", "Documents"}, connectors),
	newCollection("uploads", "Recent Uploads", nav.Ingestion.ID, "Status",
		[]string{"Name", "Size", "Status", "Progress"}, uploads),
	newCollection("extracted", "Extracted Information", nav.AIProcessing.ID, "Priority",
		[]string{"Document", "Type", "Content", "Confidence", "Category", "Priority", "Date"}, extracted),
	newCollection("documents", "Document Library", nav.Repository.ID, "Status",
		[]string{"Name", "Category", "Version", "Last Modified", "Modified By", "Tags", "Status"}, documents),
	newCollection("audit", "Audit Trail", nav.Repository.ID, "Status",
		[]string{"Timestamp", "Action", "Document", "User", "Details"}, auditTrail),
	newCollection("security-events", "Recent Security Events", nav.Security.ID, "Severity",
		[]string{"Timestamp", "Type", "Message", "Severity", "State"}, securityEvents),
	newCollection("deadlines", "Deadlines", nav.Outputs.ID, "Status",
		[]string{"Title", "Date", "Days Left", "Priority", "Category", "Status"}, deadlines),
	newCollection("payments", "Payments", nav.Outputs.ID, "Status",
		[]string{"Vendor", "Amount", "Due Date", "Category", "Status"}, payments),
}

// Lookup finds a collection by name.
func Lookup(name string) (Collection, bool) {
	for _, c := range collections {
		if c.Name == name {
			return c, true
		}
	}
	return Collection{}, false
}

// ForSection lists a section's collections in display order.
func ForSection(sectionID string) []Collection {
	var out []Collection
	for _, c := range collections {
		if c.Section == sectionID {
			out = append(out, c)
		}
	}
	return out
}

func Names() []string {
	out := make([]string, len(collections))
	for i, c := range collections {
		out[i] = c.Name
	}
	return out
}

func DashboardStats(v nav.DashboardVariant) []Stat {
	return slices.Clone(dashboardStats[v])
}

func KPIs() []KPI { return slices.Clone(kpis) }

func Permissions() []RolePermissions { return slices.Clone(rolePermissions) }
