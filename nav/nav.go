// Package nav owns the section list and turns a role into the set of
// sections, dashboard variant and security tabs that role is offered.
package nav

import (
	"slices"

	"metrodms/models"
)

type Section struct {
	ID    string `json:"id"`
	Path  string `json:"path"`
	Label string `json:"label"`
	// HiddenFor lists roles that are not offered this section.
	HiddenFor []models.Role `json:"-"`
}

func (s Section) VisibleTo(role models.Role) bool {
	return !slices.Contains(s.HiddenFor, role)
}

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var (
	Ingestion    = Section{ID: "ingestion", Path: "/ingestion", Label: "Multi-Source Ingestion", HiddenFor: []models.Role{models.RoleVendor}}
	AIProcessing = Section{ID: "ai-processing", Path: "/ai-processing", Label: "AI Processing"}
	Repository   = Section{ID: "repository", Path: "/repository", Label: "Central Repository"}
	Security     = Section{ID: "security", Path: "/security", Label: "Security Layer"}
	Outputs      = Section{ID: "outputs", Path: "/outputs", Label: "Outputs"}

	// Dashboard is the landing view. It is always reachable once signed in
	// and is not part of the sidebar list.
	Dashboard = Section{ID: "dashboard", Path: DashboardPath, Label: "Dashboard"}
)

// Sections is the sidebar in display order.
var Sections = []Section{Ingestion, AIProcessing, Repository, Security, Outputs}

// VisibleSections filters Sections for role, keeping their order.
func VisibleSections(role models.Role) []Section {
	out := make([]Section, 0, len(Sections))
	for _, s := range Sections {
		if s.VisibleTo(role) {
			out = append(out, s)
		}
	}
	return out
}

// ByPath finds a view (the dashboard or a sidebar section) by its path.
func ByPath(path string) (Section, bool) {
	if path == Dashboard.Path {
		return Dashboard, true
	}
	for _, s := range Sections {
		if s.Path == path {
			return s, true
		}
	}
	return Section{}, false
}

// ByID finds a view by its section ID.
func ByID(id string) (Section, bool) {
	if id == Dashboard.ID {
		return Dashboard, true
	}
	for _, s := range Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
