package nav

import "metrodms/models"

type DashboardVariant string

const (
	ExecutiveDashboard DashboardVariant = "executive"
	StaffDashboard     DashboardVariant = "staff"
	VendorDashboard    DashboardVariant = "vendor"
)

type Tab struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var (
	TabOverview   = Tab{ID: "overview", Label: "Security Overview"}
	TabAccess     = Tab{ID: "access", Label: "Access Control"}
	TabMonitoring = Tab{ID: "monitoring", Label: "Monitoring"}
	TabCompliance = Tab{ID: "compliance", Label: "Compliance"}
)

// Capabilities is everything role-dependent a view needs, resolved once.
type Capabilities struct {
	Role               models.Role      `json:"role"`
	Sections           []Section        `json:"sections"`
	DashboardTitle     string           `json:"dashboard_title"`
	Dashboard          DashboardVariant `json:"dashboard"`
	SecurityTabs       []Tab            `json:"security_tabs"`
	DefaultSecurityTab string           `json:"default_security_tab"`
}

func (c Capabilities) HasSecurityTab(id string) bool {
	for _, t := range c.SecurityTabs {
		if t.ID == id {
			return true
		}
	}
	return false
}

func Resolve(role models.Role) Capabilities {
	c := Capabilities{
		Role:     role,
		Sections: VisibleSections(role),
	}

	switch role {
	case models.RoleExecutive:
		c.DashboardTitle, c.Dashboard = "Executive Dashboard", ExecutiveDashboard
	case models.RoleStaff:
		c.DashboardTitle, c.Dashboard = "Staff Dashboard", StaffDashboard
	case models.RoleVendor:
		c.DashboardTitle, c.Dashboard = "Vendor Portal", VendorDashboard
	default:
		c.DashboardTitle, c.Dashboard = "Dashboard", StaffDashboard
	}

	if role == models.RoleExecutive {
		c.SecurityTabs = []Tab{TabOverview, TabAccess, TabMonitoring, TabCompliance}
		c.DefaultSecurityTab = TabOverview.ID
	} else {
		c.SecurityTabs = []Tab{TabMonitoring, TabCompliance}
		c.DefaultSecurityTab = TabMonitoring.ID
	}

	return c
}
