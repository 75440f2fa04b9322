package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrodms/models"
)

func paths(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Path
	}
	return out
}

func TestVisibleSectionsVendorHidesOnlyIngestion(t *testing.T) {
	got := VisibleSections(models.RoleVendor)

	assert.Equal(t, []string{"/ai-processing", "/repository", "/security", "/outputs"}, paths(got))
	assert.Len(t, got, len(Sections)-1)
}

func TestVisibleSectionsStaffAndExecutiveSeeEverything(t *testing.T) {
	for _, role := range []models.Role{models.RoleStaff, models.RoleExecutive} {
		assert.Equal(t, paths(Sections), paths(VisibleSections(role)), "role %s", role)
	}
}

func TestVisibleSectionsUnknownRoleHidesNothing(t *testing.T) {
	for _, role := range []models.Role{"", "admin", "Vendor"} {
		assert.Equal(t, paths(Sections), paths(VisibleSections(role)), "role %q", role)
	}
}

func TestVisibleSectionsDoesNotAliasSections(t *testing.T) {
	got := VisibleSections(models.RoleStaff)
	got[0] = Section{ID: "changed"}

	assert.Equal(t, "ingestion", Sections[0].ID)
}

func TestByPath(t *testing.T) {
	s, ok := ByPath("/dashboard")
	require.True(t, ok)
	assert.Equal(t, "dashboard", s.ID)

	s, ok = ByPath("/repository")
	require.True(t, ok)
	assert.Equal(t, "Central Repository", s.Label)

	_, ok = ByPath("/settings")
	assert.False(t, ok)
}

func TestByIDMatchesByPath(t *testing.T) {
	for _, s := range append([]Section{Dashboard}, Sections...) {
		got, ok := ByID(s.ID)
		require.True(t, ok, s.ID)
		assert.Equal(t, s.Path, got.Path)
	}
	_, ok := ByID("settings")
	assert.False(t, ok)
}

func TestResolveDashboardVariants(t *testing.T) {
	cases := []struct {
		role    models.Role
		title   string
		variant DashboardVariant
	}{
		{models.RoleExecutive, "Executive Dashboard", ExecutiveDashboard},
		{models.RoleStaff, "Staff Dashboard", StaffDashboard},
		{models.RoleVendor, "Vendor Portal", VendorDashboard},
		{"", "Dashboard", StaffDashboard},
	}
	for _, tc := range cases {
		c := Resolve(tc.role)
		assert.Equal(t, tc.title, c.DashboardTitle, "role %q", tc.role)
		assert.Equal(t, tc.variant, c.Dashboard, "role %q", tc.role)
	}
}

func TestResolveSecurityTabs(t *testing.T) {
	exec := Resolve(models.RoleExecutive)
	assert.Equal(t, []Tab{TabOverview, TabAccess, TabMonitoring, TabCompliance}, exec.SecurityTabs)
	assert.Equal(t, "overview", exec.DefaultSecurityTab)
	assert.True(t, exec.HasSecurityTab("access"))

	for _, role := range []models.Role{models.RoleStaff, models.RoleVendor} {
		c := Resolve(role)
		assert.Equal(t, []Tab{TabMonitoring, TabCompliance}, c.SecurityTabs)
		assert.Equal(t, "monitoring", c.DefaultSecurityTab)
		assert.False(t, c.HasSecurityTab("access"))
	}
}

func TestResolveSectionsMatchVisibleSections(t *testing.T) {
	for _, role := range models.Roles {
		assert.Equal(t, VisibleSections(role), Resolve(role).Sections)
	}
}
