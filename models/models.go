package models

// Role is one of the three dashboard audiences. Values arriving from forms
// are kept as-is; only the constants below ever match a credential entry.
type Role string

const (
	RoleExecutive Role = "executive"
	RoleStaff     Role = "staff"
	RoleVendor    Role = "vendor"
)

// Roles lists the known roles in login-form order.
var Roles = []Role{RoleExecutive, RoleStaff, RoleVendor}

func (r Role) Valid() bool {
	switch r {
	case RoleExecutive, RoleStaff, RoleVendor:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Initials returns the first letter of every word in the name.
func (p Profile) Initials() string {
	out := make([]rune, 0, 3)
	start := true
	for _, c := range p.Name {
		if c == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, c)
			start = false
		}
	}
	return string(out)
}

type CredentialEntry struct {
	Email        string  `json:"email"`
	PasswordHash string  `json:"-"`
	Profile      Profile `json:"profile"`
}
