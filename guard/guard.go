package guard

import (
	"strings"

	"metrodms/nav"
)

type Outcome string

const (
	Render   Outcome = "render"
	Redirect Outcome = "redirect"
	NotFound Outcome = "not_found"
)

// Decision is what to do with a requested view. View is set for Render,
// Location for Redirect.
type Decision struct {
	Outcome  Outcome `json:"outcome"`
	View     string  `json:"view,omitempty"`
	Location string  `json:"location,omitempty"`
}

// Authenticator is the part of a session the guard looks at.
type Authenticator interface {
	IsAuthenticated() bool
}

const LoginView = "login"

// Resolve decides the fate of a request for path given session state.
func Resolve(path string, session Authenticator) Decision {
	path = normalize(path)
	signedIn := session != nil && session.IsAuthenticated()

	switch path {
	case "/":
		return Decision{Outcome: Redirect, Location: nav.DashboardPath}
	case nav.LoginPath:
		if signedIn {
			return Decision{Outcome: Redirect, Location: nav.DashboardPath}
		}
		return Decision{Outcome: Render, View: LoginView}
	}

	section, ok := nav.ByPath(path)
	if !ok {
		return Decision{Outcome: NotFound}
	}
	if !signedIn {
		return Decision{Outcome: Redirect, Location: nav.LoginPath}
	}
	return Decision{Outcome: Render, View: section.ID}
}

func normalize(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}
