package auth

import (
	"errors"

	"metrodms/db"
	"metrodms/models"
)

// ErrInvalidCredentials covers an unknown email, a wrong password and a
// wrong role alike; callers cannot tell which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialLookup is the read side of the credential store.
type CredentialLookup interface {
	Lookup(email string) (models.CredentialEntry, bool)
}

// Session is the in-memory record of who is signed in. The zero value is
// unauthenticated. Only this package changes it.
type Session struct {
	profile *models.Profile
}

func (s *Session) IsAuthenticated() bool {
	return s != nil && s.profile != nil
}

// Profile returns the signed-in profile, if any.
func (s *Session) Profile() (models.Profile, bool) {
	if !s.IsAuthenticated() {
		return models.Profile{}, false
	}
	return *s.profile, true
}

// Role is the signed-in role, or "" when unauthenticated.
func (s *Session) Role() models.Role {
	if !s.IsAuthenticated() {
		return ""
	}
	return s.profile.Role
}

func (s *Session) set(p models.Profile) {
	s.profile = &p
}

func (s *Session) clear() {
	s.profile = nil
}

type Gate struct {
	creds CredentialLookup
}

func NewGate(creds CredentialLookup) *Gate {
	return &Gate{creds: creds}
}

// Authenticate signs s in when email exists, password matches and the
// stored role is a known role equal to role. On failure s is left exactly
// as it was.
func (g *Gate) Authenticate(s *Session, email, password string, role models.Role) error {
	entry, found := g.creds.Lookup(email)

	hash := entry.PasswordHash
	if !found {
		hash = db.DummyHash
	}
	passwordOK := db.CheckPasswordHash(password, hash)

	if !found || !passwordOK || !role.Valid() || entry.Profile.Role != role {
		return ErrInvalidCredentials
	}

	s.set(entry.Profile)
	return nil
}

// Logout clears s unconditionally.
func (g *Gate) Logout(s *Session) {
	s.clear()
}
