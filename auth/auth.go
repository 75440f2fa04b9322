package auth

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"metrodms/crypto"
	"metrodms/models"
)

const SessionName = "metrodms-session"

const (
	keyEpoch  = "epoch"
	keyUserID = "userID"
	keyName   = "name"
	keyEmail  = "email"
	keyRole   = "role"
)

// SessionStore carries a Session between requests in a signed and
// encrypted cookie. Cookies are bound to the store's epoch, a random value
// chosen at construction, so a restarted process sees every earlier cookie
// as unauthenticated.
type SessionStore struct {
	cookies *sessions.CookieStore
	epoch   string
}

// NewSessionStore signs cookies with keys.Auth and encrypts them with
// keys.Encryption.
func NewSessionStore(keys crypto.Keys, secure bool) *SessionStore {
	cookies := sessions.NewCookieStore(keys.Auth, keys.Encryption)

	// MaxAge 0 makes it a browser-session cookie.
	cookies.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   0,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &SessionStore{cookies: cookies, epoch: uuid.NewString()}
}

// Load decodes the request's session. A missing, tampered, foreign-epoch or
// incomplete cookie yields an unauthenticated session.
func (st *SessionStore) Load(r *http.Request) *Session {
	sess := &Session{}

	raw, err := st.cookies.Get(r, SessionName)
	if err != nil || raw.IsNew {
		return sess
	}
	if epoch, _ := raw.Values[keyEpoch].(string); epoch != st.epoch {
		return sess
	}

	id, _ := raw.Values[keyUserID].(string)
	name, _ := raw.Values[keyName].(string)
	email, _ := raw.Values[keyEmail].(string)
	role, _ := raw.Values[keyRole].(string)
	if id == "" || email == "" {
		return sess
	}

	sess.set(models.Profile{ID: id, Name: name, Email: email, Role: models.Role(role)})
	return sess
}

// Save writes s back to the response. An unauthenticated session deletes
// the cookie.
func (st *SessionStore) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	raw, err := st.cookies.Get(r, SessionName)
	if raw == nil {
		return errors.Join(errors.New("auth: session unavailable"), err)
	}

	profile, ok := s.Profile()
	if !ok {
		raw.Values = map[any]any{}
		raw.Options.MaxAge = -1
		return raw.Save(r, w)
	}

	raw.Values[keyEpoch] = st.epoch
	raw.Values[keyUserID] = profile.ID
	raw.Values[keyName] = profile.Name
	raw.Values[keyEmail] = profile.Email
	raw.Values[keyRole] = string(profile.Role)
	return raw.Save(r, w)
}
