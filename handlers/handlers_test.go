package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/dchest/captcha"
	"github.com/rs/zerolog"

	"metrodms/auth"
	"metrodms/crypto"
	"metrodms/db"
	"metrodms/i18n"
)

var (
	testCreds    *db.CredentialStore
	testSessions *auth.SessionStore
	captchaStore = captcha.NewMemoryStore(captcha.CollectNum, captcha.Expiration)
)

func TestMain(m *testing.M) {
	if err := i18n.LoadTranslations(); err != nil {
		panic(err)
	}
	captcha.SetCustomStore(captchaStore)

	store, err := db.InitDB(":memory:", db.DefaultSeeds)
	if err != nil {
		panic(err)
	}
	testCreds = store
	testSessions = auth.NewSessionStore(crypto.DeriveKeys("test-secret-key-for-handlers-test"), false)

	code := m.Run()

	store.Close()
	os.Exit(code)
}

func newTestServer(t *testing.T, captchaAfter int) *http.ServeMux {
	t.Helper()
	srv := NewServer(auth.NewGate(testCreds), testSessions, Options{
		AppName:              "MetroTest",
		CaptchaAfterFailures: captchaAfter,
		Logger:               zerolog.Nop(),
	})
	mux := http.NewServeMux()
	srv.RegisterHandlers(mux)
	return mux
}

func sessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == auth.SessionName {
			return c
		}
	}
	return nil
}

func get(mux *http.ServeMux, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func postLoginForm(mux *http.ServeMux, email, password, role string) *httptest.ResponseRecorder {
	form := url.Values{"email": {email}, "password": {password}, "role": {role}}
	req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

// signIn logs in through the page form and returns the session cookie.
func signIn(t *testing.T, mux *http.ServeMux, email, password, role string) *http.Cookie {
	t.Helper()
	w := postLoginForm(mux, email, password, role)
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Login as %s failed, expected 303, got %d. Body: %s", email, w.Code, w.Body.String())
	}
	cookie := sessionCookie(w.Result())
	if cookie == nil {
		t.Fatalf("Login as %s did not set a session cookie", email)
	}
	return cookie
}

func TestLoginPageRenders(t *testing.T) {
	mux := newTestServer(t, 3)

	w := get(mux, "/login", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`name="email"`, `name="password"`, `value="vendor"`, "Sign In", "MetroTest"} {
		if !strings.Contains(body, want) {
			t.Errorf("Login page missing %q", want)
		}
	}
	if strings.Contains(body, "captcha_id") {
		t.Error("Captcha should not be shown before any failure")
	}
}

func TestLoginFormSuccess(t *testing.T) {
	mux := newTestServer(t, 3)

	w := postLoginForm(mux, "executive@metrorail.com", "exec123", "executive")
	if w.Code != http.StatusSeeOther {
		t.Fatalf("Expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Expected redirect to /dashboard, got %q", loc)
	}
	cookie := sessionCookie(w.Result())
	if cookie == nil {
		t.Fatal("Expected a session cookie")
	}

	w = get(mux, "/dashboard", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected dashboard 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Executive Dashboard", "Sarah Johnson", "45,231", `href="/ingestion"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Dashboard missing %q", want)
		}
	}
}

func TestLoginFormFailuresAreUndifferentiated(t *testing.T) {
	cases := []struct {
		name, email, password, role string
	}{
		{"unknown email", "nobody@metrorail.com", "exec123", "executive"},
		{"wrong password", "executive@metrorail.com", "wrong", "executive"},
		{"wrong role", "staff@metrorail.com", "staff123", "executive"},
		{"email case differs", "Executive@metrorail.com", "exec123", "executive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newTestServer(t, 0)
			w := postLoginForm(mux, tc.email, tc.password, tc.role)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401, got %d", w.Code)
			}
			if !strings.Contains(w.Body.String(), "Invalid credentials. Please check your email, password, and role.") {
				t.Error("Expected the generic invalid credentials message")
			}
			if sessionCookie(w.Result()) != nil {
				t.Error("A failed login must not set a session cookie")
			}
		})
	}
}

func TestLoginFormHTMX(t *testing.T) {
	mux := newTestServer(t, 0)

	send := func(password string) *httptest.ResponseRecorder {
		form := url.Values{"email": {"staff@metrorail.com"}, "password": {password}, "role": {"staff"}}
		req := httptest.NewRequest("POST", "/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, req)
		return w
	}

	w := send("nope")
	if w.Code != http.StatusOK || w.Header().Get("HX-Trigger") != "loginError" {
		t.Errorf("Expected 200 with HX-Trigger loginError, got %d %q", w.Code, w.Header().Get("HX-Trigger"))
	}

	w = send("staff123")
	if w.Header().Get("HX-Redirect") != "/dashboard" {
		t.Errorf("Expected HX-Redirect /dashboard, got %q", w.Header().Get("HX-Redirect"))
	}
}

func TestGuardRedirects(t *testing.T) {
	mux := newTestServer(t, 0)

	cases := []struct {
		path string
		want string
	}{
		{"/", "/dashboard"},
		{"/dashboard", "/login"},
		{"/ingestion", "/login"},
		{"/security/", "/login"},
	}
	for _, tc := range cases {
		w := get(mux, tc.path, nil)
		if w.Code != http.StatusSeeOther {
			t.Errorf("%s: expected 303, got %d", tc.path, w.Code)
			continue
		}
		if loc := w.Header().Get("Location"); loc != tc.want {
			t.Errorf("%s: expected redirect to %s, got %s", tc.path, tc.want, loc)
		}
	}

	cookie := signIn(t, mux, "staff@metrorail.com", "staff123", "staff")
	w := get(mux, "/login", cookie)
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/dashboard" {
		t.Errorf("Signed-in /login should redirect to /dashboard, got %d %q", w.Code, w.Header().Get("Location"))
	}
}

func TestNotFound(t *testing.T) {
	mux := newTestServer(t, 0)
	cookie := signIn(t, mux, "staff@metrorail.com", "staff123", "staff")

	for _, c := range []*http.Cookie{nil, cookie} {
		w := get(mux, "/settings", c)
		if w.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "Oops! Page not found") {
			t.Error("Expected the not-found page")
		}
	}
}

func TestPageMethodNotAllowed(t *testing.T) {
	mux := newTestServer(t, 0)

	req := httptest.NewRequest("POST", "/dashboard", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", w.Code)
	}
}

func TestLogout(t *testing.T) {
	mux := newTestServer(t, 0)
	cookie := signIn(t, mux, "vendor@metrorail.com", "vendor123", "vendor")

	req := httptest.NewRequest("POST", "/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("Expected 303 to /login, got %d %q", w.Code, w.Header().Get("Location"))
	}
	cleared := sessionCookie(w.Result())
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Fatalf("Expected the session cookie to be deleted, got %+v", cleared)
	}

	w = get(mux, "/dashboard", nil)
	if w.Code != http.StatusSeeOther {
		t.Errorf("Expected a redirect without a session, got %d", w.Code)
	}
}

func TestVendorNavigation(t *testing.T) {
	mux := newTestServer(t, 0)
	cookie := signIn(t, mux, "vendor@metrorail.com", "vendor123", "vendor")

	w := get(mux, "/dashboard", cookie)
	body := w.Body.String()
	if !strings.Contains(body, "Vendor Portal") {
		t.Error("Expected the vendor dashboard title")
	}
	if strings.Contains(body, `href="/ingestion"`) {
		t.Error("Vendor navigation must not offer ingestion")
	}
	for _, path := range []string{"/ai-processing", "/repository", "/security", "/outputs"} {
		if !strings.Contains(body, `href="`+path+`"`) {
			t.Errorf("Vendor navigation missing %s", path)
		}
	}

	// Hidden from the navigation, still reachable by URL.
	w = get(mux, "/ingestion", cookie)
	if w.Code != http.StatusOK {
		t.Errorf("Expected /ingestion to render for a vendor, got %d", w.Code)
	}
}

func TestRepositoryFilters(t *testing.T) {
	mux := newTestServer(t, 0)
	cookie := signIn(t, mux, "staff@metrorail.com", "staff123", "staff")

	w := get(mux, "/repository?collection=documents&q=zzz-no-match", cookie)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Showing 0 of 5") {
		t.Error("Expected the documents table to be empty")
	}
	if !strings.Contains(body, "No records match the current filters.") {
		t.Error("Expected the empty-state message")
	}
	// The audit table is not the filtered one.
	if !strings.Contains(body, "Legal Team") {
		t.Error("Expected the audit trail to stay unfiltered")
	}

	w = get(mux, "/repository?collection=documents&category=Finance&status=approved", cookie)
	body = w.Body.String()
	if !strings.Contains(body, "Showing 1 of 5") {
		t.Error("Expected exactly one Finance/approved document")
	}
	if !strings.Contains(body, `<option value="Finance" selected>`) {
		t.Error("Expected the category select to keep its value")
	}
}

func TestFilterSelectsOnlyForFilterableCollections(t *testing.T) {
	mux := newTestServer(t, 0)
	cookie := signIn(t, mux, "staff@metrorail.com", "staff123", "staff")

	body := get(mux, "/repository", cookie).Body.String()
	documents, audit, found := strings.Cut(body, `id="collection-audit"`)
	if !found {
		t.Fatal("Expected the audit trail on the repository page")
	}
	if !strings.Contains(documents, `<select name="category">`) {
		t.Error("Expected category select for documents")
	}
	if strings.Contains(audit, "<select") {
		t.Error("Audit trail has no categories or statuses and must not render selects")
	}
	if !strings.Contains(audit, `name="q"`) {
		t.Error("Expected free-text search for the audit trail")
	}
}

func TestSecurityTabs(t *testing.T) {
	mux := newTestServer(t, 0)
	exec := signIn(t, mux, "executive@metrorail.com", "exec123", "executive")
	staff := signIn(t, mux, "staff@metrorail.com", "staff123", "staff")

	body := get(mux, "/security?tab=access", exec).Body.String()
	if !strings.Contains(body, "Vendor ACCESS") {
		t.Error("Executive access tab should list role permissions")
	}

	body = get(mux, "/security?tab=access", staff).Body.String()
	if strings.Contains(body, "ACCESS") || strings.Contains(body, "?tab=access") {
		t.Error("Staff must not get the access tab")
	}
	if !strings.Contains(body, "Recent Security Events") {
		t.Error("Staff should fall back to the monitoring tab")
	}
}

func TestPageLanguage(t *testing.T) {
	mux := newTestServer(t, 0)

	req := httptest.NewRequest("GET", "/login", nil)
	req.Header.Set("Accept-Language", "fr-FR,fr;q=0.9")
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if !strings.Contains(w.Body.String(), `<html lang="fr">`) {
		t.Error("Expected the French layout")
	}
}
