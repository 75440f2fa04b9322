package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/dchest/captcha"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/rs/zerolog"

	"metrodms/auth"
	"metrodms/catalog"
	"metrodms/filter"
	"metrodms/guard"
	"metrodms/i18n"
	"metrodms/metrics"
	"metrodms/models"
	"metrodms/nav"
)

//go:embed templates/*.html
var templatesFS embed.FS

type Options struct {
	AppName string
	// CaptchaAfterFailures is the failure count from which a login must
	// carry a solved captcha. 0 disables the captcha.
	CaptchaAfterFailures int
	Logger               zerolog.Logger
}

// Server serves the login pages, the guarded views and the JSON API.
type Server struct {
	gate         *auth.Gate
	sessions     *auth.SessionStore
	limiter      *rateLimiter
	validate     *validator.Validate
	appName      string
	captchaAfter int
	log          zerolog.Logger
}

func NewServer(gate *auth.Gate, sessions *auth.SessionStore, opts Options) *Server {
	return &Server{
		gate:         gate,
		sessions:     sessions,
		limiter:      newRateLimiter(),
		validate:     validator.New(),
		appName:      opts.AppName,
		captchaAfter: opts.CaptchaAfterFailures,
		log:          opts.Logger,
	}
}

func (s *Server) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("/", s.PageHandler)
	mux.HandleFunc("/login", s.LoginHandler)
	mux.HandleFunc("/logout", s.LogoutHandler)
	mux.Handle("/captcha/", captcha.Server(captcha.StdWidth, captcha.StdHeight))

	mux.HandleFunc("/api/v1/login", s.APILoginHandler)
	mux.HandleFunc("/api/v1/logout", s.APILogoutHandler)
	mux.HandleFunc("/api/v1/session", s.APISessionHandler)
	mux.HandleFunc("/api/v1/route", s.APIRouteHandler)
	mux.HandleFunc("/api/v1/navigation", s.APINavigationHandler)
	mux.HandleFunc("/api/v1/records/{collection}", s.APIRecordsHandler)
	mux.HandleFunc("/api/v1/captcha", s.APICaptchaHandler)
}

// PageHandler answers every GET that is not a more specific route. The
// route guard decides between the requested view, a redirect and 404.
func (s *Server) PageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		lang := i18n.DetectLanguage(r)
		http.Error(w, i18n.T(lang, "MethodNotAllowed"), http.StatusMethodNotAllowed)
		return
	}

	session := s.sessions.Load(r)
	decision := guard.Resolve(r.URL.Path, session)
	metrics.RouteDecisionsTotal.WithLabelValues(string(decision.Outcome)).Inc()

	switch decision.Outcome {
	case guard.Redirect:
		http.Redirect(w, r, decision.Location, http.StatusSeeOther)
	case guard.NotFound:
		s.renderTemplate(w, r, http.StatusNotFound, "notfound.html", nil)
	case guard.Render:
		if decision.View == guard.LoginView {
			s.renderLogin(w, r, http.StatusOK, "")
			return
		}
		s.renderView(w, r, session, decision.View)
	}
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.PageHandler(w, r)
		return
	}

	session := s.sessions.Load(r)
	result := s.attemptLogin(r, session, loginRequest{
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		Role:            r.FormValue("role"),
		CaptchaID:       r.FormValue("captcha_id"),
		CaptchaSolution: r.FormValue("captcha_solution"),
	})
	metrics.LoginAttemptsTotal.WithLabelValues("page", result).Inc()

	if result == metrics.LoginSuccess {
		if err := s.sessions.Save(w, r, session); err != nil {
			s.logFor(r).Error().Err(err).Msg("saving session")
			lang := i18n.DetectLanguage(r)
			http.Error(w, i18n.T(lang, "InternalServerError"), http.StatusInternalServerError)
			return
		}
		if r.Header.Get("HX-Request") == "true" {
			w.Header().Set("HX-Redirect", nav.DashboardPath)
			return
		}
		http.Redirect(w, r, nav.DashboardPath, http.StatusSeeOther)
		return
	}

	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Trigger", "loginError")
		// HTMX doesn't process HX-Trigger on 4xx by default.
		w.WriteHeader(http.StatusOK)
		return
	}
	s.renderLogin(w, r, loginStatus(result), loginMessage(result))
}

func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session := s.sessions.Load(r)
	s.gate.Logout(session)
	if err := s.sessions.Save(w, r, session); err != nil {
		s.logFor(r).Error().Err(err).Msg("clearing session")
	}
	http.Redirect(w, r, nav.LoginPath, http.StatusSeeOther)
}

// loginRequest is one login submission from either surface.
type loginRequest struct {
	Email           string `json:"email" validate:"required,max=254"`
	Password        string `json:"password" validate:"required,max=128"`
	Role            string `json:"role" validate:"required,max=32"`
	CaptchaID       string `json:"captcha_id"`
	CaptchaSolution string `json:"captcha_solution"`
}

// attemptLogin runs the throttle, the captcha and the gate in that order
// and returns one of the metrics.Login* results. session is signed in
// only on metrics.LoginSuccess.
func (s *Server) attemptLogin(r *http.Request, session *auth.Session, in loginRequest) string {
	ip := getClientIP(r)
	if !s.limiter.Allow(ip) {
		return metrics.LoginThrottled
	}

	if s.captchaRequired(ip) && !captcha.VerifyString(in.CaptchaID, in.CaptchaSolution) {
		s.limiter.RecordFailure(ip)
		return metrics.LoginCaptchaRequired
	}

	if err := s.gate.Authenticate(session, in.Email, in.Password, models.Role(in.Role)); err != nil {
		s.limiter.RecordFailure(ip)
		s.logFor(r).Info().Str("ip", ip).Int("failures", s.limiter.Failures(ip)).Msg("login failed")
		return metrics.LoginInvalid
	}

	s.limiter.Reset(ip)
	return metrics.LoginSuccess
}

func (s *Server) captchaRequired(ip string) bool {
	return s.captchaAfter > 0 && s.limiter.Failures(ip) >= s.captchaAfter
}

func loginStatus(result string) int {
	switch result {
	case metrics.LoginThrottled:
		return http.StatusTooManyRequests
	case metrics.LoginCaptchaRequired:
		return http.StatusForbidden
	case metrics.LoginBadRequest:
		return http.StatusBadRequest
	default:
		return http.StatusUnauthorized
	}
}

func loginMessage(result string) string {
	switch result {
	case metrics.LoginThrottled:
		return "TooManyAttempts"
	case metrics.LoginCaptchaRequired:
		return "CaptchaRequired"
	case metrics.LoginBadRequest:
		return "InvalidRequestBody"
	default:
		return "InvalidCredentials"
	}
}

func (s *Server) renderLogin(w http.ResponseWriter, r *http.Request, status int, messageKey string) {
	data := map[string]any{
		"Roles": models.Roles,
		"Error": messageKey,
	}
	if s.captchaRequired(getClientIP(r)) {
		data["CaptchaID"] = captcha.New()
	}
	s.renderTemplate(w, r, status, "login.html", data)
}

// collectionView is one table on a page, with the criteria that applied.
type collectionView struct {
	catalog.Collection
	Criteria filter.Criteria
	Result   catalog.Result
}

func (s *Server) renderView(w http.ResponseWriter, r *http.Request, session *auth.Session, viewID string) {
	section, ok := nav.ByID(viewID)
	if !ok {
		s.renderTemplate(w, r, http.StatusNotFound, "notfound.html", nil)
		return
	}

	profile, _ := session.Profile()
	caps := nav.Resolve(profile.Role)
	query := r.URL.Query()

	// Filters apply to the collection named in the query, or to the only
	// collection of a single-table section.
	collections := catalog.ForSection(section.ID)
	active := query.Get("collection")
	if active == "" && len(collections) == 1 {
		active = collections[0].Name
	}
	views := make([]collectionView, 0, len(collections))
	for _, c := range collections {
		var criteria filter.Criteria
		if c.Name == active {
			criteria = filter.FromQuery(query)
		}
		metrics.RecordQueriesTotal.WithLabelValues(c.Name).Inc()
		views = append(views, collectionView{Collection: c, Criteria: criteria, Result: c.Query(criteria)})
	}

	data := map[string]any{
		"Profile":     profile,
		"Caps":        caps,
		"Section":     section,
		"Collections": views,
	}

	switch section.ID {
	case nav.Dashboard.ID:
		data["Stats"] = catalog.DashboardStats(caps.Dashboard)
		data["KPIs"] = catalog.KPIs()
	case nav.Outputs.ID:
		data["KPIs"] = catalog.KPIs()
	case nav.Security.ID:
		tab := query.Get("tab")
		if !caps.HasSecurityTab(tab) {
			tab = caps.DefaultSecurityTab
		}
		data["Tab"] = tab
		if tab == nav.TabAccess.ID {
			data["Permissions"] = catalog.Permissions()
		}
	}

	s.renderTemplate(w, r, http.StatusOK, "page.html", data)
}

func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, status int, name string, data map[string]any) {
	lang := i18n.DetectLanguage(r)

	funcMap := template.FuncMap{
		"T": func(key string) string {
			return i18n.T(lang, key)
		},
	}

	tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
	if err != nil {
		s.logFor(r).Error().Err(err).Str("template", name).Msg("parsing template")
		http.Error(w, i18n.T(lang, "InternalServerError"), http.StatusInternalServerError)
		return
	}

	if data == nil {
		data = map[string]any{}
	}
	data["AppName"] = s.appName
	data["Lang"] = lang
	data["csrfField"] = csrf.TemplateField(r)

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logFor(r).Error().Err(err).Str("template", name).Msg("rendering template")
		http.Error(w, i18n.T(lang, "InternalServerError"), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// logFor prefers the request-scoped logger set by RequestLogger.
func (s *Server) logFor(r *http.Request) *zerolog.Logger {
	if l := zerolog.Ctx(r.Context()); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.log
}
