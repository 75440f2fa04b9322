package handlers

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/dchest/captcha"

	"metrodms/catalog"
	"metrodms/filter"
	"metrodms/guard"
	"metrodms/i18n"
	"metrodms/metrics"
	"metrodms/models"
	"metrodms/nav"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func sendJSONResponse(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

func sendJSONError(w http.ResponseWriter, r *http.Request, status int, key string) {
	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, status, APIResponse{Status: "error", Message: i18n.T(lang, key)})
}

type sessionInfo struct {
	Authenticated bool              `json:"authenticated"`
	Profile       *models.Profile   `json:"profile,omitempty"`
	Capabilities  *nav.Capabilities `json:"capabilities,omitempty"`
}

type captchaInfo struct {
	CaptchaID string `json:"captcha_id"`
	ImageURL  string `json:"image_url"`
}

func newCaptchaInfo() captchaInfo {
	id := captcha.New()
	return captchaInfo{CaptchaID: id, ImageURL: "/captcha/" + id + ".png"}
}

func isJSON(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

func (s *Server) APILoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	// Only JSON bodies are accepted; /api/ is outside the CSRF middleware.
	var input loginRequest
	if !isJSON(r) {
		metrics.LoginAttemptsTotal.WithLabelValues("api", metrics.LoginBadRequest).Inc()
		sendJSONError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&input); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("api", metrics.LoginBadRequest).Inc()
		sendJSONError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}
	if err := s.validate.Struct(input); err != nil {
		s.logFor(r).Debug().Err(err).Msg("login body rejected")
		metrics.LoginAttemptsTotal.WithLabelValues("api", metrics.LoginBadRequest).Inc()
		sendJSONError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}

	session := s.sessions.Load(r)
	result := s.attemptLogin(r, session, input)
	metrics.LoginAttemptsTotal.WithLabelValues("api", result).Inc()

	if result != metrics.LoginSuccess {
		lang := i18n.DetectLanguage(r)
		response := APIResponse{Status: "error", Message: i18n.T(lang, loginMessage(result))}
		if result != metrics.LoginThrottled && s.captchaRequired(getClientIP(r)) {
			response.Data = newCaptchaInfo()
		}
		sendJSONResponse(w, loginStatus(result), response)
		return
	}

	if err := s.sessions.Save(w, r, session); err != nil {
		s.logFor(r).Error().Err(err).Msg("saving session")
		sendJSONError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}

	profile, _ := session.Profile()
	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, http.StatusOK, APIResponse{
		Status:  "success",
		Message: i18n.T(lang, "LoginSuccessful"),
		Data:    profile,
	})
}

func (s *Server) APILogoutHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	session := s.sessions.Load(r)
	s.gate.Logout(session)
	if err := s.sessions.Save(w, r, session); err != nil {
		s.logFor(r).Error().Err(err).Msg("clearing session")
		sendJSONError(w, r, http.StatusInternalServerError, "InternalServerError")
		return
	}

	lang := i18n.DetectLanguage(r)
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Message: i18n.T(lang, "LoggedOut")})
}

func (s *Server) APISessionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	var info sessionInfo
	session := s.sessions.Load(r)
	if profile, ok := session.Profile(); ok {
		caps := nav.Resolve(profile.Role)
		info = sessionInfo{Authenticated: true, Profile: &profile, Capabilities: &caps}
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: info})
}

// APIRouteHandler reports what the page surface would do with ?path=.
func (s *Server) APIRouteHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	path := r.URL.Query().Get("path")
	if path == "" {
		sendJSONError(w, r, http.StatusBadRequest, "InvalidRequestBody")
		return
	}

	decision := guard.Resolve(path, s.sessions.Load(r))
	metrics.RouteDecisionsTotal.WithLabelValues(string(decision.Outcome)).Inc()

	status := http.StatusOK
	if decision.Outcome == guard.NotFound {
		status = http.StatusNotFound
	}
	sendJSONResponse(w, status, APIResponse{Status: "success", Data: decision})
}

func (s *Server) APINavigationHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	session := s.sessions.Load(r)
	if !session.IsAuthenticated() {
		sendJSONError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: nav.VisibleSections(session.Role())})
}

func (s *Server) APIRecordsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}

	if !s.sessions.Load(r).IsAuthenticated() {
		sendJSONError(w, r, http.StatusUnauthorized, "Unauthorized")
		return
	}

	name := r.PathValue("collection")
	collection, ok := catalog.Lookup(name)
	if !ok {
		lang := i18n.DetectLanguage(r)
		sendJSONResponse(w, http.StatusNotFound, APIResponse{
			Status:  "error",
			Message: i18n.T(lang, "UnknownCollection"),
			Data:    map[string][]string{"collections": catalog.Names()},
		})
		return
	}

	metrics.RecordQueriesTotal.WithLabelValues(collection.Name).Inc()
	result := collection.Query(filter.FromQuery(r.URL.Query()))
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: result})
}

func (s *Server) APICaptchaHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		sendJSONError(w, r, http.StatusMethodNotAllowed, "MethodNotAllowed")
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: newCaptchaInfo()})
}
