package main

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/crisispilot/crisispilot/server/chat"
	"github.com/crisispilot/crisispilot/server/composer"
	"github.com/crisispilot/crisispilot/server/news"
	"github.com/crisispilot/crisispilot/server/notifier"
	"github.com/crisispilot/crisispilot/server/pipeline"
)

// app bundles the wired components behind the HTTP surface.
type app struct {
	cfg          configuration
	logger       *zap.SugaredLogger
	searcher     *news.Searcher
	orchestrator *pipeline.Orchestrator
	composer     *composer.Composer
	notifier     *notifier.Notifier
	chatAgent    *chat.Agent
}

// router builds the HTTP API. The root is /api/v1/.
func (a *app) router() *mux.Router {
	router := mux.NewRouter()
	router.Use(a.requestLogging)

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	apiRouter.HandleFunc("/health", a.handleHealth).Methods(http.MethodGet)
	apiRouter.HandleFunc("/capabilities", a.handleCapabilities).Methods(http.MethodGet)
	apiRouter.HandleFunc("/alerts/run", a.handleRunAlert).Methods(http.MethodPost)
	apiRouter.HandleFunc("/alerts/test", a.handleTestAlert).Methods(http.MethodPost)
	apiRouter.HandleFunc("/alerts/custom", a.handleCustomAlert).Methods(http.MethodPost)
	apiRouter.HandleFunc("/chat", a.handleChat).Methods(http.MethodPost)
	apiRouter.HandleFunc("/chat/emergency", a.handleEmergencyChat).Methods(http.MethodPost)
	apiRouter.HandleFunc("/chat/history", a.handleClearChat).Methods(http.MethodDelete)

	return router
}

// requestLogging logs every request at debug level.
func (a *app) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.logger.Debugw("Handling request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func (a *app) handleHealth(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *app) handleCapabilities(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]any{
		"search":   a.searcher.Capabilities(),
		"delivery": notifier.ValidateWebhookURL(a.cfg.DiscordWebhookURL),
	})
}

// runAlertRequest is the body for POST /alerts/run.
type runAlertRequest struct {
	Location   string `json:"location"`
	MaxResults int    `json:"maxResults"`
}

func (a *app) handleRunAlert(w http.ResponseWriter, r *http.Request) {
	var req runAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Location == "" {
		a.writeError(w, http.StatusBadRequest, "location is required")
		return
	}
	if req.MaxResults <= 0 {
		req.MaxResults = a.cfg.MaxNewsResults
	}

	outcome := a.orchestrator.Run(r.Context(), req.Location, req.MaxResults)
	a.writeJSON(w, http.StatusOK, outcome)
}

func (a *app) handleTestAlert(w http.ResponseWriter, r *http.Request) {
	message := a.composer.ComposeTestMessage()
	sent := a.notifier.Deliver(r.Context(), message)
	a.writeJSON(w, http.StatusOK, map[string]any{"sent": sent, "message": message})
}

// customAlertRequest is the body for POST /alerts/custom.
type customAlertRequest struct {
	Message string `json:"message"`
}

func (a *app) handleCustomAlert(w http.ResponseWriter, r *http.Request) {
	var req customAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		a.writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	message := a.composer.ComposeCustomMessage(req.Message)
	sent := a.notifier.Deliver(r.Context(), message)
	a.writeJSON(w, http.StatusOK, map[string]any{"sent": sent})
}

// chatRequest is the body for POST /chat.
type chatRequest struct {
	Question string `json:"question"`
	Context  string `json:"context"`
}

func (a *app) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		a.writeError(w, http.StatusBadRequest, "question is required")
		return
	}

	response := a.chatAgent.Chat(r.Context(), req.Question, req.Context)
	a.writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

// emergencyChatRequest is the body for POST /chat/emergency.
type emergencyChatRequest struct {
	DisasterType string `json:"disasterType"`
	Context      string `json:"context"`
}

func (a *app) handleEmergencyChat(w http.ResponseWriter, r *http.Request) {
	var req emergencyChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DisasterType == "" {
		a.writeError(w, http.StatusBadRequest, "disasterType is required")
		return
	}

	response := a.chatAgent.EmergencyResponse(r.Context(), req.DisasterType, req.Context)
	a.writeJSON(w, http.StatusOK, map[string]string{"response": response})
}

func (a *app) handleClearChat(w http.ResponseWriter, _ *http.Request) {
	a.chatAgent.ClearHistory()
	w.WriteHeader(http.StatusNoContent)
}

func (a *app) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorw("Failed to encode response", "error", err)
	}
}

func (a *app) writeError(w http.ResponseWriter, status int, message string) {
	a.writeJSON(w, status, map[string]string{"error": message})
}
