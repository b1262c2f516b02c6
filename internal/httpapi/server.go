package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/linkwatch/internal/config"
	"github.com/hamed0406/linkwatch/internal/domain"
	apimw "github.com/hamed0406/linkwatch/internal/httpapi/middleware"
	"github.com/hamed0406/linkwatch/internal/notify"
	"github.com/hamed0406/linkwatch/internal/scheduler"
)

type Server struct {
	Logger      *zap.Logger
	Resources   []domain.Resource
	Cycle       *scheduler.Cycle
	Notifier    *notify.Router
	AccessToken string
}

func NewServer(
	l *zap.Logger,
	resources []domain.Resource,
	cycle *scheduler.Cycle,
	notifier *notify.Router,
	accessToken string,
) *Server {
	return &Server{
		Logger:      l,
		Resources:   resources,
		Cycle:       cycle,
		Notifier:    notifier,
		AccessToken: accessToken,
	}
}

func (s *Server) Router(rpm, burst int) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(apimw.RateLimit(rpm, burst))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/", s.handleStatus)

	r.Group(func(r chi.Router) {
		r.Use(apimw.RequireToken(s.AccessToken))
		r.Post("/api/check", s.handleCheck)
		r.Post("/api/notify/test", s.handleNotifyTest)
	})

	return r
}

type statusResponse struct {
	Status    string            `json:"status"`
	Agent     string            `json:"agent"`
	Version   string            `json:"version"`
	Resources []domain.Resource `json:"resources"`
}

// handleStatus reports worker health plus the resolved resource list.
// It never includes check outcomes or error strings: the status surface is
// public and only exposes configuration, not diagnostics.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:    "healthy",
		Agent:     "linkwatch",
		Version:   config.Version,
		Resources: s.Resources,
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// handleCheck runs one full check cycle on demand and returns its summary.
func (s *Server) handleCheck(w http.ResponseWriter, r *http.Request) {
	s.Logger.Info("manual_check_triggered")
	sum := s.Cycle.RunOnce(r.Context())

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sum)
}

// handleNotifyTest pushes a test notification through the configured
// webhook so operators can verify wiring.
func (s *Server) handleNotifyTest(w http.ResponseWriter, r *http.Request) {
	s.Logger.Info("test_notification_triggered")
	if err := s.Notifier.NotifyTest(r.Context()); err != nil {
		s.Logger.Error("test_notification_failed", zap.Error(err))
		http.Error(w, "notification failed", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"sent"}`))
}
