// Package httpapi exposes rolls, pushes, consumable checks, presets and
// simulations over JSON/HTTP, plus the chat websocket.
package httpapi

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/jimorie/forbidden-lands-dice/internal/dice"
	"github.com/jimorie/forbidden-lands-dice/internal/session"
	"github.com/jimorie/forbidden-lands-dice/internal/table"
)

// SettingsSource returns the active table settings.
type SettingsSource interface {
	Settings() table.Settings
}

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	svc    *session.Service
	tables SettingsSource
	chat   http.Handler
	rng    dice.RandomSource // simulations only
}

// New returns a server. chat may be nil to disable the websocket route.
func New(svc *session.Service, tables SettingsSource, chat http.Handler, rng dice.RandomSource) *Server {
	if rng == nil {
		rng = dice.DefaultRNG()
	}
	return &Server{svc: svc, tables: tables, chat: chat, rng: dice.Locked(rng)}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	r.HandleFunc("/rolls", s.handleRoll).Methods(http.MethodPost)
	r.HandleFunc("/rolls/{id}", s.handleGetRoll).Methods(http.MethodGet)
	r.HandleFunc("/rolls/{id}", s.handleDiscardRoll).Methods(http.MethodDelete)
	r.HandleFunc("/rolls/{id}/push", s.handlePush).Methods(http.MethodPost)
	r.HandleFunc("/consumables", s.handleConsumable).Methods(http.MethodPost)
	r.HandleFunc("/presets", s.handlePresets).Methods(http.MethodGet)
	r.HandleFunc("/presets/{name}/roll", s.handlePresetRoll).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/simulate", s.handleSimulate).Methods(http.MethodGet)
	if s.chat != nil {
		r.Handle("/chat", s.chat).Methods(http.MethodGet)
	}
	r.HandleFunc("/health-check", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter { return r.ResponseWriter }

// Hijack passes the connection through for the chat websocket upgrade.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	return h.Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		slog.InfoContext(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
