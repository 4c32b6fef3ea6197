// Package announcetest provides an in-memory Signpost service for tests.
//
// It serves the same routes and status codes as the production service:
// fetches of missing or expired keys answer 404, reads of a non-public record
// with the wrong secret answer 403, a delete with the wrong secret answers
// 401, and on a private instance every request without the right master
// password answers 401.
package announcetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/MKhiriev/signpost/internal/logger"
	"github.com/MKhiriev/signpost/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const requestIDHeader = "X-Request-ID"

// Service messages, as the production service words them.
const (
	MsgNotFound              = "Announcement not found"
	MsgSecretRequired        = "Secret required or incorrect"
	MsgInvalidSecret         = "Invalid secret"
	MsgInvalidMasterPassword = "Invalid master password"
	MsgSet                   = "Announcement set successfully"
	MsgDeleted               = "Announcement deleted successfully"
)

type record struct {
	content   string
	secret    string
	public    bool
	createdAt time.Time
	expiresAt time.Time
}

// Server is a running fake service. The embedded *httptest.Server is closed
// automatically at test cleanup when created with [NewServer].
type Server struct {
	*httptest.Server

	mu             sync.Mutex
	records        map[string]record
	masterPassword string
	silent         bool
	now            func() time.Time
	requests       int

	logger *logger.Logger
}

// Option configures a [Server].
type Option func(*Server)

// WithMasterPassword turns the fake into a private instance.
func WithMasterPassword(password string) Option {
	return func(s *Server) { s.masterPassword = password }
}

// WithClock replaces the wall clock used for created_at and expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Server) { s.now = now }
}

// WithoutMessages makes every error response carry an empty body, like a
// proxy or a terse deployment would.
func WithoutMessages() Option {
	return func(s *Server) { s.silent = true }
}

// WithLogger attaches a logger to every request context.
func WithLogger(l *logger.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// NewServer starts a fake service and registers its shutdown with t.
func NewServer(t interface{ Cleanup(func()) }, opts ...Option) *Server {
	s := &Server{
		records: make(map[string]record),
		now:     time.Now,
		logger:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.withRequestID)
	router.Use(s.countRequests)

	router.Get("/public", s.public)
	router.Route("/announcement", func(r chi.Router) {
		r.Get("/get/{key}", s.get)
		r.Post("/set", s.set)
		r.Delete("/delete", s.delete)
		r.Post("/delete", s.delete)
	})

	return router
}

// Requests reports how many requests reached the service.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Put seeds a record directly. A zero ttl means no expiry.
func (s *Server) Put(key, content, secret string, public bool, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := record{content: content, secret: secret, public: public, createdAt: s.now()}
	if ttl > 0 {
		rec.expiresAt = rec.createdAt.Add(ttl)
	}
	s.records[key] = rec
}

// ExpiresAt returns the stored expiry of key and whether it has one.
func (s *Server) ExpiresAt(key string) (time.Time, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[key]
	if !ok || rec.expiresAt.IsZero() {
		return time.Time{}, false
	}
	return rec.expiresAt, true
}

// Has reports whether a live record is stored under key.
func (s *Server) Has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.lookup(key)
	return ok
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		l := s.logger.GetChildLogger()
		if id := r.Header.Get(requestIDHeader); id != "" {
			l.UpdateContext(func(c zerolog.Context) zerolog.Context {
				return c.Str("request_id", id)
			})
			w.Header().Set(requestIDHeader, id)
		}
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func (s *Server) countRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// lookup drops expired records. Callers hold s.mu.
func (s *Server) lookup(key string) (record, bool) {
	rec, ok := s.records[key]
	if !ok {
		return record{}, false
	}
	if !rec.expiresAt.IsZero() && !s.now().Before(rec.expiresAt) {
		delete(s.records, key)
		return record{}, false
	}
	return rec, true
}

func (s *Server) authorizedInstance(provided string) bool {
	return s.masterPassword == "" || provided == s.masterPassword
}

func (s *Server) public(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, models.PolicyResponse{Public: boolPtr(s.masterPassword == "")})
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	key := chi.URLParam(r, "key")

	if !s.authorizedInstance(r.Header.Get("master_password")) {
		s.writeMessage(w, http.StatusUnauthorized, MsgInvalidMasterPassword)
		return
	}

	s.mu.Lock()
	rec, ok := s.lookup(key)
	s.mu.Unlock()

	if !ok {
		log.Debug().Str("key", key).Msg("announcement not found")
		s.writeMessage(w, http.StatusNotFound, MsgNotFound)
		return
	}
	if !rec.public && r.Header.Get("secret") != rec.secret {
		log.Debug().Str("key", key).Msg("secret mismatch")
		s.writeMessage(w, http.StatusForbidden, MsgSecretRequired)
		return
	}

	body := map[string]any{
		"content":    rec.content,
		"created_at": rec.createdAt.UTC().Format(time.RFC3339),
		"public":     rec.public,
	}
	if !rec.expiresAt.IsZero() {
		body["expires_at"] = rec.expiresAt.UTC().Format(time.RFC3339)
	}
	s.writeJSON(w, http.StatusOK, body)
}

func (s *Server) set(w http.ResponseWriter, r *http.Request) {
	req := models.SetRequest{Public: true}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if !s.authorizedInstance(req.MasterPassword) {
		s.writeMessage(w, http.StatusUnauthorized, MsgInvalidMasterPassword)
		return
	}

	s.mu.Lock()
	rec := record{
		content:   req.Value,
		secret:    req.Secret,
		public:    req.Public,
		createdAt: s.now(),
	}
	if req.ExpiresAt > 0 {
		rec.expiresAt = rec.createdAt.Add(time.Duration(req.ExpiresAt) * time.Second)
	}
	s.records[req.Key] = rec
	s.mu.Unlock()

	logger.FromRequest(r).Debug().Str("key", req.Key).Int64("expires_in", req.ExpiresAt).Msg("announcement set")
	s.writeMessage(w, http.StatusOK, MsgSet)
}

func (s *Server) delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Key == "" {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if !s.authorizedInstance(req.MasterPassword) {
		s.writeMessage(w, http.StatusUnauthorized, MsgInvalidMasterPassword)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.lookup(req.Key)
	if !ok {
		s.writeMessage(w, http.StatusNotFound, MsgNotFound)
		return
	}
	if rec.secret != req.Secret {
		s.writeMessage(w, http.StatusUnauthorized, MsgInvalidSecret)
		return
	}

	delete(s.records, req.Key)
	s.writeMessage(w, http.StatusOK, MsgDeleted)
}

func (s *Server) writeMessage(w http.ResponseWriter, status int, msg string) {
	if s.silent && status >= http.StatusBadRequest {
		w.WriteHeader(status)
		return
	}
	s.writeJSON(w, status, models.MessageResponse{Message: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func boolPtr(b bool) *bool {
	return &b
}
