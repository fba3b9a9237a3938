// Package session keeps the logged-in user id and flash messages in a
// signed cookie.
package session

import (
	"context"
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	CookieName = "leadcapture_session"
	userIDKey  = "user_id"
)

type Flash struct {
	Category string
	Message  string
}

func init() {
	gob.Register(Flash{})
}

type contextKey struct{}

type Manager struct {
	store  sessions.Store
	logger *zap.Logger
}

func NewManager(secret string, secure bool, logger *zap.Logger) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, logger: logger}
}

// get never fails: a tampered or stale cookie yields a fresh session.
func (m *Manager) get(r *http.Request) *sessions.Session {
	s, err := m.store.Get(r, CookieName)
	if err != nil {
		m.logger.Debug("discarding invalid session cookie", zap.Error(err))
	}
	return s
}

func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID string) error {
	s := m.get(r)
	s.Values[userIDKey] = userID
	return s.Save(r, w)
}

func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	s := m.get(r)
	for k := range s.Values {
		delete(s.Values, k)
	}
	s.Options.MaxAge = -1
	return s.Save(r, w)
}

func (m *Manager) UserID(r *http.Request) (string, bool) {
	id, ok := m.get(r).Values[userIDKey].(string)
	return id, ok && id != ""
}

func (m *Manager) AddFlash(w http.ResponseWriter, r *http.Request, category, message string) {
	s := m.get(r)
	s.AddFlash(Flash{Category: category, Message: message})
	if err := s.Save(r, w); err != nil {
		m.logger.Warn("failed to save flash", zap.Error(err))
	}
}

// Flashes pops pending flash messages.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []Flash {
	s := m.get(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		m.logger.Warn("failed to clear flashes", zap.Error(err))
	}

	flashes := make([]Flash, 0, len(raw))
	for _, f := range raw {
		if fl, ok := f.(Flash); ok {
			flashes = append(flashes, fl)
		}
	}
	return flashes
}

// RequireAuth redirects anonymous visitors to the login page and exposes the
// user id to downstream handlers.
func (m *Manager) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := m.UserID(r)
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
	})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

func UserIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(contextKey{}).(string)
	return id
}
