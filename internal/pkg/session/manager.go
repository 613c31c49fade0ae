package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/jwt"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/google/uuid"
)

// Manager ties sessions in the store to signed cookies
type Manager struct {
	store Store
	cfg   models.SessionConfig
	now   func() time.Time
}

// NewManager creates a session manager
func NewManager(store Store, cfg models.SessionConfig) *Manager {
	return &Manager{store: store, cfg: cfg, now: time.Now}
}

// Load resolves the session referenced by the request cookie
func (m *Manager) Load(ctx context.Context, r *http.Request) (*Session, error) {
	cookie, err := r.Cookie(m.cfg.CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrSessionNotFound
	}

	id, err := jwt.ParseSessionToken(cookie.Value, m.cfg)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	return m.store.Get(ctx, id)
}

// Issue stores s under a fresh id and sets the cookie. Any previous id on s
// is destroyed so a session id never survives a privilege change.
func (m *Manager) Issue(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s.ID != "" {
		if err := m.store.Destroy(ctx, s.ID); err != nil {
			return err
		}
	}

	now := m.now()
	s.ID = uuid.NewString()
	s.CreatedAt = now

	if err := m.store.Create(ctx, s); err != nil {
		return err
	}

	token, expiresAt, err := jwt.GenerateSessionToken(s.ID, now, m.cfg)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(m.cfg.TTL.Seconds()),
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Save persists changes to an existing session
func (m *Manager) Save(ctx context.Context, s *Session) error {
	if s.ID == "" {
		return fmt.Errorf("save session: %w", ErrSessionNotFound)
	}
	return m.store.Save(ctx, s)
}

// Destroy removes the session and expires the cookie
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, s *Session) error {
	if s != nil && s.ID != "" {
		if err := m.store.Destroy(ctx, s.ID); err != nil && !errors.Is(err, ErrSessionNotFound) {
			return err
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cfg.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
