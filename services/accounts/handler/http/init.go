package http

import (
	"context"
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
)

// Sessions issues, loads and destroys the cookie-backed session
type Sessions interface {
	Load(ctx context.Context, r *http.Request) (*session.Session, error)
	Issue(ctx context.Context, w http.ResponseWriter, s *session.Session) error
	Save(ctx context.Context, s *session.Session) error
	Destroy(ctx context.Context, w http.ResponseWriter, s *session.Session) error
}

// currentSession returns the request's session, or an empty one to be issued
func currentSession(ctx context.Context, sessions Sessions, r *http.Request) *session.Session {
	sess, err := sessions.Load(ctx, r)
	if err != nil || sess == nil {
		return &session.Session{}
	}
	return sess
}
