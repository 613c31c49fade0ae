package session

import (
	"context"
	"net/http"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/constants"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
)

// Loader resolves the session attached to a request
type Loader interface {
	Load(ctx context.Context, r *http.Request) (*Session, error)
}

// Gate enforces authentication first, then role authorization
type Gate struct {
	sessions Loader
}

// NewGate creates a gate over a session loader
func NewGate(sessions Loader) *Gate {
	return &Gate{sessions: sessions}
}

// Authenticate returns the request's principal or an unauthenticated GateError
func (g *Gate) Authenticate(ctx context.Context, r *http.Request) (*models.Principal, error) {
	s, err := g.sessions.Load(ctx, r)
	if err != nil || s == nil || s.Principal == nil {
		return nil, &GateError{Err: ErrUnauthenticated, Redirect: constants.PathLogin}
	}
	return s.Principal, nil
}

// Authorize checks that an authenticated principal has the required role
func (g *Gate) Authorize(p *models.Principal, required models.Kind) error {
	if p == nil {
		return &GateError{Err: ErrUnauthenticated, Redirect: constants.PathLogin}
	}
	if p.Role != required {
		return &GateError{Err: ErrForbidden, Redirect: HomeFor(p.Role)}
	}
	return nil
}

// HomeFor returns the landing page of a role
func HomeFor(role models.Kind) string {
	switch role {
	case models.KindAdmin:
		return constants.PathAdminHome
	case models.KindStudent:
		return constants.PathStudentDashboard
	default:
		return constants.PathLogin
	}
}

// LogoutRedirect returns the login page a role goes back to after logout
func LogoutRedirect(role models.Kind) string {
	switch role {
	case models.KindAdmin:
		return constants.PathAdminLogin
	case models.KindStudent:
		return constants.PathStudentLogin
	default:
		return constants.PathRoot
	}
}
