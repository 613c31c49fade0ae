package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedLoader struct {
	sess *session.Session
}

func (f fixedLoader) Load(ctx context.Context, r *http.Request) (*session.Session, error) {
	if f.sess == nil {
		return nil, session.ErrSessionNotFound
	}
	return f.sess, nil
}

func newGuardedEcho(gate *session.Gate, handlerCalls *int) *echo.Echo {
	e := echo.New()
	handler := WithPrincipal(func(c echo.Context, p *models.Principal) error {
		*handlerCalls++
		return c.JSON(http.StatusOK, p)
	})

	e.GET("/adminHome", handler, RequireLogin(gate), RequireRole(gate, models.KindAdmin))
	e.GET("/student/dashboard", handler, RequireLogin(gate), RequireRole(gate, models.KindStudent))
	e.GET("/unguarded-role", handler, RequireRole(gate, models.KindAdmin))
	return e
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGuards(t *testing.T) {
	admin := &models.Principal{ID: 1, Name: "Admin", Role: models.KindAdmin}
	student := &models.Principal{ID: 2, Name: "Asha", Role: models.KindStudent}

	tests := []struct {
		name         string
		sess         *session.Session
		path         string
		wantStatus   int
		wantRedirect string
		wantCalled   bool
	}{
		{"admin reaches admin home", &session.Session{Principal: admin}, "/adminHome", http.StatusOK, "", true},
		{"student reaches dashboard", &session.Session{Principal: student}, "/student/dashboard", http.StatusOK, "", true},
		{"student forbidden from admin home", &session.Session{Principal: student}, "/adminHome", http.StatusForbidden, "/student/dashboard", false},
		{"admin forbidden from dashboard", &session.Session{Principal: admin}, "/student/dashboard", http.StatusForbidden, "/adminHome", false},
		{"anonymous sent to login", nil, "/adminHome", http.StatusUnauthorized, "/login", false},
		{"pending verification is not a login", &session.Session{Pending: &models.PendingVerification{Email: "a@b.co"}}, "/student/dashboard", http.StatusUnauthorized, "/login", false},
		{"role check without login is unauthenticated", &session.Session{Principal: admin}, "/unguarded-role", http.StatusUnauthorized, "/login", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			e := newGuardedEcho(session.NewGate(fixedLoader{sess: tt.sess}), &calls)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, calls == 1)
			if tt.wantRedirect != "" {
				body := decodeError(t, rec)
				assert.Equal(t, tt.wantRedirect, body["redirect"])
				assert.Equal(t, tt.wantRedirect, rec.Header().Get(echo.HeaderLocation))
			}
		})
	}
}

func TestWithPrincipal_PassesPrincipalExplicitly(t *testing.T) {
	student := &models.Principal{ID: 2, Name: "Asha", Role: models.KindStudent, Username: "asha"}

	var got *models.Principal
	h := WithPrincipal(func(c echo.Context, p *models.Principal) error {
		got = p
		return c.NoContent(http.StatusNoContent)
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(session.WithPrincipal(req.Context(), student))
	rec := httptest.NewRecorder()

	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Same(t, student, got)
}
