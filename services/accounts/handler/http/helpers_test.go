package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/database"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/models"
	"github.com/chetanshingare9301/Exam-Management-System/internal/pkg/session"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var testSessionConfig = models.SessionConfig{
	Secret:     "handler-test-secret",
	Issuer:     "exam-test",
	CookieName: "exam_session",
	TTL:        time.Hour,
}

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	return session.NewManager(session.NewRedisStore(client, testSessionConfig.TTL), testSessionConfig)
}

// issueCookies stores sess and returns the cookies a browser would send back
func issueCookies(t *testing.T, m *session.Manager, sess *session.Session) []*http.Cookie {
	t.Helper()
	rec := httptest.NewRecorder()
	require.NoError(t, m.Issue(context.Background(), rec, sess))
	return rec.Result().Cookies()
}

func newJSONContext(method, path, body string, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	return response
}

// loadIssued resolves the session referenced by the cookies a handler set
func loadIssued(t *testing.T, m *session.Manager, rec *httptest.ResponseRecorder) *session.Session {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	sess, err := m.Load(context.Background(), req)
	require.NoError(t, err)
	return sess
}
