package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lunaria-site/cms-backend/auth"
	"github.com/lunaria-site/cms-backend/database"
	"github.com/lunaria-site/cms-backend/database/memory"
)

// recordingNotifier captures notification side effects for assertions.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentEmail
	err  error
}

type sentEmail struct {
	to      string
	subject string
	body    string
}

func (n *recordingNotifier) Send(to, subject, htmlBody string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, sentEmail{to: to, subject: subject, body: htmlBody})
	return nil
}

func (n *recordingNotifier) sentCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.sent)
}

type testEnv struct {
	router   http.Handler
	db       database.Database
	tokens   *auth.TokenService
	notifier *recordingNotifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := memory.NewDatabase()
	tokens := auth.NewTokenService([]byte("test-secret"), time.Hour)
	notifier := &recordingNotifier{}
	router := newRouter(db, tokens, notifier)

	return &testEnv{router: router, db: db, tokens: tokens, notifier: notifier}
}

// do performs a request against the router, optionally authenticated and
// with a JSON body.
func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

// adminToken registers an account and returns its bearer token.
func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()

	rec := e.do(t, http.MethodPost, "/auth/register", "", map[string]string{
		"username": "admin",
		"email":    "admin@example.com",
		"password": "hunter22",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp TokenResponse
	decodeJSON(t, rec, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}
