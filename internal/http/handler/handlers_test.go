package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PSrandula/issue-tracker-app/internal/auth"
	"github.com/PSrandula/issue-tracker-app/internal/config"
	httpx "github.com/PSrandula/issue-tracker-app/internal/http"
	"github.com/PSrandula/issue-tracker-app/internal/issue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	server *httptest.Server
	users  *auth.MemoryUserRepository
	issues *issue.MemoryRepository
	token  string
}

func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	users := auth.NewMemoryUserRepository()
	issues := issue.NewMemoryRepository()
	jwtSvc := auth.NewJWT("handler-test-secret")

	r := httpx.NewRouter(
		config.Config{},
		auth.NewService(users, jwtSvc),
		issue.NewService(issues),
		jwtSvc,
	)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testServer{server: srv, users: users, issues: issues}
}

func (ts *testServer) request(t *testing.T, method, path string, body any) (*http.Response, []byte) {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.server.URL+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}

	resp, err := ts.server.Client().Do(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return resp, raw
}

func (ts *testServer) authenticate(t *testing.T) {
	t.Helper()

	resp, raw := ts.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "tester@example.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	require.NotEmpty(t, body.Token)
	ts.token = body.Token
}

func message(t *testing.T, raw []byte) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body.Message
}

func TestRegisterAndDuplicate(t *testing.T) {
	ts := setupTestServer(t)

	resp, _ := ts.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "a@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := ts.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "a@example.com", "password": "secret2",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "User exists", message(t, raw))
	assert.Equal(t, 1, ts.users.Count())
}

func TestRegisterShortPassword(t *testing.T) {
	ts := setupTestServer(t)

	resp, raw := ts.request(t, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "a@example.com", "password": "12345",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Password must be at least 6 characters", message(t, raw))
}

func TestLoginFailuresMatch(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	wrongPass, rawWrong := ts.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "tester@example.com", "password": "not-it",
	})
	noUser, rawMissing := ts.request(t, http.MethodPost, "/api/auth/login", map[string]string{
		"email": "ghost@example.com", "password": "whatever",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPass.StatusCode)
	assert.Equal(t, wrongPass.StatusCode, noUser.StatusCode)
	assert.Equal(t, message(t, rawWrong), message(t, rawMissing))
	assert.Equal(t, "Invalid credentials", message(t, rawWrong))
}

func TestIssuesRequireBearerToken(t *testing.T) {
	ts := setupTestServer(t)

	for _, path := range []string{"/api/issues", "/api/issues/1", "/api/issues/export"} {
		resp, _ := ts.request(t, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}

	ts.token = "bogus.token.value"
	resp, _ := ts.request(t, http.MethodGet, "/api/issues", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestIssueCRUDFlow(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	// create
	resp, raw := ts.request(t, http.MethodPost, "/api/issues", map[string]string{
		"title":       "Crash on save",
		"description": "NPE in the save handler",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))

	var created issue.Issue
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, issue.StatusOpen, created.Status)
	assert.Equal(t, issue.PriorityLow, created.Priority)

	// read
	resp, raw = ts.request(t, http.MethodGet, fmt.Sprintf("/api/issues/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got issue.Issue
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, created.Title, got.Title)

	// partial update
	resp, raw = ts.request(t, http.MethodPatch, fmt.Sprintf("/api/issues/%d", created.ID), map[string]string{
		"status": issue.StatusResolved,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated issue.Issue
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, issue.StatusResolved, updated.Status)
	assert.Equal(t, created.Title, updated.Title)

	// delete twice: both succeed
	resp, raw = ts.request(t, http.MethodDelete, fmt.Sprintf("/api/issues/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Deleted", message(t, raw))

	resp, _ = ts.request(t, http.MethodDelete, fmt.Sprintf("/api/issues/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// gone
	resp, raw = ts.request(t, http.MethodGet, fmt.Sprintf("/api/issues/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Not found", message(t, raw))
}

func TestCreateIssueBlankTitle(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	resp, raw := ts.request(t, http.MethodPost, "/api/issues", map[string]string{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Title is required", message(t, raw))
}

func TestUpdateInvalidEnumRejected(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	_, raw := ts.request(t, http.MethodPost, "/api/issues", map[string]string{"title": "x"})
	var created issue.Issue
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw := ts.request(t, http.MethodPatch, fmt.Sprintf("/api/issues/%d", created.ID), map[string]string{
		"priority": "Catastrophic",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid priority", message(t, raw))
}

func TestListEnvelope(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	for i := 0; i < 8; i++ {
		resp, _ := ts.request(t, http.MethodPost, "/api/issues", map[string]string{
			"title": fmt.Sprintf("issue %d", i),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, raw := ts.request(t, http.MethodGet, "/api/issues?page=1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var res issue.ListResult
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Len(t, res.Issues, issue.DefaultPageSize, "server default page size applies when limit is absent")
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, int64(8), res.StatusCounts[issue.StatusOpen])

	resp, raw = ts.request(t, http.MethodGet, "/api/issues?page=5&limit=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(raw, &res))
	assert.Empty(t, res.Issues)
	assert.Equal(t, 3, res.TotalPages)
}

func TestExportCSVAttachment(t *testing.T) {
	ts := setupTestServer(t)
	ts.authenticate(t)

	resp, _ := ts.request(t, http.MethodPost, "/api/issues", map[string]string{"title": "Bug, urgent"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw := ts.request(t, http.MethodGet, "/api/issues/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv", resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=issues_export.csv", resp.Header.Get("Content-Disposition"))
	assert.Contains(t, string(raw), `"Bug, urgent"`)
}
