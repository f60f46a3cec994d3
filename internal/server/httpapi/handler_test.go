package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiClient struct {
	t *testing.T
	h http.Handler
}

func (a apiClient) do(method, path, token string, body any) (int, map[string]any) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func (a apiClient) list(token string) (int, []TaskView) {
	a.t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/task/getAll", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, req)

	var out []TaskView
	if rec.Code == http.StatusOK {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func (a apiClient) registerAndLogin(name, email, password string) (string, string) {
	a.t.Helper()

	code, body := a.do(http.MethodPost, "/user/register", "", map[string]string{
		"username": name, "email": email, "password": password,
	})
	require.Equal(a.t, http.StatusOK, code, body)

	code, body = a.do(http.MethodPost, "/user/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(a.t, http.StatusOK, code, body)
	return body["user_id"].(string), body["token"].(string)
}

func TestScenario_AliceAndBob(t *testing.T) {
	srv, _ := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}

	aliceID, alice := api.registerAndLogin("alice", "alice@example.com", "pw1")
	_, bob := api.registerAndLogin("bob", "bob@example.com", "pw2")

	code, created := api.do(http.MethodPost, "/task/create", alice, map[string]string{"taskname": "Buy milk", "status": ""})
	require.Equal(t, http.StatusOK, code, created)
	assert.Equal(t, "Pending", created["status"])
	assert.Equal(t, "Buy milk", created["taskname"])
	assert.Equal(t, aliceID, created["user_id"])
	taskID := created["task_id"].(string)

	code, updated := api.do(http.MethodPatch, "/task/update/"+taskID, alice, map[string]string{"taskname": "Buy milk", "status": "Done"})
	require.Equal(t, http.StatusOK, code, updated)
	assert.Equal(t, "Done", updated["status"])

	code, body := api.do(http.MethodPatch, "/task/update/"+taskID, bob, map[string]string{"taskname": "Buy milk", "status": "Done"})
	assert.Equal(t, http.StatusUnauthorized, code, body)

	code, list := api.list(alice)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, list, 1)
	assert.Equal(t, TaskView{TaskID: taskID, TaskName: "Buy milk", Status: "Done", UserID: aliceID}, list[0])

	code, list = api.list(bob)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, list)

	code, profile := api.do(http.MethodGet, "/user", alice, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice@example.com", profile["email"])
	assert.Equal(t, []any{taskID}, profile["tasks"])
	assert.NotContains(t, profile, "password")
}

func TestRegister_Errors(t *testing.T) {
	srv, _ := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}

	code, _ := api.do(http.MethodPost, "/user/register", "", map[string]string{"username": "a", "email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, code)

	api.registerAndLogin("a", "a@b.c", "pw")

	code, body := api.do(http.MethodPost, "/user/register", "", map[string]string{"username": "b", "email": "a@b.c", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "email already exists")

	code, body = api.do(http.MethodPost, "/user/register", "", map[string]string{"username": "c", "email": "c@b.c", "password": strings.Repeat("x", 80)})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "longer than 72 bytes")

	req := httptest.NewRequest(http.MethodPost, "/user/register", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogin_Errors(t *testing.T) {
	srv, _ := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}
	api.registerAndLogin("a", "a@b.c", "pw")

	code, _ := api.do(http.MethodPost, "/user/login", "", map[string]string{"email": "a@b.c"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, body := api.do(http.MethodPost, "/user/login", "", map[string]string{"email": "a@b.c", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["error"], "wrong password")

	code, _ = api.do(http.MethodPost, "/user/login", "", map[string]string{"email": "x@b.c", "password": "pw"})
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestProtectedRoutes_RequireBearerToken(t *testing.T) {
	srv, _ := newTestServer(t, "")
	h := srv.Handler()

	for _, path := range []string{"/user", "/task/getAll"} {
		for _, header := range []string{"", "Token abc", "Bearer ", "Bearer abc.def.ghi"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s with %q", path, header)
		}
	}
}

func TestProtectedRoutes_HideTokenParserDetail(t *testing.T) {
	srv, tokens := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}

	for _, token := range []string{"!!!", "abc.def.ghi", "a.b"} {
		code, body := api.do(http.MethodGet, "/user", token, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, common.ErrInvalidToken.Error(), body["error"], "token %q", token)
	}

	valid, err := tokens.Issue("u1", "alice")
	require.NoError(t, err)
	code, body := api.do(http.MethodGet, "/user", valid[:len(valid)-4]+"AAAA", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, common.ErrInvalidToken.Error(), body["error"])
}

func TestTaskRoutes_Errors(t *testing.T) {
	srv, _ := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}
	_, token := api.registerAndLogin("a", "a@b.c", "pw")

	code, _ := api.do(http.MethodPost, "/task/create", token, map[string]string{"taskname": ""})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodPatch, "/task/update/not-an-id", token, map[string]string{"taskname": "a", "status": "b"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = api.do(http.MethodPatch, "/task/update/9b2f8c64-5d0e-4c3a-9f1e-2a7b6c5d4e3f", token, map[string]string{"taskname": "a", "status": "b"})
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = api.do(http.MethodPatch, "/task/update/9b2f8c64-5d0e-4c3a-9f1e-2a7b6c5d4e3f", token, map[string]string{"taskname": "a"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, created := api.do(http.MethodPost, "/task/create", token, map[string]string{"taskname": "Buy milk"})
	require.Equal(t, http.StatusOK, code, created)
	id := created["task_id"].(string)

	code, body := api.do(http.MethodPatch, "/task/update/"+id, token, map[string]string{"taskname": "   ", "status": "Done"})
	assert.Equal(t, http.StatusBadRequest, code, body)

	code, body = api.do(http.MethodPatch, "/task/update/%7B"+id+"%7D", token, map[string]string{"taskname": "a", "status": "b"})
	assert.Equal(t, http.StatusBadRequest, code, body)

	_, tasks := api.list(token)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].TaskName)
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, "")
	api := apiClient{t: t, h: srv.Handler()}

	code, body := api.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])
}
