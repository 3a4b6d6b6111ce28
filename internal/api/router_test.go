package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brandistry/internal/api"
	"brandistry/internal/model"
	"brandistry/internal/persist"
	"brandistry/internal/service/assistant"
	"brandistry/internal/service/drive"
	"brandistry/internal/store"
)

const testSecret = "test-secret"

func newTestRouter(t *testing.T) (*api.Router, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop()
	s := store.New(persist.Noop{}, logger)
	s.Load(context.Background())

	assistantClient := assistant.NewClient("", nil, logger)
	driveClient := drive.NewClient(logger)

	r := api.NewRouter(
		api.NewAuthHandler(s, testSecret),
		api.NewUserHandler(s),
		api.NewClientHandler(s),
		api.NewProjectHandler(s),
		api.NewTaskHandler(s),
		api.NewAssetHandler(s),
		api.NewChatHandler(s),
		api.NewNotificationHandler(s),
		api.NewAssistantHandler(s, assistantClient),
		api.NewDriveHandler(driveClient),
		api.NewSettingsHandler(s),
		s,
		testSecret,
	)
	return r, s
}

func doJSON(t *testing.T, r *api.Router, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.Engine.ServeHTTP(w, req)

	decoded := map[string]json.RawMessage{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("%s %s: response not JSON: %s", method, path, w.Body.String())
		}
	}
	return w, decoded
}

func login(t *testing.T, r *api.Router, email string) string {
	t.Helper()
	w, body := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    email,
		"password": "password123",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login(%s): %d %s", email, w.Code, w.Body.String())
	}
	var token string
	if err := json.Unmarshal(body["token"], &token); err != nil {
		t.Fatalf("token missing: %v", err)
	}
	return token
}

func TestHealthz(t *testing.T) {
	r, _ := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz: %d", w.Code)
	}
}

func TestLoginAndMe(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "alex@brandistry.com")

	w, body := doJSON(t, r, http.MethodGet, "/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	var u struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body["user"], &u); err != nil || u.ID != "u1" {
		t.Fatalf("unexpected user: %s", body["user"])
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r, _ := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/login", "", gin.H{
		"email":    "alex@brandistry.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := doJSON(t, r, http.MethodGet, "/users", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/users", "garbage", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("invalid token: expected 401, got %d", w.Code)
	}
}

func TestAdminRoutesGatedByRole(t *testing.T) {
	r, _ := newTestRouter(t)
	worker := login(t, r, "maria@brandistry.com")
	admin := login(t, r, "alex@brandistry.com")

	w, _ := doJSON(t, r, http.MethodPost, "/users", worker, gin.H{"email": "x@y.com"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("worker creating users: expected 403, got %d", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodPost, "/users", admin, gin.H{
		"name": "Nadia", "email": "nadia@brandistry.com",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("admin creating users: %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterConflict(t *testing.T) {
	r, _ := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodPost, "/register", "", gin.H{
		"email": "maria@brandistry.com", "password": "whatever",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", w.Code)
	}
}

func TestImpersonationFlow(t *testing.T) {
	r, s := newTestRouter(t)
	admin := login(t, r, "alex@brandistry.com")

	// Without approval the switch is refused.
	w, _ := doJSON(t, r, http.MethodPost, "/impersonate", admin, gin.H{"target_user_id": "w1"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("unapproved impersonation: expected 403, got %d", w.Code)
	}

	// File and approve the access request, then retry.
	w, _ = doJSON(t, r, http.MethodPost, "/users/w1/access-requests", admin, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("access request: %d %s", w.Code, w.Body.String())
	}

	target := login(t, r, "maria@brandistry.com")
	w, _ = doJSON(t, r, http.MethodPost, "/access-requests/u1/resolve", target, gin.H{"status": "APPROVED"})
	if w.Code != http.StatusOK {
		t.Fatalf("resolve: %d %s", w.Code, w.Body.String())
	}

	w, body := doJSON(t, r, http.MethodPost, "/impersonate", admin, gin.H{"target_user_id": "w1"})
	if w.Code != http.StatusOK {
		t.Fatalf("approved impersonation: %d %s", w.Code, w.Body.String())
	}
	var impToken string
	if err := json.Unmarshal(body["token"], &impToken); err != nil {
		t.Fatalf("impersonation token missing")
	}

	// The impersonated session reports both identities.
	w, body = doJSON(t, r, http.MethodGet, "/me", impToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me while impersonating: %d", w.Code)
	}
	var impersonating bool
	if err := json.Unmarshal(body["impersonating"], &impersonating); err != nil || !impersonating {
		t.Fatalf("expected impersonating=true: %s", w.Body.String())
	}
	var real struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body["real_user"], &real); err != nil || real.ID != "u1" {
		t.Fatalf("real_user wrong: %s", body["real_user"])
	}

	// Admin-only routes stay open: the gate checks the real actor's role.
	w, _ = doJSON(t, r, http.MethodPost, "/impersonate/stop", impToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stop impersonation: %d %s", w.Code, w.Body.String())
	}

	// Sanity: store saw the approval.
	u, err := s.User("w1")
	if err != nil || len(u.AccessRequests) != 1 {
		t.Fatalf("request not retained: %+v err=%v", u.AccessRequests, err)
	}
}

func TestTaskLifecycleOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "alex@brandistry.com")

	w, body := doJSON(t, r, http.MethodPost, "/tasks", token, gin.H{
		"title": "Ship landing page", "projectId": "p1", "assignee": "w1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("create task: %d %s", w.Code, w.Body.String())
	}
	var task struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body["task"], &task); err != nil {
		t.Fatalf("task missing: %s", w.Body.String())
	}
	if task.Status != "TODO" {
		t.Fatalf("expected TODO default, got %s", task.Status)
	}

	w, _ = doJSON(t, r, http.MethodPatch, fmt.Sprintf("/tasks/%s/status", task.ID), token, gin.H{"status": "IN_PROGRESS"})
	if w.Code != http.StatusOK {
		t.Fatalf("status update: %d %s", w.Code, w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodDelete, "/tasks/"+task.ID, token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: %d", w.Code)
	}
	w, _ = doJSON(t, r, http.MethodDelete, "/tasks/"+task.ID, token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("double delete: expected 404, got %d", w.Code)
	}
}

func TestDriveStatusBeforeToken(t *testing.T) {
	r, _ := newTestRouter(t)
	token := login(t, r, "alex@brandistry.com")

	w, body := doJSON(t, r, http.MethodGet, "/drive/status", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("drive status: %d", w.Code)
	}
	var connected bool
	if err := json.Unmarshal(body["connected"], &connected); err != nil || connected {
		t.Fatalf("expected connected=false: %s", w.Body.String())
	}

	w, _ = doJSON(t, r, http.MethodGet, "/drive/files", token, nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("listing without drive token: expected 401, got %d", w.Code)
	}
}

func TestSelfEditCannotEscalateRole(t *testing.T) {
	r, s := newTestRouter(t)
	worker := login(t, r, "maria@brandistry.com")

	w, _ := doJSON(t, r, http.MethodPatch, "/users/w1", worker, gin.H{"role": "ADMIN"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("self role change: expected 403, got %d %s", w.Code, w.Body.String())
	}
	u, err := s.User("w1")
	if err != nil {
		t.Fatalf("User(w1): %v", err)
	}
	if u.Role != model.RoleWorker {
		t.Fatalf("role changed to %s despite rejection", u.Role)
	}

	// The worker token still fails the admin gate.
	w, _ = doJSON(t, r, http.MethodPost, "/users", worker, gin.H{"name": "Intruder"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("admin route with worker token: expected 403, got %d", w.Code)
	}

	// Plain profile fields remain self-serviceable.
	w, _ = doJSON(t, r, http.MethodPatch, "/users/w1", worker, gin.H{"name": "Maria G."})
	if w.Code != http.StatusOK {
		t.Fatalf("self profile edit: expected 200, got %d %s", w.Code, w.Body.String())
	}

	// Other users' records are off-limits to non-admins.
	w, _ = doJSON(t, r, http.MethodPatch, "/users/w2", worker, gin.H{"name": "Renamed"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("edit of another user: expected 403, got %d", w.Code)
	}
}

func TestAdminCanChangeRoles(t *testing.T) {
	r, s := newTestRouter(t)
	admin := login(t, r, "alex@brandistry.com")

	w, _ := doJSON(t, r, http.MethodPatch, "/users/w1", admin, gin.H{"role": "ADMIN"})
	if w.Code != http.StatusOK {
		t.Fatalf("admin role change: expected 200, got %d %s", w.Code, w.Body.String())
	}
	u, err := s.User("w1")
	if err != nil {
		t.Fatalf("User(w1): %v", err)
	}
	if u.Role != model.RoleAdmin {
		t.Fatalf("expected w1 promoted to ADMIN, got %s", u.Role)
	}
}
