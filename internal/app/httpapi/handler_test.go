package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	app "github.com/campusmap/campus-api/internal/app"
	"github.com/campusmap/campus-api/internal/auth"
	"github.com/campusmap/campus-api/internal/middleware"
)

// newTestServer wires the full stack on the memory store: router, auth
// middleware and admin gating, exactly as the runtime assembles it.
func newTestServer(t *testing.T) (*httptest.Server, *auth.Manager) {
	t.Helper()
	tokens := auth.NewManager("test-secret", time.Hour)
	application := app.New(app.Stores{}, app.Options{Tokens: tokens}, nil)

	router := NewRouter(application, middleware.RequireAdmin)
	authMW := middleware.NewAuthMiddleware(tokens, nil, []string{"/api/auth/register", "/api/auth/login"})

	srv := httptest.NewServer(authMW.Handler(router))
	t.Cleanup(srv.Close)
	return srv, tokens
}

func doJSON(t *testing.T, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]interface{}
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func registerAndLogin(t *testing.T, srv *httptest.Server, email string) (int64, string) {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", "", map[string]string{
		"email": email, "password": "s3cret-pass", "name": "Test User",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d (%v)", resp.StatusCode, body)
	}
	userID := int64(body["user_id"].(float64))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", "", map[string]string{
		"email": email, "password": "s3cret-pass",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login: expected 200, got %d (%v)", resp.StatusCode, body)
	}
	return userID, body["token"].(string)
}

func TestRegisterLoginAndMe(t *testing.T) {
	srv, _ := newTestServer(t)
	userID, token := registerAndLogin(t, srv, "alice@example.com")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/users/me", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me: expected 200, got %d", resp.StatusCode)
	}
	if int64(body["user_id"].(float64)) != userID {
		t.Fatalf("wrong user returned")
	}
	if _, leaked := body["password_hash"]; leaked {
		t.Fatalf("password hash must not be serialized")
	}
}

func TestUnauthenticatedRejected(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/questions", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestQuestionLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	_, authorToken := registerAndLogin(t, srv, "author@example.com")
	_, otherToken := registerAndLogin(t, srv, "other@example.com")

	resp, created := doJSON(t, http.MethodPost, srv.URL+"/api/questions", authorToken, map[string]string{
		"title": "Where is room B204?",
		"text":  "I cannot find it on the second floor map.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", resp.StatusCode, created)
	}
	qID := int64(created["question_id"].(float64))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+fmt.Sprintf("/api/questions/%d", qID), otherToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", resp.StatusCode)
	}

	// Partial update by a non-author is forbidden.
	resp, _ = doJSON(t, http.MethodPut, srv.URL+fmt.Sprintf("/api/questions/update/%d", qID), otherToken, map[string]string{
		"title": "Hijacked title attempt",
	})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign update: expected 403, got %d", resp.StatusCode)
	}

	resp, updated := doJSON(t, http.MethodPut, srv.URL+fmt.Sprintf("/api/questions/update/%d", qID), authorToken, map[string]string{
		"title": "Where exactly is room B204?",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d", resp.StatusCode)
	}
	if updated["text"] != created["text"] {
		t.Fatalf("omitted field must keep its value")
	}

	// The status flag must be an explicit boolean.
	resp, _ = doJSON(t, http.MethodPatch, srv.URL+fmt.Sprintf("/api/questions/%d/status", qID), authorToken, map[string]string{
		"is_closed": "yes",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("string status: expected 400, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodPatch, srv.URL+fmt.Sprintf("/api/questions/%d/status", qID), authorToken, map[string]interface{}{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("missing status: expected 400, got %d", resp.StatusCode)
	}
	resp, closed := doJSON(t, http.MethodPatch, srv.URL+fmt.Sprintf("/api/questions/%d/status", qID), authorToken, map[string]bool{
		"is_closed": true,
	})
	if resp.StatusCode != http.StatusOK || closed["is_closed"] != true {
		t.Fatalf("close: expected 200 with is_closed=true, got %d (%v)", resp.StatusCode, closed)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/questions/delete/%d", qID), otherToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403, got %d", resp.StatusCode)
	}
	resp, msg := doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/questions/delete/%d", qID), authorToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d", resp.StatusCode)
	}
	if msg["message"] == "" {
		t.Fatalf("expected a message body")
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+fmt.Sprintf("/api/questions/%d", qID), authorToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", resp.StatusCode)
	}
}

func TestAnswerLifecycle(t *testing.T) {
	srv, _ := newTestServer(t)
	_, askerToken := registerAndLogin(t, srv, "asker@example.com")
	_, helperToken := registerAndLogin(t, srv, "helper@example.com")

	_, created := doJSON(t, http.MethodPost, srv.URL+"/api/questions", askerToken, map[string]string{
		"title": "Where is room B204?",
		"text":  "I cannot find it on the second floor map.",
	})
	qID := int64(created["question_id"].(float64))

	// Answering a nonexistent question is a 404 before anything is written.
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/answers", helperToken, map[string]interface{}{
		"question_id": 9999, "text": "Take the east stairwell upstairs.",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("dangling answer: expected 404, got %d", resp.StatusCode)
	}

	resp, a := doJSON(t, http.MethodPost, srv.URL+"/api/answers", helperToken, map[string]interface{}{
		"question_id": qID, "text": "Take the east stairwell to the second floor.",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create answer: expected 201, got %d (%v)", resp.StatusCode, a)
	}
	aID := int64(a["answer_id"].(float64))

	resp, _ = doJSON(t, http.MethodGet, srv.URL+fmt.Sprintf("/api/answers/question/%d", qID), askerToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list answers: expected 200, got %d", resp.StatusCode)
	}

	// Only the question's author may mark the solution.
	resp, _ = doJSON(t, http.MethodPatch, srv.URL+fmt.Sprintf("/api/answers/%d/solution", aID), helperToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("mark by answer author: expected 403, got %d", resp.StatusCode)
	}
	resp, marked := doJSON(t, http.MethodPatch, srv.URL+fmt.Sprintf("/api/answers/%d/solution", aID), askerToken, nil)
	if resp.StatusCode != http.StatusOK || marked["is_solution"] != true {
		t.Fatalf("mark: expected 200 with is_solution=true, got %d (%v)", resp.StatusCode, marked)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/answers/%d", aID), askerToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("delete by question author: expected 403, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/answers/%d", aID), helperToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete by answer author: expected 200, got %d", resp.StatusCode)
	}
}

func TestDirectoryAdminGating(t *testing.T) {
	srv, tokens := newTestServer(t)
	_, userToken := registerAndLogin(t, srv, "user@example.com")

	// Reads are open to any authenticated user.
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/floors", userToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list floors: expected 200, got %d", resp.StatusCode)
	}

	// Writes require the admin claim.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/floors", userToken, map[string]interface{}{"number": 1})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin create: expected 403, got %d", resp.StatusCode)
	}

	adminToken, err := tokens.Issue(999, true)
	if err != nil {
		t.Fatalf("issue admin token: %v", err)
	}
	resp, floor := doJSON(t, http.MethodPost, srv.URL+"/api/floors", adminToken, map[string]interface{}{
		"number": 1, "description": "Ground floor",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("admin create: expected 201, got %d (%v)", resp.StatusCode, floor)
	}
	floorID := int64(floor["floor_id"].(float64))

	// A room on a missing floor is a 404, not a 400.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/rooms", adminToken, map[string]interface{}{
		"floor_id": 9999, "number": "B204",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("dangling room: expected 404, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/api/rooms", adminToken, map[string]interface{}{
		"floor_id": floorID, "number": "B204", "name": "Physics lab",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create room: expected 201, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+fmt.Sprintf("/api/floors/%d", floorID), userToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("non-admin delete: expected 403, got %d", resp.StatusCode)
	}
}

func TestInvalidID(t *testing.T) {
	srv, _ := newTestServer(t)
	_, token := registerAndLogin(t, srv, "user@example.com")

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/questions/abc", token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-numeric id, got %d", resp.StatusCode)
	}
}
