package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

// fakeRunner satisfies binary.Runner, returning canned output and
// recording every argv it receives.
type fakeRunner struct {
	out   string
	err   error
	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.out, f.err
}

func (f *fakeRunner) Resolved() string { return "/usr/local/bin/tdz" }

func setupTestServer(t *testing.T, runner *fakeRunner) *Server {
	t.Helper()
	cfg := DefaultConfig()
	cfg.EnableCORS = false
	return New(cfg, runner)
}

func doRequest(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return body
}

func TestCreateTask(t *testing.T) {
	runner := &fakeRunner{out: "Task 43 added"}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/tdz/tasks", map[string]string{
		"action":   "write spec",
		"time":     "2h",
		"priority": "high",
		"project":  "core",
		"status":   "open",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d", w.Code)
	}

	body := decodeResponse(t, w)
	if body["message"] != "Task created" {
		t.Errorf("Expected message 'Task created', got %q", body["message"])
	}
	if body["result"] != "Task 43 added" {
		t.Errorf("Expected raw stdout in result, got %q", body["result"])
	}

	want := []string{
		"add", "task", "write spec",
		"--time", "2h", "--priority", "high", "--project", "core", "--status", "open",
	}
	if len(runner.calls) != 1 || !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Unexpected argv: got %v, want %v", runner.calls, want)
	}
}

func TestCreateTask_MissingAction(t *testing.T) {
	runner := &fakeRunner{}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/tasks", map[string]string{"priority": "high"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "action") {
		t.Errorf("Expected error to mention the missing field, got %q", msg)
	}
	if len(runner.calls) != 0 {
		t.Errorf("Validation failure must not invoke the binary, got %d calls", len(runner.calls))
	}
}

func TestGetTask(t *testing.T) {
	runner := &fakeRunner{out: "Task 42: write spec [open]"}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/tdz/tasks/42", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if body["task"] != "Task 42: write spec [open]" {
		t.Errorf("Expected stdout under 'task', got %v", body)
	}

	want := []string{"show", "task", "42"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Unexpected argv: got %v, want %v", runner.calls[0], want)
	}
}

func TestGetTask_NotFound(t *testing.T) {
	runner := &fakeRunner{err: errors.New("tdz execution failed: Error: task not found")}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/tdz/tasks/42", nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if body["error"] != "Task not found" {
		t.Errorf("Expected 'Task not found', got %q", body["error"])
	}
}

func TestExecutionFailureIs500(t *testing.T) {
	runner := &fakeRunner{err: errors.New("tdz execution failed (tried a, b): exit status 2")}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/tasks", nil)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "tried a, b") {
		t.Errorf("Expected attempted candidates in error, got %q", msg)
	}
}

func TestRouteAliases(t *testing.T) {
	for _, path := range []string{"/health", "/tdz/health", "/todozi/health"} {
		w := doRequest(t, setupTestServer(t, &fakeRunner{}), "GET", path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, w.Code)
		}
		body := decodeResponse(t, w)
		if body["status"] != "healthy" {
			t.Errorf("%s: expected healthy status, got %v", path, body)
		}
		if body["binary_resolved"] != true {
			t.Errorf("%s: expected binary_resolved true, got %v", path, body["binary_resolved"])
		}
	}
}

func TestRouteNotFound(t *testing.T) {
	srv := setupTestServer(t, &fakeRunner{})

	for _, tc := range []struct{ method, path string }{
		{"GET", "/no/such/route"},
		{"DELETE", "/health"},
		{"GET", "/tdz/no/such/route"},
	} {
		w := doRequest(t, srv, tc.method, tc.path, nil)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s %s: expected 404, got %d", tc.method, tc.path, w.Code)
			continue
		}
		body := decodeResponse(t, w)
		if body["error"] != "Route not found" {
			t.Errorf("%s %s: expected catch-all body, got %v", tc.method, tc.path, body)
		}
	}
}

func TestListProjects_MockFallback(t *testing.T) {
	runner := &fakeRunner{err: errors.New("tdz execution failed (tried x): exit status 1")}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/projects", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Project list must never 500, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	projects, ok := body["projects"].([]any)
	if !ok || len(projects) == 0 {
		t.Fatalf("Expected mock project list, got %v", body)
	}
	first := projects[0].(map[string]any)
	if first["name"] != "general" {
		t.Errorf("Expected mock project 'general', got %v", first)
	}
}

func TestListProjects_EmptyOutputFallsBack(t *testing.T) {
	runner := &fakeRunner{out: "   "}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/projects", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if _, ok := body["projects"].([]any); !ok {
		t.Errorf("Empty output must substitute the mock list, got %v", body)
	}
}

func TestCreateProject_FallbackEchoesInput(t *testing.T) {
	runner := &fakeRunner{err: errors.New("spawn failed")}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/projects", map[string]string{
		"name":        "skunkworks",
		"description": "secret experiments",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("Project create must never 500, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	project, ok := body["project"].(map[string]any)
	if !ok {
		t.Fatalf("Expected echoed project object, got %v", body)
	}
	if project["name"] != "skunkworks" || project["description"] != "secret experiments" {
		t.Errorf("Expected echoed input, got %v", project)
	}
}

func TestCreateProject_MissingName(t *testing.T) {
	runner := &fakeRunner{}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/projects", map[string]string{"description": "no name"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if len(runner.calls) != 0 {
		t.Errorf("Validation failure must not invoke the binary")
	}
}

func TestCreateError_RequiresAllThreeFields(t *testing.T) {
	srv := setupTestServer(t, &fakeRunner{})

	tests := []struct {
		name string
		body map[string]string
		want string
	}{
		{"missing title", map[string]string{"description": "d", "source": "s"}, "title"},
		{"missing description", map[string]string{"title": "t", "source": "s"}, "description"},
		{"missing source", map[string]string{"title": "t", "description": "d"}, "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, srv, "POST", "/errors", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("Expected 400, got %d", w.Code)
			}
			body := decodeResponse(t, w)
			if msg, _ := body["error"].(string); !strings.Contains(msg, tt.want) {
				t.Errorf("Expected error to mention %q, got %q", tt.want, msg)
			}
		})
	}
}

func TestStubRoutesDoNotInvokeBinary(t *testing.T) {
	runner := &fakeRunner{}
	srv := setupTestServer(t, runner)

	stubs := []struct{ method, path string }{
		{"GET", "/tasks/suggest"},
		{"POST", "/tasks/validate"},
		{"GET", "/tasks/7/insights"},
		{"GET", "/tasks/7/similar"},
		{"GET", "/semantic/search"},
		{"GET", "/insights"},
		{"GET", "/chat/history"},
		{"POST", "/ml/process"},
		{"POST", "/maestro/collect"},
	}

	for _, tc := range stubs {
		w := doRequest(t, srv, tc.method, tc.path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("%s %s: expected 200, got %d", tc.method, tc.path, w.Code)
			continue
		}
		body := decodeResponse(t, w)
		if msg, _ := body["message"].(string); !strings.Contains(msg, "not yet implemented") {
			t.Errorf("%s %s: expected stub message, got %v", tc.method, tc.path, body)
		}
	}

	if len(runner.calls) != 0 {
		t.Errorf("Stub routes must not invoke the binary, got %v", runner.calls)
	}
}

func TestMemoryTypesAnsweredLocally(t *testing.T) {
	runner := &fakeRunner{}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/memories/types", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var types []string
	if err := json.NewDecoder(w.Body).Decode(&types); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if len(types) == 0 || types[0] != "standard" {
		t.Errorf("Expected fixed type list, got %v", types)
	}
	if len(runner.calls) != 0 {
		t.Errorf("Memory types must not invoke the binary")
	}
}

func TestEmotionalMemories(t *testing.T) {
	runner := &fakeRunner{out: "1 memory"}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "GET", "/memories/emotional/happy", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	want := []string{"list", "memories", "--type", "emotional", "--emotion", "happy"}
	if !reflect.DeepEqual(runner.calls[0], want) {
		t.Errorf("Unexpected argv: got %v, want %v", runner.calls[0], want)
	}
}

func TestEndQueueSession_NoContent(t *testing.T) {
	runner := &fakeRunner{out: "session closed"}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/queue/end/sess-9", nil)

	if w.Code != http.StatusNoContent {
		t.Fatalf("Expected 204, got %d", w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("Expected empty body, got %q", w.Body.String())
	}
}

func TestQueuePlanValidation(t *testing.T) {
	runner := &fakeRunner{}
	srv := setupTestServer(t, runner)

	w := doRequest(t, srv, "POST", "/queue/plan", map[string]string{"task_name": "only name"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	body := decodeResponse(t, w)
	if msg, _ := body["error"].(string); !strings.Contains(msg, "task_description") {
		t.Errorf("Expected error to mention task_description, got %q", msg)
	}
}

func TestTokenGate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableCORS = false
	cfg.APIToken = "sekrit"
	srv := New(cfg, &fakeRunner{out: "[]"})

	// No token: rejected.
	req := httptest.NewRequest("GET", "/tasks", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 without token, got %d", w.Code)
	}

	// Correct token: accepted.
	req = httptest.NewRequest("GET", "/tasks", nil)
	req.Header.Set("x-api-token", "sekrit")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 with token, got %d", w.Code)
	}

	// Exempt routes stay open, under aliases too.
	for _, path := range []string{"/health", "/tdz/health", "/todozi/health", "/tdz/init"} {
		req = httptest.NewRequest("GET", path, nil)
		w = httptest.NewRecorder()
		srv.Router().ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("%s: expected 200 without token, got %d", path, w.Code)
		}
	}
}

func TestBooleanSubViews(t *testing.T) {
	runner := &fakeRunner{out: "[]"}
	srv := setupTestServer(t, runner)

	doRequest(t, srv, "GET", "/agents/available", nil)
	doRequest(t, srv, "GET", "/chunks/ready", nil)

	if !reflect.DeepEqual(runner.calls[0], []string{"list", "agents", "--available"}) {
		t.Errorf("Unexpected argv for available agents: %v", runner.calls[0])
	}
	if !reflect.DeepEqual(runner.calls[1], []string{"list", "chunks", "--ready"}) {
		t.Errorf("Unexpected argv for ready chunks: %v", runner.calls[1])
	}
}
