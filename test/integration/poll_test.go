package integration

import (
	"fmt"
	"net/http"
	"testing"
)

func TestPollFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	status, _ := app.postJSON(t, "/auth/register", "", map[string]string{
		"email":    "owner@x.com",
		"password": "p1",
	})
	if status != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d", status)
	}

	status, body := app.postJSON(t, "/auth/login", "", map[string]string{
		"email":    "owner@x.com",
		"password": "p1",
	})
	if status != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", status)
	}
	accessToken, _ := body["accessToken"].(string)

	// Creating without a token is rejected
	status, _ = app.postJSON(t, "/api/polls", "", map[string]string{"title": "nope"})
	if status != http.StatusUnauthorized {
		t.Fatalf("unauthenticated create: expected 401, got %d", status)
	}

	// Create
	status, body = app.postJSON(t, "/api/polls", accessToken, map[string]string{
		"title":   "Team lunch",
		"summary": "Pick a place",
	})
	if status != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%v)", status, body)
	}
	pollID, _ := body["id"].(string)
	if pollID == "" {
		t.Fatalf("create: missing poll id in %v", body)
	}

	// Public list
	status, decoded := app.doJSON(t, http.MethodGet, "/api/polls", "", nil)
	if status != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", status)
	}
	if list, ok := decoded.([]any); !ok || len(list) != 1 {
		t.Fatalf("list: expected one poll, got %v", decoded)
	}

	// Update
	status, _ = app.doJSON(t, http.MethodPut, "/api/polls/"+pollID, accessToken, map[string]string{
		"title": "Team lunch (updated)",
	})
	if status != http.StatusNoContent {
		t.Fatalf("update: expected 204, got %d", status)
	}

	// Toggle publish
	status, _ = app.doJSON(t, http.MethodPut, fmt.Sprintf("/api/polls/%s/toggle-publish", pollID), accessToken, nil)
	if status != http.StatusNoContent {
		t.Fatalf("toggle: expected 204, got %d", status)
	}

	status, decoded = app.doJSON(t, http.MethodGet, "/api/polls/"+pollID, "", nil)
	if status != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", status)
	}
	poll, _ := decoded.(map[string]any)
	if published, _ := poll["is_published"].(bool); !published {
		t.Fatalf("get: expected poll to be published, got %v", poll)
	}
	if title, _ := poll["title"].(string); title != "Team lunch (updated)" {
		t.Fatalf("get: unexpected title %q", title)
	}

	// Delete
	status, _ = app.doJSON(t, http.MethodDelete, "/api/polls/"+pollID, accessToken, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", status)
	}

	status, decoded = app.doJSON(t, http.MethodGet, "/api/polls/"+pollID, "", nil)
	if status != http.StatusNotFound {
		t.Fatalf("get deleted: expected 404, got %d", status)
	}
	problem, _ := decoded.(map[string]any)
	if code := problem["code"]; code != "Poll.NotFound" {
		t.Fatalf("get deleted: unexpected error code %v", code)
	}
}
