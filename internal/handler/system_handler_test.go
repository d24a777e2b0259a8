package handler

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestSystemHandlerRoot(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		Status  string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &info); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if info.Name != "AGVC System" || info.Version != "1.0.0" || info.Status != "running" {
		t.Fatalf("unexpected payload: %+v", info)
	}
}

func TestSystemHandlerHealth(t *testing.T) {
	r := setupRouter(t)

	w := doRequest(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var health struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health.Status != "healthy" {
		t.Fatalf("unexpected status %q", health.Status)
	}
}
