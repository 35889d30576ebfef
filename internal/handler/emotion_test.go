package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestEmotionHandler_List_MissingEmail(t *testing.T) {
	h := NewEmotionHandler(nil, newTestLogger())

	req := httptest.NewRequest(http.MethodGet, "/api/emotions", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "Email required" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}

func TestEmotionHandler_Create_MissingFields(t *testing.T) {
	h := NewEmotionHandler(nil, newTestLogger())

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"missing email", `{"text":"ok","detectedEmotion":"happy"}`, "Email required"},
		{"missing text", `{"email":"a@x.com","detectedEmotion":"happy"}`, "Text required"},
		{"missing label", `{"email":"a@x.com","text":"ok"}`, "Detected emotion required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/emotions", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Create(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", rec.Code)
			}

			var response map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if response["error"] != tt.wantMsg {
				t.Errorf("error = %q, want %q", response["error"], tt.wantMsg)
			}
		})
	}
}

func TestEmotionHandler_Create_InvalidJSON(t *testing.T) {
	h := NewEmotionHandler(nil, newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/emotions", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestEmotionHandler_DeleteAll_MissingEmail(t *testing.T) {
	h := NewEmotionHandler(nil, newTestLogger())

	req := httptest.NewRequest(http.MethodDelete, "/api/emotions", nil)
	rec := httptest.NewRecorder()

	h.DeleteAll(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	var response map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response["error"] != "Email required" {
		t.Errorf("unexpected error message: %s", response["error"])
	}
}
