package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"talentmatch/internal/importer"
)

func TestNotifier_ImportCompleted(t *testing.T) {
	var gotToken string
	var gotBody map[string]any

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/imports/completed", func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("X-Internal-Token")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	n := NewNotifier(server.URL+"/api/v1/imports/completed", "secret", nil)
	if n == nil {
		t.Fatalf("expected notifier")
	}

	runID := uuid.New()
	err := n.ImportCompleted(context.Background(), importer.Summary{RunID: runID, Source: "directory", Imported: 7})
	if err != nil {
		t.Fatalf("notify error: %v", err)
	}

	if gotToken != "secret" {
		t.Fatalf("unexpected token %q", gotToken)
	}
	if gotBody["run_id"] != runID.String() {
		t.Fatalf("unexpected run_id %v", gotBody["run_id"])
	}
	if gotBody["source"] != "directory" {
		t.Fatalf("unexpected source %v", gotBody["source"])
	}
	if gotBody["imported"] != float64(7) {
		t.Fatalf("unexpected imported %v", gotBody["imported"])
	}
	if gotBody["completed_at"] == "" {
		t.Fatalf("expected completed_at")
	}
}

func TestNotifier_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))
	defer server.Close()

	n := NewNotifier(server.URL, "wrong", nil)
	err := n.ImportCompleted(context.Background(), importer.Summary{RunID: uuid.New(), Source: "directory"})
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestNewNotifier_EmptyEndpoint(t *testing.T) {
	if n := NewNotifier("   ", "tok", nil); n != nil {
		t.Fatalf("expected nil notifier for empty endpoint")
	}
}
