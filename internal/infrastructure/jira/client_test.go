package jira

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
)

func testTicket() entity.Ticket {
	return entity.Ticket{
		Summary:     "Electrician",
		Description: "Power socket sparks in the kitchen",
		Fields: map[string]string{
			"customfield_10031": "Abebe Bekele",
			"customfield_10033": "+251912345678",
		},
		SubmittedAt: time.Now(),
	}
}

func TestCreateIssue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/2/issue" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "bot@example.com" || pass != "secret" {
			t.Error("missing or wrong basic auth")
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("missing content-type")
		}

		var req createIssueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		project, _ := req.Fields["project"].(map[string]interface{})
		if project["key"] != "SR" {
			t.Errorf("expected project SR, got %v", project["key"])
		}
		if req.Fields["summary"] != "Electrician" {
			t.Errorf("unexpected summary %v", req.Fields["summary"])
		}
		if req.Fields["customfield_10033"] != "+251912345678" {
			t.Errorf("custom field missing: %v", req.Fields["customfield_10033"])
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(createIssueResponse{ID: "10101", Key: "SR-42"})
	}))
	defer srv.Close()

	client := NewClient(Options{
		BaseURL:    srv.URL,
		Email:      "bot@example.com",
		APIToken:   "secret",
		ProjectKey: "SR",
	})

	key, err := client.Create(context.Background(), testTicket())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "SR-42" {
		t.Errorf("expected key SR-42, got %s", key)
	}
}

func TestCreateIssueServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"errorMessages":["field required"]}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, ProjectKey: "SR"})
	if _, err := client.Create(context.Background(), testTicket()); err == nil {
		t.Error("expected error on 400 response")
	}
}

func TestCreateIssueMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, ProjectKey: "SR"})
	if _, err := client.Create(context.Background(), testTicket()); err == nil {
		t.Error("expected error when response has no key")
	}
}

func TestCreateIssueTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client := NewClient(Options{BaseURL: srv.URL, ProjectKey: "SR", Timeout: 50 * time.Millisecond})
	if _, err := client.Create(context.Background(), testTicket()); err == nil {
		t.Error("expected timeout error")
	}
}
