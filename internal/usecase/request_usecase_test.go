package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
)

type stubTicketRepo struct {
	created []entity.Ticket
	key     string
	err     error
}

func (s *stubTicketRepo) Create(ctx context.Context, ticket entity.Ticket) (string, error) {
	s.created = append(s.created, ticket)
	if s.err != nil {
		return "", s.err
	}
	return s.key, nil
}

var testFieldIDs = FieldIDs{
	Name:     "customfield_10031",
	Location: "customfield_10032",
	Phone:    "customfield_10033",
	Service:  "customfield_10034",
	Date:     "customfield_10035",
}

func completedSession() *entity.RequestSession {
	return &entity.RequestSession{
		ChatID:        99,
		Step:          entity.StepDescription,
		Phone:         "+251912345678",
		Name:          "Abebe Bekele",
		Location:      "Bole, Addis Ababa",
		CategoryKey:   "maintenance",
		CategoryLabel: "Maintenance",
		ServiceKey:    "electrician",
		ServiceLabel:  "Electrician",
		Description:   "Power socket sparks in the kitchen",
		StartedAt:     time.Now().Add(-time.Minute),
	}
}

func TestSubmitBuildsTicketFromSession(t *testing.T) {
	repo := &stubTicketRepo{key: "SR-42"}
	uc := NewRequestUseCase(repo, testFieldIDs)

	session := completedSession()
	before := time.Now()
	key, err := uc.Submit(context.Background(), session)
	after := time.Now()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if key != "SR-42" {
		t.Errorf("expected SR-42, got %s", key)
	}
	if len(repo.created) != 1 {
		t.Fatalf("expected 1 ticket, got %d", len(repo.created))
	}

	ticket := repo.created[0]
	if ticket.Summary != "Electrician" {
		t.Errorf("summary: %q", ticket.Summary)
	}
	if ticket.Description != session.Description {
		t.Errorf("description: %q", ticket.Description)
	}
	if ticket.Fields[testFieldIDs.Name] != session.Name ||
		ticket.Fields[testFieldIDs.Location] != session.Location ||
		ticket.Fields[testFieldIDs.Phone] != session.Phone ||
		ticket.Fields[testFieldIDs.Service] != "Electrician" {
		t.Errorf("structured fields mismatch: %+v", ticket.Fields)
	}

	// Timestamp sessiya boshidan keyin, yuborish vaqtidan oldin emas
	stamp, err := time.Parse(time.RFC3339, ticket.Fields[testFieldIDs.Date])
	if err != nil {
		t.Fatalf("timestamp is not RFC3339: %v", err)
	}
	if stamp.Before(session.StartedAt) || stamp.After(after.Add(time.Second)) {
		t.Errorf("timestamp %v outside [%v, %v]", stamp, before, after)
	}
}

func TestSubmitSummaryFallsBackToServiceKey(t *testing.T) {
	repo := &stubTicketRepo{key: "SR-1"}
	uc := NewRequestUseCase(repo, testFieldIDs)

	session := completedSession()
	session.ServiceLabel = ""
	if _, err := uc.Submit(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.created[0].Summary != "electrician" {
		t.Errorf("expected raw key fallback, got %q", repo.created[0].Summary)
	}
}

func TestSubmitPropagatesBackendError(t *testing.T) {
	repo := &stubTicketRepo{err: fmt.Errorf("boom")}
	uc := NewRequestUseCase(repo, testFieldIDs)

	if _, err := uc.Submit(context.Background(), completedSession()); err == nil {
		t.Error("expected error from backend")
	}
	// Faqat bitta urinish
	if len(repo.created) != 1 {
		t.Errorf("expected exactly one attempt, got %d", len(repo.created))
	}
}

func TestSubmitNilSession(t *testing.T) {
	uc := NewRequestUseCase(&stubTicketRepo{}, testFieldIDs)
	if _, err := uc.Submit(context.Background(), nil); err == nil {
		t.Error("expected error for nil session")
	}
}
