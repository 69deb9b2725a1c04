package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

// FieldIDs tracker loyihasidagi custom field identifikatorlari
type FieldIDs struct {
	Name     string
	Location string
	Phone    string
	Service  string
	Date     string
}

// RequestUseCase so'rovni ticketga aylantirish business logic
type RequestUseCase interface {
	Submit(ctx context.Context, session *entity.RequestSession) (string, error)
}

type requestUseCase struct {
	ticketRepo repository.TicketRepository
	fieldIDs   FieldIDs
}

// NewRequestUseCase yangi RequestUseCase yaratish
func NewRequestUseCase(ticketRepo repository.TicketRepository, fieldIDs FieldIDs) RequestUseCase {
	return &requestUseCase{
		ticketRepo: ticketRepo,
		fieldIDs:   fieldIDs,
	}
}

// Submit yig'ilgan maydonlardan ticket yasab trackerga yuboradi.
// Exactly one attempt; the caller resets the session win or lose.
func (u *requestUseCase) Submit(ctx context.Context, session *entity.RequestSession) (string, error) {
	if session == nil {
		return "", fmt.Errorf("no session to submit")
	}

	attemptID := uuid.New().String()
	ticket := u.buildTicket(session, time.Now())

	key, err := u.ticketRepo.Create(ctx, ticket)
	if err != nil {
		log.Printf("[submit] attempt=%s chat=%d failed: %v", attemptID, session.ChatID, err)
		return "", fmt.Errorf("submit ticket: %w", err)
	}
	log.Printf("[submit] attempt=%s chat=%d ticket=%s", attemptID, session.ChatID, key)
	return key, nil
}

func (u *requestUseCase) buildTicket(session *entity.RequestSession, now time.Time) entity.Ticket {
	summary := strings.TrimSpace(session.ServiceLabel)
	if summary == "" {
		summary = session.ServiceKey
	}

	return entity.Ticket{
		Summary:     summary,
		Description: session.Description,
		Fields: map[string]string{
			u.fieldIDs.Name:     session.Name,
			u.fieldIDs.Location: session.Location,
			u.fieldIDs.Phone:    session.Phone,
			u.fieldIDs.Service:  summary,
			u.fieldIDs.Date:     now.Format(time.RFC3339),
		},
		SubmittedAt: now,
	}
}
