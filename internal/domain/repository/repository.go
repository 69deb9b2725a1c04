package repository

import (
	"context"
	"errors"
	"time"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
)

// ErrCategoryNotFound kategoriya katalogda topilmadi
var ErrCategoryNotFound = errors.New("category not found in catalog")

// CatalogRepository ikki darajali kategoriya → xizmat menyusi.
// Implementations must preserve catalog order; remote implementations
// re-fetch the document on every call (no cross-request caching).
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListServices(ctx context.Context, categoryKey string) ([]entity.ServiceOption, error)
}

// TicketRepository tashqi issue tracker bilan ishlash.
// Create files one ticket and returns the backend-assigned identifier.
type TicketRepository interface {
	Create(ctx context.Context, ticket entity.Ticket) (string, error)
}

// SessionRepository chat ID bo'yicha sessiyalarni saqlaydigan keyed store.
// Lookup/create-if-absent mediates all access; sessions never live on the
// event context.
type SessionRepository interface {
	Get(chatID int64) (*entity.RequestSession, bool)
	GetOrCreate(chatID int64, username string) *entity.RequestSession
	Put(session *entity.RequestSession)
	Delete(chatID int64)
	DeleteIdleBefore(cutoff time.Time) int
}
