package telegram

import (
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-request-bot/config"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
	"github.com/yourusername/telegram-request-bot/internal/usecase"
)

// BotHandler Telegram bot handler
type BotHandler struct {
	bot            *tgbotapi.BotAPI
	adminChatID    int64
	submitTimeout  time.Duration
	requestUseCase usecase.RequestUseCase
	catalogRepo    repository.CatalogRepository
	sessions       repository.SessionRepository
	journal        TicketJournal

	workerPool *workerPool

	botStartedAt time.Time
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	cfg *config.Config,
	requestUseCase usecase.RequestUseCase,
	catalogRepo repository.CatalogRepository,
	sessions repository.SessionRepository,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	journal, err := newTicketJournalFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to init ticket journal: %w", err)
	}

	handler := &BotHandler{
		bot:            bot,
		adminChatID:    cfg.AdminChatID,
		submitTimeout:  cfg.SubmitTimeout,
		requestUseCase: requestUseCase,
		catalogRepo:    catalogRepo,
		sessions:       sessions,
		journal:        journal,
		botStartedAt:   time.Now(),
	}

	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)

	return handler, nil
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	return h.bot.Self.UserName
}

func (h *BotHandler) isAdmin(chatID int64) bool {
	return h.adminChatID != 0 && chatID == h.adminChatID
}
