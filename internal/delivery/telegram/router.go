package telegram

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start botni ishga tushirish
func (h *BotHandler) Start(ctx context.Context) error {
	h.workerPool.start(ctx)
	go h.cleanupSessions(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			h.workerPool.shutdown()
			return ctx.Err()
		case update := <-updates:
			chatID := updateChatID(update)
			if chatID == 0 {
				continue
			}
			h.workerPool.submit(&updateRequest{ctx: ctx, chatID: chatID, update: update})
		}
	}
}

func updateChatID(update tgbotapi.Update) int64 {
	if update.CallbackQuery != nil && update.CallbackQuery.Message != nil && update.CallbackQuery.Message.Chat != nil {
		return update.CallbackQuery.Message.Chat.ID
	}
	if update.Message != nil && update.Message.Chat != nil {
		return update.Message.Chat.ID
	}
	return 0
}

// dispatch bitta update ni to'liq qayta ishlaydi.
// The worker pool routes every update for a chat to the same worker, so a
// session is only ever touched by one handler at a time.
func (h *BotHandler) dispatch(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	message := update.Message
	if message == nil || message.Chat == nil {
		return
	}
	if !message.Chat.IsPrivate() {
		return
	}

	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}
	if message.Text != "" || message.Contact != nil {
		h.handleFlowMessage(ctx, message)
	}
}

// cleanupSessions tashlab ketilgan sessiyalarni davriy tozalash
func (h *BotHandler) cleanupSessions(ctx context.Context) {
	ticker := time.NewTicker(sessionCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := h.sessions.DeleteIdleBefore(time.Now().Add(-sessionTimeout)); removed > 0 {
				log.Printf("cleaned up %d abandoned sessions", removed)
			}
		}
	}
}
