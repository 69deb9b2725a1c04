package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

// handleCallback inline tugma bosilganda chaqiriladi
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID

	session, ok := h.sessions.Get(chatID)
	if !ok || !session.Active() {
		// Tugma eski xabardan bosilgan, sessiya allaqachon tugagan.
		h.answerCallback(cq.ID, "This menu is no longer active.")
		return
	}

	sel := decodeSelection(cq.Data)
	switch sel.kind {
	case selectCategory:
		h.handleCategorySelection(ctx, session, cq, sel.key)
	case selectService:
		h.handleServiceSelection(ctx, session, cq, sel.key)
	case selectRetry:
		h.handleCatalogRetry(ctx, session, cq)
	default:
		log.Printf("[callback] unknown payload chat=%d data=%q", chatID, cq.Data)
		h.answerCallback(cq.ID, "")
	}
}

func (h *BotHandler) handleCategorySelection(ctx context.Context, session *entity.RequestSession, cq *tgbotapi.CallbackQuery, key string) {
	if session.Step != entity.StepCategorySelect {
		// Noto'g'ri bosqichdagi bosish sessiyani o'zgartirmaydi.
		h.answerCallback(cq.ID, "")
		return
	}
	chatID := session.ChatID

	services, err := h.catalogRepo.ListServices(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			log.Printf("[catalog] unknown category chat=%d key=%q", chatID, key)
			h.answerCallback(cq.ID, "That category is no longer available.")
			return
		}
		log.Printf("[catalog] list services failed chat=%d key=%q err=%v", chatID, key, err)
		h.answerCallback(cq.ID, "")
		h.sendWithMarkup(chatID, msgCatalogUnavailable, retryKeyboard())
		return
	}
	if len(services) == 0 {
		log.Printf("[catalog] category without services chat=%d key=%q", chatID, key)
		h.answerCallback(cq.ID, "That category has no services right now.")
		return
	}

	session.CategoryKey = key
	session.CategoryLabel = pressedButtonLabel(cq, key)
	session.Step = entity.StepServiceSelect
	h.sessions.Put(session)

	h.answerCallback(cq.ID, "")
	h.clearInlineButtons(chatID, cq.Message.MessageID)
	h.sendWithMarkup(chatID, msgServicePrompt, serviceKeyboard(services))
}

func (h *BotHandler) handleServiceSelection(ctx context.Context, session *entity.RequestSession, cq *tgbotapi.CallbackQuery, key string) {
	if session.Step != entity.StepServiceSelect {
		h.answerCallback(cq.ID, "")
		return
	}
	chatID := session.ChatID

	// Tanlov joriy kategoriyaga tegishli ekanini tekshirish: eski yoki
	// soxta payloadlar sessiyaga yozilmasligi kerak.
	services, err := h.catalogRepo.ListServices(ctx, session.CategoryKey)
	if err != nil {
		log.Printf("[catalog] service check failed chat=%d category=%q err=%v", chatID, session.CategoryKey, err)
		h.answerCallback(cq.ID, "Please try again in a moment.")
		return
	}

	var label string
	for _, s := range services {
		if s.Key == key {
			label = s.Label
			break
		}
	}
	if label == "" {
		log.Printf("[catalog] service not in category chat=%d category=%q service=%q", chatID, session.CategoryKey, key)
		h.answerCallback(cq.ID, "That service is no longer available.")
		return
	}

	session.ServiceKey = key
	session.ServiceLabel = label
	session.Step = entity.StepDescription
	h.sessions.Put(session)

	h.answerCallback(cq.ID, "")
	h.clearInlineButtons(chatID, cq.Message.MessageID)
	h.sendMessage(chatID, msgDescriptionPrompt)
}

func (h *BotHandler) handleCatalogRetry(ctx context.Context, session *entity.RequestSession, cq *tgbotapi.CallbackQuery) {
	if session.Step != entity.StepCategorySelect {
		h.answerCallback(cq.ID, "")
		return
	}
	h.answerCallback(cq.ID, "")
	h.showCategoryMenu(ctx, session)
}

// pressedButtonLabel bosilgan tugma matnini eski xabar klaviaturasidan topadi
func pressedButtonLabel(cq *tgbotapi.CallbackQuery, fallback string) string {
	if cq.Message == nil || cq.Message.ReplyMarkup == nil {
		return fallback
	}
	for _, row := range cq.Message.ReplyMarkup.InlineKeyboard {
		for _, btn := range row {
			if btn.CallbackData != nil && *btn.CallbackData == cq.Data {
				return btn.Text
			}
		}
	}
	return fallback
}
