package telegram

import (
	"log"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	if h.bot == nil {
		log.Printf("sendMessage skipped (bot is nil) chat=%d text=%q", chatID, truncateForLog(text, 120))
		return
	}
	for _, chunk := range splitIntoChunks(text, 4096) {
		msg := tgbotapi.NewMessage(chatID, chunk)
		if _, err := h.bot.Send(msg); err != nil {
			log.Printf("xabar yuborishda xatolik chat=%d: %v", chatID, err)
			return
		}
	}
}

// sendWithMarkup klaviatura bilan xabar yuborish
func (h *BotHandler) sendWithMarkup(chatID int64, text string, markup interface{}) (*tgbotapi.Message, error) {
	if h.bot == nil {
		log.Printf("sendWithMarkup skipped (bot is nil) chat=%d", chatID)
		return nil, nil
	}
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}
	sent, err := h.bot.Send(msg)
	if err != nil {
		log.Printf("xabar yuborishda xatolik chat=%d: %v", chatID, err)
		return nil, err
	}
	return &sent, nil
}

// hideReplyKeyboard reply klaviaturani yashirish (telefon bosqichi tugagach)
func (h *BotHandler) hideReplyKeyboard(chatID int64, text string) {
	if h.bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewRemoveKeyboard(true)
	if _, err := h.bot.Send(msg); err != nil {
		log.Printf("remove keyboard failed chat=%d err=%v", chatID, err)
	}
}

// answerCallback tugma bosilganini tasdiqlash (spinner to'xtatish)
func (h *BotHandler) answerCallback(callbackID, text string) {
	if h.bot == nil || callbackID == "" {
		return
	}
	callback := tgbotapi.NewCallback(callbackID, text)
	if _, err := h.bot.Request(callback); err != nil {
		log.Printf("callback answer failed: %v", err)
	}
}

// clearInlineButtons eski xabardagi tugmalarni olib tashlash
func (h *BotHandler) clearInlineButtons(chatID int64, messageID int) {
	if h.bot == nil || chatID == 0 || messageID == 0 {
		return
	}
	empty := [][]tgbotapi.InlineKeyboardButton{}
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{InlineKeyboard: empty})
	if _, err := h.bot.Request(edit); err != nil {
		log.Printf("inline keyboard clear failed: %v", err)
	}
}

// splitIntoChunks matnni Telegram limitiga mos bo'lib yuborish uchun bo'ladi
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	for _, r := range s {
		current.WriteRune(r)
		if current.Len() >= limit {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}

	return chunks
}

func truncateForLog(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
