package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = `🛠 Service Request Bot

/request - file a new service request
/cancel - cancel the request in progress
/help - show this message

I will ask for your phone number, name, location, the service you need and a short description, then file a ticket for our team.`

const welcomeMessage = `👋 Welcome! I can file a service request for you in a few short steps.`

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	if message == nil || message.Chat == nil {
		return
	}
	chatID := message.Chat.ID
	cmd := extractCommand(message)

	switch cmd {
	case "start":
		h.sendMessage(chatID, welcomeMessage)
		h.beginRequest(chatID, senderUsername(message))
	case "request":
		h.beginRequest(chatID, senderUsername(message))
	case "help":
		h.sendMessage(chatID, helpMessage)
	case "cancel":
		h.cancelRequest(chatID)
	case "recent":
		h.handleRecentCommand(ctx, message)
	case "export":
		h.handleExportCommand(ctx, message)
	default:
		h.sendMessage(chatID, "Unknown command. Send /help for the list of commands.")
	}
}

func extractCommand(message *tgbotapi.Message) string {
	if message.IsCommand() {
		return strings.ToLower(message.Command())
	}
	text := strings.TrimSpace(message.Text)
	if !strings.HasPrefix(text, "/") {
		return ""
	}
	cmd := strings.Fields(text)[0]
	cmd = strings.TrimPrefix(cmd, "/")
	// "/cmd@botname" ko'rinishini qo'llab-quvvatlash
	if idx := strings.Index(cmd, "@"); idx >= 0 {
		cmd = cmd[:idx]
	}
	return strings.ToLower(cmd)
}

func senderUsername(message *tgbotapi.Message) string {
	if message.From == nil {
		return ""
	}
	if message.From.UserName != "" {
		return message.From.UserName
	}
	return message.From.FirstName
}
