package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"
)

const (
	recentListLimit = 10
	exportLimit     = 1000
)

// handleRecentCommand so'nggi ticketlar ro'yxati (faqat admin uchun)
func (h *BotHandler) handleRecentCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.isAdmin(chatID) {
		h.sendMessage(chatID, "Unknown command. Send /help for the list of commands.")
		return
	}

	records, err := h.journal.ListRecent(ctx, recentListLimit)
	if err != nil {
		log.Printf("[journal] list recent failed: %v", err)
		h.sendMessage(chatID, "❌ Could not read the ticket journal.")
		return
	}
	if len(records) == 0 {
		h.sendMessage(chatID, "No tickets have been filed yet.")
		return
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🎫 Last %d tickets:\n\n", len(records))
	for _, rec := range records {
		fmt.Fprintf(&b, "%s — %s, %s, %s (%s)\n",
			rec.TicketKey, rec.Name, rec.Service, rec.Location, rec.CreatedAt.Format("2006-01-02 15:04"))
	}
	h.sendMessage(chatID, b.String())
}

// handleExportCommand jurnal yozuvlarini xlsx fayl qilib yuborish (admin)
func (h *BotHandler) handleExportCommand(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.isAdmin(chatID) {
		h.sendMessage(chatID, "Unknown command. Send /help for the list of commands.")
		return
	}

	records, err := h.journal.ListRecent(ctx, exportLimit)
	if err != nil {
		log.Printf("[journal] export query failed: %v", err)
		h.sendMessage(chatID, "❌ Could not read the ticket journal.")
		return
	}
	if len(records) == 0 {
		h.sendMessage(chatID, "No tickets to export yet.")
		return
	}

	xlsxBytes, err := buildTicketExportXLSX(records)
	if err != nil {
		log.Printf("[journal] export build failed: %v", err)
		h.sendMessage(chatID, "❌ Could not build the export file.")
		return
	}

	if h.bot == nil {
		return
	}
	filename := fmt.Sprintf("tickets_%s.xlsx", time.Now().Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{Name: filename, Bytes: xlsxBytes})
	doc.Caption = fmt.Sprintf("📊 %d tickets", len(records))
	if _, err := h.bot.Send(doc); err != nil {
		log.Printf("export yuborishda xatolik chat=%d: %v", chatID, err)
	}
}

func buildTicketExportXLSX(records []ticketRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	headers := []string{"Ticket", "Chat ID", "Username", "Name", "Phone", "Location", "Service", "Description", "Created At"}
	for i, hdr := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, hdr); err != nil {
			return nil, err
		}
	}

	for r, rec := range records {
		values := []interface{}{
			rec.TicketKey,
			rec.ChatID,
			rec.Username,
			rec.Name,
			rec.Phone,
			rec.Location,
			rec.Service,
			rec.Description,
			rec.CreatedAt.Format(time.RFC3339),
		}
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
