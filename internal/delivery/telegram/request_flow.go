package telegram

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
)

const (
	msgPhonePrompt        = "📞 Please share your phone number, or type it like 0912345678."
	msgPhoneInvalid       = "❌ That doesn't look like a valid phone number. It must be 10 digits and start with 09. Please try again."
	msgNamePrompt         = "👤 Please enter your full name:"
	msgLocationPrompt     = "📍 Please enter your location (area or address):"
	msgCategoryPrompt     = "🛠 Please choose a service category:"
	msgServicePrompt      = "🔧 Please choose a service:"
	msgDescriptionPrompt  = "📝 Please describe the problem briefly:"
	msgCatalogUnavailable = "⚠️ The service catalog is unavailable right now. Press the button below to try again."
	msgSubmitFailed       = "😔 Sorry, we couldn't file your request right now. Please try again later with /request."
	msgCancelled          = "🚫 Your request has been cancelled. Send /request to start over."
	msgNothingToCancel    = "There is no request in progress. Send /request to start one."
)

// beginRequest yangi so'rov oqimini boshlash.
// Restart always starts from a clean session, nothing is carried over.
func (h *BotHandler) beginRequest(chatID int64, username string) {
	session := h.sessions.GetOrCreate(chatID, username)
	*session = entity.RequestSession{
		ChatID:    chatID,
		Username:  username,
		Step:      entity.StepPhone,
		StartedAt: time.Now(),
	}
	h.sessions.Put(session)
	if _, err := h.sendWithMarkup(chatID, msgPhonePrompt, phoneRequestKeyboard()); err != nil {
		log.Printf("phone prompt failed chat=%d err=%v", chatID, err)
	}
}

func (h *BotHandler) cancelRequest(chatID int64) {
	session, ok := h.sessions.Get(chatID)
	if !ok || !session.Active() {
		h.sendMessage(chatID, msgNothingToCancel)
		return
	}
	h.sessions.Delete(chatID)
	h.hideReplyKeyboard(chatID, msgCancelled)
}

// handleFlowMessage joriy bosqichga qarab matnli xabarni qayta ishlash
func (h *BotHandler) handleFlowMessage(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	session, ok := h.sessions.Get(chatID)
	if !ok || !session.Active() {
		// Idle chats only react to commands.
		return
	}

	switch session.Step {
	case entity.StepPhone:
		h.handlePhoneInput(session, message)
	case entity.StepName:
		h.handleNameInput(session, message)
	case entity.StepLocation:
		h.handleLocationInput(ctx, session, message)
	case entity.StepCategorySelect, entity.StepServiceSelect:
		// Bu bosqichlarda tugma kutilyapti, erkin matn e'tiborga olinmaydi.
	case entity.StepDescription:
		h.handleDescriptionInput(ctx, session, message)
	}
}

func (h *BotHandler) handlePhoneInput(session *entity.RequestSession, message *tgbotapi.Message) {
	chatID := session.ChatID

	if message.Contact != nil && message.Contact.PhoneNumber != "" {
		// Telegram kontakti allaqachon tasdiqlangan raqam hisoblanadi.
		session.Phone = normalizeContactPhone(message.Contact.PhoneNumber)
	} else {
		text := strings.TrimSpace(message.Text)
		if text == "" {
			return
		}
		if !validatePhone(text) {
			h.sendMessage(chatID, msgPhoneInvalid)
			return
		}
		session.Phone = normalizePhone(text)
	}

	session.Step = entity.StepName
	h.sessions.Put(session)
	h.hideReplyKeyboard(chatID, msgNamePrompt)
}

func (h *BotHandler) handleNameInput(session *entity.RequestSession, message *tgbotapi.Message) {
	name := strings.TrimSpace(message.Text)
	if name == "" {
		return
	}
	session.Name = name
	session.Step = entity.StepLocation
	h.sessions.Put(session)
	h.sendMessage(session.ChatID, msgLocationPrompt)
}

func (h *BotHandler) handleLocationInput(ctx context.Context, session *entity.RequestSession, message *tgbotapi.Message) {
	location := strings.TrimSpace(message.Text)
	if location == "" {
		return
	}
	session.Location = location
	session.Step = entity.StepCategorySelect
	h.sessions.Put(session)
	h.showCategoryMenu(ctx, session)
}

// showCategoryMenu kategoriyalarni ko'rsatish. Katalog xatosida sessiya
// StepCategorySelect da qoladi va foydalanuvchi qayta urinishi mumkin.
func (h *BotHandler) showCategoryMenu(ctx context.Context, session *entity.RequestSession) {
	chatID := session.ChatID

	categories, err := h.catalogRepo.ListCategories(ctx)
	if err != nil {
		log.Printf("[catalog] list categories failed chat=%d err=%v", chatID, err)
		h.sendWithMarkup(chatID, msgCatalogUnavailable, retryKeyboard())
		return
	}
	if len(categories) == 0 {
		log.Printf("[catalog] empty category list chat=%d", chatID)
		h.sendWithMarkup(chatID, msgCatalogUnavailable, retryKeyboard())
		return
	}

	h.sendWithMarkup(chatID, msgCategoryPrompt, categoryKeyboard(categories))
}

func (h *BotHandler) handleDescriptionInput(ctx context.Context, session *entity.RequestSession, message *tgbotapi.Message) {
	description := strings.TrimSpace(message.Text)
	if description == "" {
		return
	}
	session.Description = description
	h.sessions.Put(session)
	h.finishRequest(ctx, session)
}

// finishRequest to'plangan ma'lumotlardan ticket ochish.
// Natijadan qat'i nazar sessiya yakunlanadi: muvaffaqiyatda ham,
// xatolikda ham keyingi urinish /request bilan noldan boshlanadi.
func (h *BotHandler) finishRequest(ctx context.Context, session *entity.RequestSession) {
	chatID := session.ChatID

	submitCtx := ctx
	if h.submitTimeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, h.submitTimeout)
		defer cancel()
	}

	key, err := h.requestUseCase.Submit(submitCtx, session)
	h.sessions.Delete(chatID)

	if err != nil {
		log.Printf("[flow] submit failed chat=%d err=%v", chatID, err)
		h.sendMessage(chatID, msgSubmitFailed)
		return
	}

	h.recordTicket(ctx, session, key)
	h.sendMessage(chatID, buildConfirmationMessage(session, key))
}

func (h *BotHandler) recordTicket(ctx context.Context, session *entity.RequestSession, key string) {
	if h.journal == nil {
		return
	}
	rec := ticketRecord{
		TicketKey:   key,
		ChatID:      session.ChatID,
		Username:    session.Username,
		Name:        session.Name,
		Phone:       session.Phone,
		Location:    session.Location,
		Service:     session.ServiceLabel,
		Description: session.Description,
	}
	if err := h.journal.Save(ctx, rec); err != nil {
		// Jurnal yordamchi qatlam, xatolik oqimni to'xtatmaydi.
		log.Printf("[journal] save failed chat=%d ticket=%s err=%v", session.ChatID, key, err)
	}
}

func buildConfirmationMessage(session *entity.RequestSession, key string) string {
	var b strings.Builder
	b.WriteString("✅ Thank you! Your request has been filed.\n\n")
	fmt.Fprintf(&b, "🎫 Ticket: %s\n", key)
	fmt.Fprintf(&b, "👤 Name: %s\n", session.Name)
	fmt.Fprintf(&b, "📍 Location: %s\n", session.Location)
	fmt.Fprintf(&b, "🔧 Service: %s\n", session.ServiceLabel)
	fmt.Fprintf(&b, "📞 Phone: %s\n", session.Phone)
	fmt.Fprintf(&b, "📝 Description: %s\n", session.Description)
	b.WriteString("\nOur team will contact you shortly.")
	return b.String()
}
