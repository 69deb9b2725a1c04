package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/telegram-request-bot/config"
	"github.com/yourusername/telegram-request-bot/internal/delivery/telegram"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
	"github.com/yourusername/telegram-request-bot/internal/infrastructure/catalog"
	"github.com/yourusername/telegram-request-bot/internal/infrastructure/jira"
	"github.com/yourusername/telegram-request-bot/internal/infrastructure/storage"
	"github.com/yourusername/telegram-request-bot/internal/usecase"
	"github.com/yourusername/telegram-request-bot/pkg/logger"
)

func main() {
	initDefaultTimezone()

	// Logger ni ishga tushirish
	logger.Init()
	logger.InfoLogger.Println("🚀 Ilova ishga tushmoqda...")

	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Konfiguratsiya yuklanmadi: %v", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Catalog provider (static yoki Redis)
	var catalogRepo repository.CatalogRepository
	switch cfg.CatalogSource {
	case "redis":
		catalogRepo = catalog.NewRedisCatalogRepository(cfg.RedisAddr, cfg.CatalogDocKey)
		logger.InfoLogger.Printf("✅ Katalog provider tayyor (redis, doc=%s)", cfg.CatalogDocKey)
	default:
		catalogRepo = catalog.NewStaticCatalogRepository()
		logger.InfoLogger.Println("✅ Katalog provider tayyor (static)")
	}

	// 2. Issue tracker client
	ticketRepo := jira.NewClient(jira.Options{
		BaseURL:    cfg.JiraBaseURL,
		Email:      cfg.JiraEmail,
		APIToken:   cfg.JiraAPIToken,
		ProjectKey: cfg.JiraProjectKey,
		Timeout:    cfg.SubmitTimeout,
	})
	logger.InfoLogger.Printf("✅ Jira client tayyor (project=%s)", cfg.JiraProjectKey)

	// 3. Session store (in-memory, chat ID bo'yicha)
	sessionRepo := storage.NewMemorySessionRepository()
	logger.InfoLogger.Println("✅ Session store tayyor (in-memory)")

	// 4. Use case
	requestUseCase := usecase.NewRequestUseCase(ticketRepo, usecase.FieldIDs{
		Name:     cfg.FieldName,
		Location: cfg.FieldLocation,
		Phone:    cfg.FieldPhone,
		Service:  cfg.FieldService,
		Date:     cfg.FieldDate,
	})
	logger.InfoLogger.Println("✅ Use case tayyor")

	// 5. Telegram bot handler
	botHandler, err := telegram.NewBotHandler(cfg, requestUseCase, catalogRepo, sessionRepo)
	if err != nil {
		log.Fatalf("❌ Bot handler yaratilmadi: %v", err)
	}
	logger.InfoLogger.Printf("✅ Telegram bot tayyor: @%s", botHandler.GetBotUsername())

	// Context yaratish
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Botni alohida goroutine da ishga tushirish
	go func() {
		if err := botHandler.Start(ctx); err != nil {
			logger.ErrorLogger.Printf("❌ Bot xatosi: %v", err)
		}
	}()

	logger.InfoLogger.Println("🤖 Bot ishlayapti. To'xtatish uchun Ctrl+C ni bosing.")

	// Signal kutish
	<-sigChan
	logger.InfoLogger.Println("⏳ To'xtatish signali qabul qilindi...")

	// Graceful shutdown
	cancel()
	logger.InfoLogger.Println("✅ Bot to'xtatildi.")
}

func initDefaultTimezone() {
	const tzName = "Africa/Addis_Ababa"
	if loc, err := time.LoadLocation(tzName); err == nil {
		time.Local = loc
		return
	}
	time.Local = time.FixedZone(tzName, 3*60*60)
}
