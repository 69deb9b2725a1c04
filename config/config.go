package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	TelegramToken string `validate:"required"`

	JiraBaseURL    string `validate:"required,url"`
	JiraEmail      string `validate:"required"`
	JiraAPIToken   string `validate:"required"`
	JiraProjectKey string `validate:"required"`

	// Custom field IDs are an externally defined schema; the defaults match
	// the production Jira project but any opaque IDs work.
	FieldName     string
	FieldLocation string
	FieldPhone    string
	FieldService  string
	FieldDate     string

	CatalogSource string `validate:"oneof=static redis"`
	RedisAddr     string
	CatalogDocKey string

	AdminChatID   int64
	SubmitTimeout time.Duration
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		JiraBaseURL:    strings.TrimRight(os.Getenv("JIRA_BASE_URL"), "/"),
		JiraEmail:      os.Getenv("JIRA_EMAIL"),
		JiraAPIToken:   os.Getenv("JIRA_API_TOKEN"),
		JiraProjectKey: getEnv("JIRA_PROJECT_KEY", "SR"),
		FieldName:      getEnv("JIRA_FIELD_NAME", "customfield_10031"),
		FieldLocation:  getEnv("JIRA_FIELD_LOCATION", "customfield_10032"),
		FieldPhone:     getEnv("JIRA_FIELD_PHONE", "customfield_10033"),
		FieldService:   getEnv("JIRA_FIELD_SERVICE", "customfield_10034"),
		FieldDate:      getEnv("JIRA_FIELD_DATE", "customfield_10035"),
		CatalogSource:  getEnv("CATALOG_SOURCE", "static"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogDocKey:  getEnv("CATALOG_DOC_KEY", "service_catalog"),
		SubmitTimeout:  15 * time.Second,
	}

	if raw := strings.TrimSpace(os.Getenv("ADMIN_CHAT_ID")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_CHAT_ID noto'g'ri formatda: %v", err)
		}
		config.AdminChatID = id
	}

	if raw := strings.TrimSpace(os.Getenv("SUBMIT_TIMEOUT_SECONDS")); raw != "" {
		secs, err := strconv.Atoi(raw)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("SUBMIT_TIMEOUT_SECONDS noto'g'ri: %q", raw)
		}
		config.SubmitTimeout = time.Duration(secs) * time.Second
	}

	// Validatsiya
	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("konfiguratsiya validatsiyadan o'tmadi: %w", err)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
