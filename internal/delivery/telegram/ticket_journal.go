package telegram

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
)

// ticketRecord - yuborilgan ticket haqida jurnal yozuvi
type ticketRecord struct {
	ID          string
	TicketKey   string
	ChatID      int64
	Username    string
	Name        string
	Phone       string
	Location    string
	Service     string
	Description string
	CreatedAt   time.Time
}

// TicketJournal keeps an audit trail of filed tickets. The conversation
// flow never reads from it, the issue tracker stays the source of truth.
type TicketJournal interface {
	Save(ctx context.Context, rec ticketRecord) error
	ListRecent(ctx context.Context, limit int) ([]ticketRecord, error)
}

type memoryTicketJournal struct {
	mu   sync.RWMutex
	data []ticketRecord
}

func newMemoryTicketJournal() *memoryTicketJournal {
	return &memoryTicketJournal{data: make([]ticketRecord, 0, 64)}
}

func (m *memoryTicketJournal) Save(_ context.Context, rec ticketRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	m.mu.Lock()
	m.data = append(m.data, rec)
	m.mu.Unlock()
	return nil
}

func (m *memoryTicketJournal) ListRecent(_ context.Context, limit int) ([]ticketRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var res []ticketRecord
	for i := len(m.data) - 1; i >= 0; i-- {
		res = append(res, m.data[i])
		if limit > 0 && len(res) >= limit {
			break
		}
	}
	return res, nil
}

type postgresTicketJournal struct {
	db *sql.DB
}

func newPostgresTicketJournal(dsn string) (*postgresTicketJournal, error) {
	db, err := openPostgresWithRetry(dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	schema := `
CREATE TABLE IF NOT EXISTS tickets (
	id UUID PRIMARY KEY,
	ticket_key TEXT NOT NULL,
	chat_id BIGINT NOT NULL,
	username TEXT,
	name TEXT,
	phone TEXT,
	location TEXT,
	service TEXT,
	description TEXT,
	created_at TIMESTAMPTZ DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS idx_tickets_created_at ON tickets (created_at DESC);
`
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create tickets table: %w", err)
	}

	return &postgresTicketJournal{db: db}, nil
}

func (p *postgresTicketJournal) Save(ctx context.Context, rec ticketRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	_, err := p.db.ExecContext(ctx, `
INSERT INTO tickets (id, ticket_key, chat_id, username, name, phone, location, service, description, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.TicketKey, rec.ChatID, rec.Username, rec.Name, rec.Phone, rec.Location, rec.Service, rec.Description, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ticket record: %w", err)
	}
	return nil
}

func (p *postgresTicketJournal) ListRecent(ctx context.Context, limit int) ([]ticketRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := p.db.QueryContext(ctx, `
SELECT id, ticket_key, chat_id, username, name, phone, location, service, description, created_at
FROM tickets
ORDER BY created_at DESC
LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query ticket records: %w", err)
	}
	defer rows.Close()

	var res []ticketRecord
	for rows.Next() {
		var rec ticketRecord
		if err := rows.Scan(&rec.ID, &rec.TicketKey, &rec.ChatID, &rec.Username, &rec.Name, &rec.Phone, &rec.Location, &rec.Service, &rec.Description, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ticket record: %w", err)
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

// newTicketJournalFromEnv Postgres sozlangan bo'lsa unga, bo'lmasa
// xotiradagi jurnalga qaytadi.
func newTicketJournalFromEnv() (TicketJournal, error) {
	dsn := strings.TrimSpace(os.Getenv("POSTGRES_DSN"))
	if dsn == "" {
		dsn = buildPostgresDSNFromEnv()
	}
	if strings.TrimSpace(dsn) == "" {
		return newMemoryTicketJournal(), nil
	}
	journal, err := newPostgresTicketJournal(dsn)
	if err != nil {
		log.Printf("ticket journal: Postgres ulanmadi, memory jurnalga qaytdi: %v", err)
		return newMemoryTicketJournal(), nil
	}
	return journal, nil
}

const (
	postgresConnectAttempts = 5
	postgresConnectDelay    = 2 * time.Second
)

func openPostgresWithRetry(dsn string) (*sql.DB, error) {
	var lastErr error
	for attempt := 1; attempt <= postgresConnectAttempts; attempt++ {
		db, err := sql.Open("postgres", dsn)
		if err == nil {
			if pingErr := db.Ping(); pingErr == nil {
				return db, nil
			} else {
				err = pingErr
			}
		}
		if db != nil {
			_ = db.Close()
		}
		lastErr = err
		if attempt < postgresConnectAttempts {
			time.Sleep(postgresConnectDelay)
		}
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("postgres connection failed")
	}
	return nil, lastErr
}

func buildPostgresDSNFromEnv() string {
	host := strings.TrimSpace(os.Getenv("POSTGRES_HOST"))
	user := strings.TrimSpace(os.Getenv("POSTGRES_USER"))
	password := os.Getenv("POSTGRES_PASSWORD")
	db := strings.TrimSpace(os.Getenv("POSTGRES_DB"))
	port := strings.TrimSpace(os.Getenv("POSTGRES_PORT"))
	sslmode := strings.TrimSpace(os.Getenv("POSTGRES_SSLMODE"))

	if host == "" || user == "" || db == "" {
		return ""
	}
	if port == "" {
		port = "5432"
	}
	if sslmode == "" {
		sslmode = "disable"
	}

	db = strings.TrimPrefix(db, "/")
	u := url.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(host, port),
		Path:   "/" + db,
	}
	if password == "" {
		u.User = url.User(user)
	} else {
		u.User = url.UserPassword(user, password)
	}
	q := u.Query()
	q.Set("sslmode", sslmode)
	u.RawQuery = q.Encode()
	return u.String()
}
