package storage

import (
	"sync"
	"time"

	"github.com/yourusername/telegram-request-bot/internal/domain/entity"
	"github.com/yourusername/telegram-request-bot/internal/domain/repository"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[int64]*entity.RequestSession
}

// NewMemorySessionRepository in-memory session repository yaratish
func NewMemorySessionRepository() repository.SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[int64]*entity.RequestSession),
	}
}

// Get joriy sessiyani olish
func (m *memorySessionRepository) Get(chatID int64) (*entity.RequestSession, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[chatID]
	return session, ok
}

// GetOrCreate sessiyani olish, bo'lmasa idle holatda yaratish
func (m *memorySessionRepository) GetOrCreate(chatID int64, username string) *entity.RequestSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	if session, ok := m.sessions[chatID]; ok {
		if username != "" {
			session.Username = username
		}
		return session
	}
	session := &entity.RequestSession{
		ChatID:     chatID,
		Username:   username,
		Step:       entity.StepIdle,
		StartedAt:  time.Now(),
		LastUpdate: time.Now(),
	}
	m.sessions[chatID] = session
	return session
}

// Put sessiyani yangilash
func (m *memorySessionRepository) Put(session *entity.RequestSession) {
	if session == nil {
		return
	}
	session.LastUpdate = time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ChatID] = session
}

// Delete sessiyani o'chirish (idle holatga qaytarish)
func (m *memorySessionRepository) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}

// DeleteIdleBefore tashlab ketilgan sessiyalarni tozalash
func (m *memorySessionRepository) DeleteIdleBefore(cutoff time.Time) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for chatID, session := range m.sessions {
		if session.LastUpdate.Before(cutoff) {
			delete(m.sessions, chatID)
			removed++
		}
	}
	return removed
}
