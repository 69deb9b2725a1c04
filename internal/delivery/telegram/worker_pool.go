package telegram

import (
	"context"
	"log"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// updateRequest represents a single Telegram update queued for processing
type updateRequest struct {
	ctx    context.Context
	chatID int64
	update tgbotapi.Update
}

// workerPool manages parallel processing of updates.
// Har bir chat doimo bitta workerga tushadi (chatID bo'yicha routing),
// shuning uchun bitta sessiya ustida hech qachon ikkita handler parallel
// ishlamaydi.
type workerPool struct {
	queues      []chan *updateRequest
	workerCount int
	handler     *BotHandler
	wg          sync.WaitGroup

	// Rate limiting per chat
	rateLimiter   map[int64]*chatRateLimit
	rateLimiterMu sync.RWMutex
}

// chatRateLimit tracks rate limiting per chat
type chatRateLimit struct {
	lastRequest  time.Time
	requestCount int
	mu           sync.Mutex
}

const (
	maxRequestsPerSecond   = 3
	queueSizePerWorker     = 32
	defaultWorkerCount     = 16
	rateLimiterCleanupTime = 5 * time.Minute
	rateLimiterMaxIdleTime = 10 * time.Minute
)

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}

	wp := &workerPool{
		queues:      make([]chan *updateRequest, workerCount),
		workerCount: workerCount,
		handler:     handler,
		rateLimiter: make(map[int64]*chatRateLimit),
	}
	for i := range wp.queues {
		wp.queues[i] = make(chan *updateRequest, queueSizePerWorker)
	}

	return wp
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	log.Printf("Starting %d workers for update processing", wp.workerCount)

	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx, i)
	}

	go wp.cleanupRateLimits(ctx)
}

// worker processes updates from its own queue
func (wp *workerPool) worker(ctx context.Context, id int) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			log.Printf("Worker %d shutting down", id)
			return
		case req, ok := <-wp.queues[id]:
			if !ok {
				log.Printf("Worker %d shutting down (queue closed)", id)
				return
			}
			if req == nil {
				continue
			}

			if !wp.checkRateLimit(req.chatID) {
				wp.handler.sendMessage(req.chatID, "⚠️ Too many requests. Please slow down a little.")
				continue
			}

			wp.processWithTimeout(req)
		}
	}
}

// processWithTimeout processes one update with a context timeout
func (wp *workerPool) processWithTimeout(req *updateRequest) {
	if wp.handler == nil {
		log.Printf("worker pool: handler is nil, skipping update chat=%d", req.chatID)
		return
	}

	ctx, cancel := context.WithTimeout(req.ctx, handlerTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while processing update for chat %d: %v", req.chatID, r)
			wp.handler.sendMessage(req.chatID, "⚠️ Something went wrong. Please try again.")
		}
	}()

	wp.handler.dispatch(ctx, req.update)
}

// queueIndex chatID ni worker indeksiga aylantiradi
func (wp *workerPool) queueIndex(chatID int64) int {
	if chatID < 0 {
		chatID = -chatID
	}
	return int(chatID % int64(wp.workerCount))
}

// checkRateLimit checks if a chat is within rate limit
func (wp *workerPool) checkRateLimit(chatID int64) bool {
	wp.rateLimiterMu.Lock()
	limiter, exists := wp.rateLimiter[chatID]
	if !exists {
		wp.rateLimiter[chatID] = &chatRateLimit{
			lastRequest:  time.Now(),
			requestCount: 1,
		}
		wp.rateLimiterMu.Unlock()
		return true
	}
	wp.rateLimiterMu.Unlock()

	limiter.mu.Lock()
	defer limiter.mu.Unlock()

	now := time.Now()
	if now.Sub(limiter.lastRequest) >= time.Second {
		limiter.requestCount = 1
		limiter.lastRequest = now
		return true
	}

	if limiter.requestCount >= maxRequestsPerSecond {
		log.Printf("Rate limit exceeded for chat %d", chatID)
		return false
	}

	limiter.requestCount++
	return true
}

// cleanupRateLimits removes idle rate limit entries
func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			var toDelete []int64

			wp.rateLimiterMu.RLock()
			for chatID, limiter := range wp.rateLimiter {
				limiter.mu.Lock()
				if now.Sub(limiter.lastRequest) > rateLimiterMaxIdleTime {
					toDelete = append(toDelete, chatID)
				}
				limiter.mu.Unlock()
			}
			wp.rateLimiterMu.RUnlock()

			if len(toDelete) > 0 {
				wp.rateLimiterMu.Lock()
				for _, chatID := range toDelete {
					delete(wp.rateLimiter, chatID)
				}
				wp.rateLimiterMu.Unlock()
				log.Printf("Cleaned up %d inactive rate limiters", len(toDelete))
			}
		}
	}
}

// submit routes an update to the worker owning its chat
func (wp *workerPool) submit(req *updateRequest) bool {
	idx := wp.queueIndex(req.chatID)
	select {
	case wp.queues[idx] <- req:
		return true
	default:
		log.Printf("Worker %d queue is full, dropping update for chat %d", idx, req.chatID)
		wp.handler.sendMessage(req.chatID, "⚠️ The bot is very busy right now. Please try again in a moment.")
		return false
	}
}

// shutdown gracefully shuts down the worker pool
func (wp *workerPool) shutdown() {
	for _, q := range wp.queues {
		close(q)
	}
	wp.wg.Wait()
	log.Println("Worker pool shut down")
}
