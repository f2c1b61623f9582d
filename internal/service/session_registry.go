package service

import (
	"context"
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"go.uber.org/zap"
)

type sessionEntry struct {
	console  *usecase.Console
	lastSeen time.Time
}

// SessionRegistry хранит представление консоли для каждой сессии.
// Представление создаётся при первом обращении и живёт до Drop, Close
// или вытеснения по простою.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*sessionEntry
	factory  ConsoleFactory
	logger   *zap.Logger
	now      func() time.Time
}

// NewSessionRegistry создает пустой реестр сессий
func NewSessionRegistry(factory ConsoleFactory, logger *zap.Logger) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*sessionEntry),
		factory:  factory,
		logger:   logger,
		now:      time.Now,
	}
}

// Get возвращает представление сессии, создавая его при необходимости
func (r *SessionRegistry) Get(sessionID string) *usecase.Console {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.sessions[sessionID]; ok {
		e.lastSeen = r.now()
		return e.console
	}

	e := &sessionEntry{console: r.factory(), lastSeen: r.now()}
	r.sessions[sessionID] = e
	r.logger.Debug("console view created", zap.String("session_id", sessionID))

	return e.console
}

// Drop уничтожает представление сессии. Возвращает false, если его не было.
func (r *SessionRegistry) Drop(sessionID string) bool {
	r.mu.Lock()
	e, ok := r.sessions[sessionID]
	delete(r.sessions, sessionID)
	r.mu.Unlock()

	if !ok {
		return false
	}

	e.console.Close()
	r.logger.Debug("console view discarded", zap.String("session_id", sessionID))

	return true
}

// EvictIdle уничтожает представления, к которым не обращались дольше maxIdle.
// Возвращает число вытесненных.
func (r *SessionRegistry) EvictIdle(maxIdle time.Duration) int {
	deadline := r.now().Add(-maxIdle)

	r.mu.Lock()
	var idle []*usecase.Console
	for id, e := range r.sessions {
		if e.lastSeen.Before(deadline) {
			idle = append(idle, e.console)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, c := range idle {
		c.Close()
	}

	return len(idle)
}

// RunJanitor периодически вытесняет простаивающие представления до отмены ctx
func (r *SessionRegistry) RunJanitor(ctx context.Context, maxIdle, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.EvictIdle(maxIdle); n > 0 {
				r.logger.Info("idle console views evicted", zap.Int("count", n))
			}
		}
	}
}

// Len количество живых представлений
func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Close уничтожает все представления
func (r *SessionRegistry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*sessionEntry)
	r.mu.Unlock()

	for _, e := range sessions {
		e.console.Close()
	}
}
