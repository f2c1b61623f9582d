// Package notify реализует однослотовый канал кратковременных уведомлений.
package notify

import (
	"sync"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"go.uber.org/zap"
)

// DefaultTTL время жизни уведомления по умолчанию
const DefaultTTL = 5 * time.Second

// Channel хранит не более одного уведомления. Новое уведомление любого вида
// вытесняет предыдущее и отменяет его таймер автоочистки.
type Channel struct {
	mu      sync.Mutex
	ttl     time.Duration
	current model.Notification
	timer   *time.Timer
	// generation растёт с каждым уведомлением; сработавший таймер
	// очищает сообщение только если его поколение всё ещё актуально
	generation uint64
	closed     bool
	logger     *zap.Logger
}

// NewChannel создает канал уведомлений с заданным временем жизни сообщения
func NewChannel(ttl time.Duration, logger *zap.Logger) *Channel {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Channel{
		ttl:    ttl,
		logger: logger,
	}
}

// Success показывает сообщение об успехе
func (c *Channel) Success(text string) {
	c.publish(model.NotificationSuccess, text)
}

// Error показывает сообщение об ошибке
func (c *Channel) Error(text string) {
	c.publish(model.NotificationError, text)
}

// Current возвращает активное уведомление или пустое значение
func (c *Channel) Current() model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.current
}

// TTL возвращает время жизни уведомления
func (c *Channel) TTL() time.Duration {
	return c.ttl
}

// Close останавливает живой таймер. После закрытия новые уведомления игнорируются.
func (c *Channel) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopTimer()
	c.closed = true
	c.current = model.Notification{}
}

func (c *Channel) publish(kind model.NotificationKind, text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Debug("notification dropped, channel closed",
			zap.String("kind", string(kind)),
			zap.String("text", text),
		)
		return
	}

	c.stopTimer()
	c.current = model.Notification{}

	c.generation++
	generation := c.generation

	c.current = model.Notification{Kind: kind, Text: text}
	c.timer = time.AfterFunc(c.ttl, func() {
		c.expire(generation)
	})

	c.logger.Debug("notification shown",
		zap.String("kind", string(kind)),
		zap.String("text", text),
		zap.Duration("ttl", c.ttl),
	)
}

func (c *Channel) expire(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		return
	}

	c.current = model.Notification{}
	c.timer = nil
}

// stopTimer вызывается под мьютексом
func (c *Channel) stopTimer() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
