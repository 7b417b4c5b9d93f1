package notify

import (
	"sync"
	"time"
)

// Severity степень важности уведомления
type Severity string

const (
	SeveritySuccess     Severity = "success"
	SeverityDestructive Severity = "destructive"
	SeverityError       Severity = "error"
)

// Notification пользовательское уведомление (toast)
// Fire-and-forget: выводится в UI один раз, подтверждения доставки нет
type Notification struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Feed in-memory лента уведомлений с ограниченной емкостью
// Каждая мутация хранилища публикует сюда сообщение, UI опрашивает Recent
type Feed struct {
	mu       sync.RWMutex
	entries  []Notification
	capacity int

	now func() time.Time
}

// DefaultCapacity емкость ленты по умолчанию
const DefaultCapacity = 100

// NewFeed создает ленту уведомлений с указанной емкостью
// При capacity <= 0 используется DefaultCapacity
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{
		entries:  make([]Notification, 0, capacity),
		capacity: capacity,
		now:      time.Now,
	}
}

// Notify публикует уведомление в ленту
// Старые уведомления вытесняются при переполнении
func (f *Feed) Notify(title, description string, severity Severity) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.entries = append(f.entries, Notification{
		Title:       title,
		Description: description,
		Severity:    severity,
		CreatedAt:   f.now(),
	})

	if len(f.entries) > f.capacity {
		f.entries = f.entries[len(f.entries)-f.capacity:]
	}
}

// Recent возвращает последние limit уведомлений, новые первыми
// При limit <= 0 возвращаются все накопленные уведомления
func (f *Feed) Recent(limit int) []Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	n := len(f.entries)
	if limit <= 0 || limit > n {
		limit = n
	}

	result := make([]Notification, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		result = append(result, f.entries[i])
	}

	return result
}
