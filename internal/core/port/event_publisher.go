package port

import (
	"context"

	"github.com/G3ndalf/auto-sales-bot-sub000/internal/core/domain"
)

// AdApprovedEvent — событие публикации объявления. Его слушает
// бот-процесс, который рассылает уведомления и постит в канал.
type AdApprovedEvent struct {
	AdType     domain.AdType `json:"ad_type"`
	AdID       int64         `json:"ad_id"`
	TelegramID int64         `json:"telegram_id"`
	Title      string        `json:"title"`
	Price      int           `json:"price"`
	City       string        `json:"city"`
	ApprovedAt string        `json:"approved_at"` // RFC 3339
}

// EventPublisherPort — контракт публикации доменных событий в брокер.
type EventPublisherPort interface {
	PublishAdApproved(ctx context.Context, event AdApprovedEvent) error
}

// RateLimiterPort — контракт лимитера подачи объявлений.
type RateLimiterPort interface {
	// Check сообщает, превышен ли лимит для ключа, и причину отказа.
	Check(key string) (denied bool, reason string)
}
