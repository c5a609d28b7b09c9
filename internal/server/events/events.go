// Package events публикует уведомления об изменении транзакций во внешнюю шину.
// Публикация best-effort: ошибка доставки не должна ломать HTTP запрос
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Action тип изменения транзакции
type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// DefaultSubjectPrefix префикс subject по умолчанию
const DefaultSubjectPrefix = "expensekeeper"

// Event описывает изменение транзакции пользователя
type Event struct {
	OccurredAt    time.Time `json:"occurred_at"`
	Action        Action    `json:"type"`
	UserID        int64     `json:"user_id"`
	TransactionID int64     `json:"transaction_id"`
}

// NewEvent creates event stamped with current time
func NewEvent(action Action, userID, transactionID int64) Event {
	return Event{
		Action:        action,
		UserID:        userID,
		TransactionID: transactionID,
		OccurredAt:    time.Now().UTC(),
	}
}

// Publisher sends transaction events
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher используется, когда шина событий не настроена
type NopPublisher struct{}

// Publish does nothing
func (NopPublisher) Publish(context.Context, Event) error { return nil }

// Close does nothing
func (NopPublisher) Close() error { return nil }

// conn подмножество *nats.Conn, нужное издателю
type conn interface {
	Publish(subj string, data []byte) error
	Drain() error
}

// NATSPublisher publishes events to NATS subjects <prefix>.transaction.<action>
type NATSPublisher struct {
	conn   conn
	prefix string
}

// NewNATSPublisher connects to NATS server at url
func NewNATSPublisher(url, prefix string) (*NATSPublisher, error) {
	nc, err := nats.Connect(url,
		nats.Name("expensekeeper-server"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	return newNATSPublisher(nc, prefix), nil
}

func newNATSPublisher(c conn, prefix string) *NATSPublisher {
	if prefix == "" {
		prefix = DefaultSubjectPrefix
	}
	return &NATSPublisher{conn: c, prefix: prefix}
}

// Subject returns subject name for action
func (p *NATSPublisher) Subject(action Action) string {
	return fmt.Sprintf("%s.transaction.%s", p.prefix, action)
}

// Publish serializes event to JSON and publishes it
func (p *NATSPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := p.conn.Publish(p.Subject(event.Action), data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Close drains pending messages and closes connection
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
