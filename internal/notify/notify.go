package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// Kind тип уведомления панели
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Topic внутренняя тема шины уведомлений
const Topic = "admin.notifications"

// Event уведомление, показываемое оператору панели
type Event struct {
	ID      string    `json:"id"`
	Kind    Kind      `json:"kind"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// Notifier публикует уведомления. Публикация не влияет на результат команды.
type Notifier interface {
	Notify(ctx context.Context, kind Kind, title, message string)
}

// Bus шина уведомлений поверх внутреннего pub/sub.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// NewBus создаёт шину с буферизованным каналом.
func NewBus(logger *slog.Logger) *Bus {
	pubsub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	return &Bus{pubsub: pubsub, logger: logger}
}

var _ Notifier = (*Bus)(nil)

// Notify публикует событие fire-and-forget: ошибки публикации только логируются.
func (b *Bus) Notify(ctx context.Context, kind Kind, title, text string) {
	evt := Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   title,
		Message: text,
		At:      time.Now().UTC(),
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		b.logger.Error("notify: marshal", "error", err)
		return
	}
	msg := message.NewMessage(evt.ID, payload)
	msg.SetContext(ctx)
	if err := b.pubsub.Publish(Topic, msg); err != nil {
		b.logger.Error("notify: publish", "error", err)
	}
}

// RunLogger подписывается на шину и пишет события в журнал, пока ctx жив.
func (b *Bus) RunLogger(ctx context.Context) error {
	messages, err := b.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		return err
	}
	go func() {
		for msg := range messages {
			var evt Event
			if err := json.Unmarshal(msg.Payload, &evt); err != nil {
				b.logger.Error("notify: decode", "error", err)
				msg.Ack()
				continue
			}
			b.logger.Info("notification", "kind", evt.Kind, "title", evt.Title, "message", evt.Message)
			msg.Ack()
		}
	}()
	return nil
}

// Close закрывает шину.
func (b *Bus) Close() error {
	return b.pubsub.Close()
}

// Recorder собирает уведомления в память, используется в тестах.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

var _ Notifier = (*Recorder)(nil)

func (r *Recorder) Notify(_ context.Context, kind Kind, title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		ID:      uuid.NewString(),
		Kind:    kind,
		Title:   title,
		Message: message,
		At:      time.Now().UTC(),
	})
}

// Events копия накопленных событий
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// CountKind число событий данного типа
func (r *Recorder) CountKind(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset очищает накопленные события
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
