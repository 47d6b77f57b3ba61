package notify

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

func TestRecorderCounts(t *testing.T) {
	rec := &Recorder{}
	ctx := context.Background()

	rec.Notify(ctx, KindSuccess, "Product created", "Desk Lamp added to catalog")
	rec.Notify(ctx, KindError, "Validation failed", "Name is required")
	rec.Notify(ctx, KindSuccess, "Product deleted", "PROD-003 removed")

	if got := rec.CountKind(KindSuccess); got != 2 {
		t.Fatalf("success: got %d, want 2", got)
	}
	if got := rec.CountKind(KindError); got != 1 {
		t.Fatalf("error: got %d, want 1", got)
	}

	events := rec.Events()
	if len(events) != 3 {
		t.Fatalf("events: got %d, want 3", len(events))
	}
	if events[0].Title != "Product created" {
		t.Fatalf("order broken: first is %q", events[0].Title)
	}

	rec.Reset()
	if got := len(rec.Events()); got != 0 {
		t.Fatalf("after reset: got %d, want 0", got)
	}
}

func TestBusPublishSubscribe(t *testing.T) {
	bus := NewBus(slog.Default())
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	messages, err := bus.pubsub.Subscribe(ctx, Topic)
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	bus.Notify(ctx, KindSuccess, "Restocked", "PROD-001 +20")

	select {
	case msg := <-messages:
		msg.Ack()
		if len(msg.Payload) == 0 {
			t.Fatal("empty payload")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
}
