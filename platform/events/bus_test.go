package events

import (
	"context"
	"errors"
	"testing"
)

type testEvent struct {
	BaseEvent
	Value string
}

func (e testEvent) EventName() string { return "test.event" }

func TestPublishSyncDeliversToAllSubscribers(t *testing.T) {
	bus := NewInMemoryBus(nil)

	var got []string
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		got = append(got, "first")
		return nil
	}))
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		got = append(got, "second")
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("PublishSync returned error: %v", err)
	}
	if len(got) != 2 || got[0] != "first" || got[1] != "second" {
		t.Fatalf("expected ordered delivery to both handlers, got %v", got)
	}
}

func TestPublishSyncJoinsHandlerErrors(t *testing.T) {
	bus := NewInMemoryBus(nil)

	boom := errors.New("boom")
	bus.Subscribe("test.event", HandlerFunc(func(ctx context.Context, event Event) error {
		return boom
	}))

	err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()})
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined error to contain handler error, got %v", err)
	}
}

func TestPublishSyncIgnoresUnrelatedEvents(t *testing.T) {
	bus := NewInMemoryBus(nil)

	called := false
	bus.Subscribe("other.event", HandlerFunc(func(ctx context.Context, event Event) error {
		called = true
		return nil
	}))

	if err := bus.PublishSync(context.Background(), testEvent{BaseEvent: NewBaseEvent()}); err != nil {
		t.Fatalf("PublishSync returned error: %v", err)
	}
	if called {
		t.Fatal("handler for a different event name should not run")
	}
}
