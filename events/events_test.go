package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBus_DeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeBalanceChange, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Emit(context.Background(), BalanceChangeEvent{DiscordID: 111, ChangeAmount: 50})

	select {
	case event := <-received:
		e, ok := event.(BalanceChangeEvent)
		assert.True(t, ok)
		assert.Equal(t, int64(111), e.DiscordID)
		assert.Equal(t, int64(50), e.ChangeAmount)
	case <-time.After(time.Second):
		t.Fatal("handler did not receive event")
	}
}

func TestBus_IgnoresOtherEventTypes(t *testing.T) {
	bus := NewBus()
	received := make(chan Event, 1)

	bus.Subscribe(EventTypeDailyClaimed, func(ctx context.Context, event Event) {
		received <- event
	})

	bus.Emit(context.Background(), GameResolvedEvent{DiscordID: 111, Game: "slots"})

	select {
	case <-received:
		t.Fatal("handler received an event of the wrong type")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_PanickingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewBus()
	received := make(chan struct{}, 1)

	bus.Subscribe(EventTypeGameResolved, func(ctx context.Context, event Event) {
		panic("handler failure")
	})
	bus.Subscribe(EventTypeGameResolved, func(ctx context.Context, event Event) {
		received <- struct{}{}
	})

	bus.Emit(context.Background(), GameResolvedEvent{DiscordID: 111, Game: "coinflip"})

	select {
	case <-received:
	case <-time.After(time.Second):
		t.Fatal("second handler did not run")
	}
}
