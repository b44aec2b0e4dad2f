package event

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/procure/backend/internal/domain/catalog"
	"github.com/procure/backend/internal/domain/procurement"
	"github.com/procure/backend/internal/domain/shared"
)

type recordingHandler struct {
	mu       sync.Mutex
	types    []string
	received []shared.DomainEvent
	err      error
	panics   bool
}

func (h *recordingHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.panics {
		panic("handler exploded")
	}
	h.mu.Lock()
	h.received = append(h.received, event)
	h.mu.Unlock()
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func (h *recordingHandler) events() []shared.DomainEvent {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]shared.DomainEvent(nil), h.received...)
}

func newClassifierEvent(t *testing.T) shared.DomainEvent {
	t.Helper()
	classifier, err := catalog.NewClassifier("Office Supplies")
	require.NoError(t, err)
	events := classifier.GetDomainEvents()
	require.Len(t, events, 1)
	return events[0]
}

func TestInMemoryEventBus_Publish(t *testing.T) {
	t.Run("delivers to typed handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{catalog.EventTypeClassifierCreated}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newClassifierEvent(t))
		require.NoError(t, err)
		assert.Len(t, handler.events(), 1)
	})

	t.Run("delivers to wildcard handler", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newClassifierEvent(t))
		require.NoError(t, err)
		assert.Len(t, handler.events(), 1)
	})

	t.Run("skips handlers for other types", func(t *testing.T) {
		bus := NewInMemoryEventBus(zap.NewNop())
		handler := &recordingHandler{types: []string{procurement.EventTypeRequisitionCreated}}
		bus.Subscribe(handler)

		err := bus.Publish(context.Background(), newClassifierEvent(t))
		require.NoError(t, err)
		assert.Empty(t, handler.events())
	})

	t.Run("handler error does not stop dispatch", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		bus := NewInMemoryEventBus(zap.New(core))

		failing := &recordingHandler{err: errors.New("boom")}
		healthy := &recordingHandler{}
		bus.Subscribe(failing)
		bus.Subscribe(healthy)

		err := bus.Publish(context.Background(), newClassifierEvent(t))
		require.NoError(t, err)
		assert.Len(t, healthy.events(), 1)
		assert.Equal(t, 1, logs.FilterMessage("handler failed to process event").Len())
	})

	t.Run("recovers from handler panic", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		bus := NewInMemoryEventBus(zap.New(core))

		bus.Subscribe(&recordingHandler{panics: true})
		healthy := &recordingHandler{}
		bus.Subscribe(healthy)

		err := bus.Publish(context.Background(), newClassifierEvent(t))
		require.NoError(t, err)
		assert.Len(t, healthy.events(), 1)
		assert.Equal(t, 1, logs.FilterMessage("handler panicked").Len())
	})
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	handler := &recordingHandler{types: []string{catalog.EventTypeClassifierCreated}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	err := bus.Publish(context.Background(), newClassifierEvent(t))
	require.NoError(t, err)
	assert.Empty(t, handler.events())
}

func TestInMemoryEventBus_StartStop(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))
	require.NoError(t, bus.Stop(context.Background()))
}
