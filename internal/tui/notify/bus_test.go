package notify

import (
	"testing"
	"time"

	"github.com/colonyops/tudu/internal/core/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_Publish_dispatches_to_subscribers(t *testing.T) {
	bus := NewBus()

	var received []notify.Notification
	bus.Subscribe(func(n notify.Notification) {
		received = append(received, n)
	})

	bus.Errorf("test error: %d", 42)
	bus.Infof("info msg")
	bus.Warnf("warn msg")

	require.Len(t, received, 3)
	assert.Equal(t, notify.LevelError, received[0].Level)
	assert.Equal(t, "test error: 42", received[0].Message)
	assert.Equal(t, notify.LevelInfo, received[1].Level)
	assert.Equal(t, notify.LevelWarning, received[2].Level)
}

func TestBus_Publish_sets_CreatedAt(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	bus := NewBus()
	bus.now = func() time.Time { return fixed }

	var got notify.Notification
	bus.Subscribe(func(n notify.Notification) { got = n })

	bus.Infof("hello")
	assert.Equal(t, fixed, got.CreatedAt)

	preset := fixed.Add(-time.Hour)
	bus.Publish(notify.Notification{Level: notify.LevelInfo, Message: "kept", CreatedAt: preset})
	assert.Equal(t, preset, got.CreatedAt)
}

func TestBus_Publish_without_subscribers(t *testing.T) {
	bus := NewBus()
	assert.NotPanics(t, func() { bus.Infof("nobody listening") })
}

func TestBus_multiple_subscribers_in_order(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(func(notify.Notification) { order = append(order, "first") })
	bus.Subscribe(func(notify.Notification) { order = append(order, "second") })

	bus.Infof("x")
	assert.Equal(t, []string{"first", "second"}, order)
}
