package tui

import (
	"strings"
	"testing"

	"github.com/colonyops/tudu/internal/core/notify"
	"github.com/colonyops/tudu/internal/core/styles"
	"github.com/colonyops/tudu/pkg/tuitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastView_View_empty(t *testing.T) {
	v := NewToastView(NewToastController())
	assert.Empty(t, v.View())
}

func TestToastView_View_renders_each_level(t *testing.T) {
	tests := []struct {
		level notify.Level
		icon  string
	}{
		{notify.LevelError, styles.IconNotifyError},
		{notify.LevelWarning, styles.IconNotifyWarning},
		{notify.LevelInfo, styles.IconNotifyInfo},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			c := NewToastController()
			c.Push(notify.Notification{Level: tt.level, Message: "msg"})

			out := tuitest.StripANSI(NewToastView(c).View())
			require.NotEmpty(t, out)
			assert.Contains(t, out, tt.icon)
			assert.Contains(t, out, "msg")
		})
	}
}

func TestToastView_View_stacks_oldest_first(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "first"})
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: "second"})

	out := tuitest.StripANSI(NewToastView(c).View())
	first, second := strings.Index(out, "first"), strings.Index(out, "second")

	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestToastView_View_truncates_long_messages(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelInfo, Message: strings.Repeat("x", 200)})

	out := tuitest.StripANSI(NewToastView(c).View())
	assert.Contains(t, out, "…")
	assert.NotContains(t, out, strings.Repeat("x", toastWidth))
}

func TestToastView_Overlay_without_toasts_returns_background(t *testing.T) {
	v := NewToastView(NewToastController())
	assert.Equal(t, "background", v.Overlay("background", 80, 24))
}
