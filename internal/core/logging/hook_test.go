package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextHook_Run(t *testing.T) {
	tests := []struct {
		name      string
		setupCtx  func() context.Context
		wantKeys  []string
		wantEmpty []string
	}{
		{
			name: "both task_id and view",
			setupCtx: func() context.Context {
				ctx := context.Background()
				ctx = WithTaskID(ctx, "task-123")
				ctx = WithView(ctx, "list")
				return ctx
			},
			wantKeys: []string{"task_id", "view"},
		},
		{
			name: "only task_id",
			setupCtx: func() context.Context {
				return WithTaskID(context.Background(), "task-123")
			},
			wantKeys:  []string{"task_id"},
			wantEmpty: []string{"view"},
		},
		{
			name: "only view",
			setupCtx: func() context.Context {
				return WithView(context.Background(), "popup")
			},
			wantKeys:  []string{"view"},
			wantEmpty: []string{"task_id"},
		},
		{
			name:      "no context values",
			setupCtx:  context.Background,
			wantEmpty: []string{"task_id", "view"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := tt.setupCtx()

			logger := zerolog.New(&buf).Hook(ContextHook{})
			logger.Info().Ctx(ctx).Msg("test")

			var logEntry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logEntry))

			for _, key := range tt.wantKeys {
				assert.Contains(t, logEntry, key)
			}
			for _, key := range tt.wantEmpty {
				assert.NotContains(t, logEntry, key)
			}
		})
	}
}
