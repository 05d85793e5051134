package logging

import "context"

type contextKey string

const (
	taskIDKey contextKey = "task_id"
	viewKey   contextKey = "view"
)

// WithTaskID adds a task ID to the context.
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, taskIDKey, taskID)
}

// WithView adds the active TUI view name to the context.
func WithView(ctx context.Context, view string) context.Context {
	return context.WithValue(ctx, viewKey, view)
}

// GetTaskID retrieves the task ID from the context.
// Returns empty string if not present.
func GetTaskID(ctx context.Context) string {
	if id, ok := ctx.Value(taskIDKey).(string); ok {
		return id
	}
	return ""
}

// GetView retrieves the view name from the context.
// Returns empty string if not present.
func GetView(ctx context.Context) string {
	if v, ok := ctx.Value(viewKey).(string); ok {
		return v
	}
	return ""
}
