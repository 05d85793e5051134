// Package logging holds zerolog helpers shared by tudu components.
package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component returns the global logger tagged with a "cmp" field. Events
// logged with .Ctx(ctx) also carry the task_id and view stored on ctx.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger().Hook(ContextHook{})
}
