package commands

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tudu/internal/core/task"
	"github.com/colonyops/tudu/internal/tui"
)

type TuiCmd struct {
	flags *Flags

	noSplash       bool
	splashDuration time.Duration
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Flags returns the TUI-specific flags for registration on the root command
func (cmd *TuiCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-splash",
			Usage:       "skip the splash screen",
			Sources:     cli.EnvVars("TUDU_NO_SPLASH"),
			Destination: &cmd.noSplash,
		},
		&cli.DurationFlag{
			Name:        "splash-duration",
			Usage:       "how long the splash screen is shown (overrides config)",
			Sources:     cli.EnvVars("TUDU_SPLASH_DURATION"),
			Destination: &cmd.splashDuration,
		},
	}
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	if err := cmd.flags.Config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	opts := cmd.options()
	log.Info().
		Bool("splash", opts.ShowSplash).
		Dur("splash_duration", opts.SplashDuration).
		Msg("starting tui")

	m := tui.New(task.NewStore(), opts)
	p := tea.NewProgram(m, tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// options merges the config with the command line flags.
func (cmd *TuiCmd) options() tui.Options {
	cfg := cmd.flags.Config.TUI

	opts := tui.Options{
		ShowSplash:     cfg.SplashEnabled() && !cmd.noSplash,
		SplashDuration: cfg.SplashDuration,
	}
	if cmd.splashDuration > 0 {
		opts.SplashDuration = cmd.splashDuration
	}
	return opts
}
