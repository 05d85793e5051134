package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/tudu/internal/core/styles"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "tudu config validate [options]",
				Description: "Validates the configuration file, checking the theme name, brand color and splash duration.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

// ValidationError is a single invalid config field.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigValidateCmd) run(_ context.Context, c *cli.Command) error {
	errs, err := collectErrors(cmd.flags.Config.ValidateFile(cmd.flags.ConfigPath))
	if err != nil {
		return err
	}

	if cmd.format == "json" {
		return cmd.outputJSON(c.Root().Writer, errs)
	}

	return cmd.outputText(c.Root().Writer, errs)
}

// collectErrors flattens criterio field errors. Other errors are returned.
func collectErrors(err error) ([]ValidationError, error) {
	if err == nil {
		return nil, nil
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field, Message: fe.Err.Error()})
	}
	return out, nil
}

func (cmd *ConfigValidateCmd) outputJSON(w io.Writer, errs []ValidationError) error {
	out := struct {
		Valid  bool              `json:"valid"`
		Config string            `json:"config"`
		Errors []ValidationError `json:"errors,omitempty"`
	}{
		Valid:  len(errs) == 0,
		Config: cmd.flags.ConfigPath,
		Errors: errs,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}
	if len(errs) > 0 {
		return cli.Exit("", 1)
	}
	return nil
}

func (cmd *ConfigValidateCmd) outputText(w io.Writer, errs []ValidationError) error {
	_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render(cmd.flags.ConfigPath))

	for _, e := range errs {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.ErrorStyle.Render(styles.IconNotifyError), e.Field, e.Message)
	}

	if len(errs) == 0 {
		_, _ = fmt.Fprintln(w, styles.SuccessStyle.Render(styles.IconChecked+" Configuration is valid"))
		return nil
	}

	_, _ = fmt.Fprintln(w, styles.ErrorStyle.Render(fmt.Sprintf("%d error(s) found", len(errs))))
	return cli.Exit("", 1)
}
