package commands

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tudu/internal/core/config"
	"github.com/colonyops/tudu/pkg/iojson"
)

type registrar interface {
	Register(app *cli.Command) *cli.Command
}

func testFlags() *Flags {
	cfg := config.DefaultConfig()
	return &Flags{LogLevel: "debug", Config: &cfg}
}

// pipedStdin fakes non-interactive stdin carrying s.
func pipedStdin(s string) iojson.Stdin {
	return iojson.Stdin{
		Reader:     strings.NewReader(s),
		IsTerminal: func() bool { return false },
	}
}

func terminalStdin() iojson.Stdin {
	return iojson.Stdin{IsTerminal: func() bool { return true }}
}

// runCmd runs args against a root command with r registered and returns
// stdout and stderr.
func runCmd(t *testing.T, r registrar, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := &cli.Command{
		Name:           "tudu",
		Writer:         &stdout,
		ErrWriter:      &stderr,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	root = r.Register(root)

	err := root.Run(t.Context(), append([]string{"tudu"}, args...))
	return stdout.String(), stderr.String(), err
}
