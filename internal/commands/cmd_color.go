package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/tudu/pkg/hexcolor"
	"github.com/colonyops/tudu/pkg/iojson"
)

type ColorCmd struct {
	flags *Flags
	stdin iojson.Stdin
}

// NewColorCmd creates a new color command
func NewColorCmd(flags *Flags) *ColorCmd {
	return &ColorCmd{flags: flags}
}

// ColorRecord is the JSON output for one parsed color.
type ColorRecord struct {
	Input string  `json:"input"`
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
	Hex   string  `json:"hex"`
}

func (cmd *ColorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "color",
		Usage:     "Parse hex colors into normalized RGBA",
		ArgsUsage: "[hex...]",
		UsageText: `tudu color [hex...]

Parse arguments:
  tudu color '#4B0082' fff 80ffffff

Read one color per line from stdin:
  printf '#fff\n#000\n' | tudu color`,
		Description: `Parses each color the same way the theme brand color is parsed.

Non alphanumeric characters are stripped first. Three digits are RGB with
each digit doubled, six digits are RGB and eight digits are ARGB. Anything
else is opaque black.

Output is a JSON array of {input, red, green, blue, alpha, hex} records with
components in the range [0, 1].`,
		Action: cmd.run,
	})

	return app
}

func (cmd *ColorCmd) run(_ context.Context, c *cli.Command) error {
	inputs := c.Args().Slice()
	if len(inputs) == 0 {
		lines, err := cmd.stdin.Lines()
		if err != nil {
			if errors.Is(err, iojson.ErrNoInput) {
				return iojson.WriteErrorTo(c.Root().ErrWriter, "no input: pass colors as arguments or pipe them on stdin", nil)
			}
			return iojson.WriteErrorTo(c.Root().ErrWriter, fmt.Sprintf("read input: %s", err), nil)
		}
		inputs = lines
	}

	return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, parseColors(inputs))
}

func parseColors(inputs []string) []ColorRecord {
	records := make([]ColorRecord, 0, len(inputs))
	for _, in := range inputs {
		rgba := hexcolor.Parse(in)
		records = append(records, ColorRecord{
			Input: in,
			Red:   rgba.R,
			Green: rgba.G,
			Blue:  rgba.B,
			Alpha: rgba.A,
			Hex:   rgba.Hex(),
		})
	}
	return records
}
