package styles

import (
	"image/color"
	"sort"

	lipgloss "charm.land/lipgloss/v2"
	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/colonyops/tudu/pkg/hexcolor"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    color.Color
	OnPrimary  color.Color // text drawn on top of Primary
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
	Light      bool // true for palettes meant for light backgrounds
}

// BrandColor is the default accent used for titles, checkboxes and buttons.
const BrandColor = "#4B0082"

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tudu"

var (
	brand = hexcolor.Parse(BrandColor)
	white = hexcolor.Parse("#fff")
)

// themes holds the built-in named palettes.
var themes = map[string]Palette{
	"tudu": {
		Primary:    brand.Color(),
		OnPrimary:  white.Color(),
		Foreground: lipgloss.Color("#000000"),
		Muted:      lipgloss.Color("#808080"),
		Background: white.Color(),
		Surface:    brand.Blend(white, 0.85).Color(),
		Success:    lipgloss.Color("#2e7d32"),
		Warning:    lipgloss.Color("#b26a00"),
		Error:      lipgloss.Color("#c62828"),
		Light:      true,
	},
	"tokyo-night": {
		Primary:    lipgloss.Color("#bb9af7"),
		OnPrimary:  lipgloss.Color("#1a1b26"),
		Foreground: lipgloss.Color("#c0caf5"),
		Muted:      lipgloss.Color("#565f89"),
		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#3b4261"),
		Success:    lipgloss.Color("#9ece6a"),
		Warning:    lipgloss.Color("#e0af68"),
		Error:      lipgloss.Color("#f7768e"),
	},
	"gruvbox": {
		Primary:    lipgloss.Color("#d3869b"),
		OnPrimary:  lipgloss.Color("#282828"),
		Foreground: lipgloss.Color("#ebdbb2"),
		Muted:      lipgloss.Color("#665c54"),
		Background: lipgloss.Color("#282828"),
		Surface:    lipgloss.Color("#3c3836"),
		Success:    lipgloss.Color("#b8bb26"),
		Warning:    lipgloss.Color("#fabd2f"),
		Error:      lipgloss.Color("#fb4934"),
	},
	"catppuccin": {
		Primary:    lipgloss.Color("#cba6f7"), // Mauve
		OnPrimary:  lipgloss.Color("#1e1e2e"), // Base
		Foreground: lipgloss.Color("#cdd6f4"), // Text
		Muted:      lipgloss.Color("#6c7086"), // Overlay0
		Background: lipgloss.Color("#1e1e2e"), // Base
		Surface:    lipgloss.Color("#313244"), // Surface0
		Success:    lipgloss.Color("#a6e3a1"), // Green
		Warning:    lipgloss.Color("#f9e2af"), // Yellow
		Error:      lipgloss.Color("#f38ba8"), // Red
	},
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// WithBrand returns p with Primary replaced by the parsed hex color. The
// surface tint is re-derived from the new primary on light palettes.
// Malformed input yields black, following hexcolor.Parse.
func WithBrand(p Palette, hex string) Palette {
	c := hexcolor.Parse(hex)
	p.Primary = c.Color()
	if p.Light {
		p.Surface = c.Blend(white, 0.85).Color()
	}
	return p
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig
	if CurrentPalette.Light {
		cfg = glamourstyles.LightStyleConfig
	}

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H1.BackgroundColor = nil
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Code.Color = primary
	cfg.CodeBlock.Color = muted

	cfg.Table.Color = fg

	return cfg
}
