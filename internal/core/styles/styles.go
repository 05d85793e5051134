// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    color.Color
	ColorOnPrimary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	TextPrimaryStyle     lipgloss.Style
	TextPrimaryBoldStyle lipgloss.Style
	TextMutedStyle       lipgloss.Style
	TextForegroundStyle  lipgloss.Style

	// Splash screen.
	SplashStyle      lipgloss.Style
	SplashTitleStyle lipgloss.Style

	// Task list.
	TitleStyle        lipgloss.Style
	CheckboxStyle     lipgloss.Style
	TaskStyle         lipgloss.Style
	TaskCompleteStyle lipgloss.Style
	CursorStyle       lipgloss.Style
	MarkedStyle       lipgloss.Style
	RowSelectedStyle  lipgloss.Style
	EmptyListStyle    lipgloss.Style
	AddButtonStyle    lipgloss.Style
	HelpLineStyle     lipgloss.Style

	// Modals.
	BackdropStyle       lipgloss.Style
	ModalStyle          lipgloss.Style
	ModalTitleStyle     lipgloss.Style
	ModalHelpStyle      lipgloss.Style
	ButtonStyle         lipgloss.Style
	ButtonDisabledStyle lipgloss.Style
	InputFieldStyle     lipgloss.Style

	HelpDialogModalStyle lipgloss.Style
	HelpDialogHelpStyle  lipgloss.Style

	// Toasts.
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	// CLI.
	CommandHeaderStyle lipgloss.Style
	ErrorStyle         lipgloss.Style
	SuccessStyle       lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorOnPrimary = p.OnPrimary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(ColorPrimary).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)

	SplashStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorOnPrimary)
	SplashTitleStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorOnPrimary).
		Bold(true).
		Padding(1, 4)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)
	CheckboxStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TaskStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TaskCompleteStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)
	CursorStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	MarkedStyle = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	RowSelectedStyle = lipgloss.NewStyle().Background(ColorSurface)
	EmptyListStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Italic(true).
		Padding(1, 2)
	AddButtonStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(1, 1, 0)
	HelpLineStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		PaddingLeft(1)

	BackdropStyle = lipgloss.NewStyle().Faint(true)
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)
	ButtonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorPrimary).
		Foreground(ColorOnPrimary).
		Bold(true)
	ButtonDisabledStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Background(ColorMuted).
		Foreground(ColorOnPrimary)
	InputFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1)

	HelpDialogModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	HelpDialogHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError)

	CommandHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
