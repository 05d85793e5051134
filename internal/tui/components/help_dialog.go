// Package components provides reusable TUI components.
package components

import (
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tudu/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays the keyboard reference as rendered markdown.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	width    int
}

// NewHelpDialog creates a help dialog; width bounds the markdown word wrap.
func NewHelpDialog(title string, sections []HelpDialogSection, width int) *HelpDialog {
	return &HelpDialog{
		title:    title,
		sections: sections,
		width:    width,
	}
}

// Markdown returns the markdown source rendered by View. Sections share one
// table so the dialog fits a standard terminal.
func (h *HelpDialog) Markdown() string {
	var b strings.Builder

	b.WriteString("# " + h.title + "\n\n")
	b.WriteString("| | Key | Action |\n|---|---|---|\n")
	for _, section := range h.sections {
		for i, entry := range section.Entries {
			group := ""
			if i == 0 {
				group = section.Title
			}
			b.WriteString("| " + group + " | `" + entry.Key + "` | " + entry.Desc + " |\n")
		}
	}

	return b.String()
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	md := h.Markdown()

	content, err := renderMarkdown(md, h.wrapWidth())
	if err != nil {
		log.Warn().Err(err).Msg("render help markdown")
		content = md
	}
	content = strings.Trim(content, "\n")

	help := styles.HelpDialogHelpStyle.Render("esc/? close")
	content = lipgloss.JoinVertical(lipgloss.Left, content, help)

	return styles.HelpDialogModalStyle.Render(content)
}

// Overlay renders the help dialog centered over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	centerX := max((width-lipgloss.Width(modal))/2, 0)
	centerY := max((height-lipgloss.Height(modal))/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, modalLayer).Render()
}

func (h *HelpDialog) wrapWidth() int {
	// modal border and padding
	const chrome = 6
	return max(min(h.width-chrome, 60), 20)
}

func renderMarkdown(md string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
