package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/tudu/internal/core/styles"
	"github.com/colonyops/tudu/internal/core/task"
	"github.com/colonyops/tudu/internal/tui/components"
)

const (
	appTitle = "Tudu"

	// lines used by the title, the add button and the help line
	listChrome = 6

	defaultWidth  = 80
	defaultHeight = 24
)

// View renders the model.
func (m Model) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

func (m Model) render() string {
	if m.quitting {
		return ""
	}

	w, h := m.size()
	if m.ui.Splash {
		return renderSplash(w, h)
	}

	content := m.renderList(w)
	switch {
	case m.ui.PopupVisible:
		content = m.overlayPopup(content, w, h)
	case m.ui.HelpVisible:
		dialog := components.NewHelpDialog("Keyboard", m.keys.HelpSections(), w)
		content = dialog.Overlay(content, w, h)
	}
	return m.toastView.Overlay(content, w, h)
}

func (m Model) size() (int, int) {
	w, h := m.width, m.height
	if w == 0 {
		w = defaultWidth
	}
	if h == 0 {
		h = defaultHeight
	}
	return w, h
}

func renderSplash(width, height int) string {
	title := styles.SplashTitleStyle.Render(strings.ToUpper(appTitle))
	return styles.SplashStyle.
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(title)
}

// visibleRows is the number of task rows that fit on screen. Zero means
// the height is unknown and every row is shown.
func (m Model) visibleRows() int {
	if m.height == 0 {
		return 0
	}
	return max(m.height-listChrome, 1)
}

func (m Model) renderList(width int) string {
	tasks := m.store.List()

	lines := []string{styles.TitleStyle.Render(appTitle), ""}

	if len(tasks) == 0 {
		lines = append(lines, styles.EmptyListStyle.Render("Nothing to do. Press a to add a task."))
	} else {
		start, end := 0, len(tasks)
		if rows := m.visibleRows(); rows > 0 {
			start = min(m.ui.Offset, len(tasks))
			end = min(start+rows, len(tasks))
		}
		for i := start; i < end; i++ {
			lines = append(lines, m.renderRow(tasks[i], i == m.ui.Cursor, width))
		}
	}

	lines = append(lines,
		styles.AddButtonStyle.Render(styles.IconAdd+" Add task"),
		styles.HelpLineStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())),
	)

	return strings.Join(lines, "\n")
}

func (m Model) renderRow(t task.Task, selected bool, width int) string {
	cursor := " "
	if selected {
		cursor = styles.CursorStyle.Render(styles.IconCursor)
	}

	mark := " "
	if m.ui.isMarked(t.ID) {
		mark = styles.MarkedStyle.Render(styles.IconMarked)
	}

	box := styles.IconUnchecked
	nameStyle := styles.TaskStyle
	if t.Completed {
		box = styles.IconChecked
		nameStyle = styles.TaskCompleteStyle
	}

	// cursor, mark, box and the separating spaces
	name := ansi.Truncate(t.Name, max(width-7, 1), "…")

	row := cursor + mark + " " + styles.CheckboxStyle.Render(box) + " " + nameStyle.Render(name)
	if selected {
		return styles.RowSelectedStyle.Render(row)
	}
	return row
}
