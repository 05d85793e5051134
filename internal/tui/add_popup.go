package tui

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/tudu/internal/core/styles"
)

const popupInputWidth = 40

func (m *Model) openPopup() tea.Cmd {
	m.ui.PopupVisible = true
	m.ui.Input.Reset()
	return m.ui.Input.Focus()
}

func (m *Model) closePopup() {
	m.ui.PopupVisible = false
	m.ui.Input.Reset()
	m.ui.Input.Blur()
}

func (m Model) handlePopupKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePopup()
		return m, nil
	case "enter":
		cmd := m.submitPopup()
		return m, cmd
	}

	var cmd tea.Cmd
	m.ui.Input, cmd = m.ui.Input.Update(msg)
	return m, cmd
}

// submitPopup adds the buffered name. An empty buffer keeps the popup open.
func (m *Model) submitPopup() tea.Cmd {
	name := m.ui.Buffer()
	if name == "" {
		return nil
	}

	m.closePopup()
	if !m.store.Add(name) {
		return nil
	}

	m.ui.Cursor = m.store.Len() - 1
	m.clampCursor()

	if t, ok := m.currentTask(); ok {
		m.log.Debug().Ctx(m.logContext(t.ID)).Str("name", t.Name).Msg("task added")
	}
	m.notifyBus.Infof("Added %q", name)
	return m.ensureToastTick()
}

// addButton renders the submit button, disabled while the buffer is empty.
func (m Model) addButton() string {
	if m.ui.Buffer() == "" {
		return styles.ButtonDisabledStyle.Render("Add")
	}
	return styles.ButtonStyle.Render("Add")
}

func (m Model) renderPopup() string {
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.ModalTitleStyle.Render("New Task"),
		"",
		styles.InputFieldStyle.Render(m.ui.Input.View()),
		"",
		m.addButton(),
		styles.ModalHelpStyle.Render("enter add • esc cancel"),
	)

	return styles.ModalStyle.Render(content)
}

// overlayPopup centers the add popup over background.
func (m Model) overlayPopup(background string, width, height int) string {
	popup := m.renderPopup()

	bgLayer := lipgloss.NewLayer(styles.BackdropStyle.Render(background))
	popupLayer := lipgloss.NewLayer(popup)

	centerX := max((width-lipgloss.Width(popup))/2, 0)
	centerY := max((height-lipgloss.Height(popup))/2, 0)
	popupLayer.X(centerX).Y(centerY).Z(1)

	return lipgloss.NewCompositor(bgLayer, popupLayer).Render()
}
