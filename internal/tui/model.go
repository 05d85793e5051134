// Package tui implements the Bubble Tea interface for tudu.
package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/tudu/internal/core/logging"
	"github.com/colonyops/tudu/internal/core/task"
	"github.com/colonyops/tudu/internal/tui/notify"
)

// DefaultSplashDuration is how long the splash screen is shown.
const DefaultSplashDuration = 2 * time.Second

// Options configures the TUI.
type Options struct {
	// ShowSplash shows the splash screen before the list.
	ShowSplash bool
	// SplashDuration overrides DefaultSplashDuration when positive.
	SplashDuration time.Duration
}

// splashDoneMsg ends the splash screen.
type splashDoneMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	store *task.Store
	ui    UIState
	keys  KeyMap
	help  help.Model
	log   zerolog.Logger

	splashDuration time.Duration

	notifyBus       *notify.Bus
	toastController *ToastController
	toastView       *ToastView

	width    int
	height   int
	quitting bool
}

// New creates a Model that renders and mutates store.
func New(store *task.Store, opts Options) Model {
	duration := opts.SplashDuration
	if duration <= 0 {
		duration = DefaultSplashDuration
	}

	toasts := NewToastController()
	bus := notify.NewBus()
	bus.Subscribe(toasts.Push)

	return Model{
		store:           store,
		ui:              newUIState(opts.ShowSplash),
		keys:            DefaultKeyMap(),
		help:            help.New(),
		log:             logging.Component("tui"),
		splashDuration:  duration,
		notifyBus:       bus,
		toastController: toasts,
		toastView:       NewToastView(toasts),
	}
}

// Init schedules the one-shot splash transition.
func (m Model) Init() tea.Cmd {
	if !m.ui.Splash {
		return nil
	}
	return tea.Tick(m.splashDuration, func(time.Time) tea.Msg {
		return splashDoneMsg{}
	})
}

// State returns a copy of the current UI state.
func (m Model) State() UIState {
	return m.ui
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil
	case splashDoneMsg:
		if m.ui.Splash {
			m.ui.Splash = false
			m.log.Debug().Msg("splash finished")
		}
		return m, nil
	case toastTickMsg:
		m.toastController.Tick(toastTickInterval)
		if m.toastController.HasToasts() {
			return m, scheduleToastTick()
		}
		m.toastController.SetTicking(false)
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.ui.PopupVisible {
		var cmd tea.Cmd
		m.ui.Input, cmd = m.ui.Input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case m.ui.Splash:
		return m, nil
	case m.ui.HelpVisible:
		return m.handleHelpKey(msg)
	case m.ui.PopupVisible:
		return m.handlePopupKey(msg)
	}

	return m.handleListKey(msg)
}

func (m Model) handleHelpKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.ui.HelpVisible = false
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.ui.Cursor--
		m.clampCursor()
	case key.Matches(msg, m.keys.Down):
		m.ui.Cursor++
		m.clampCursor()
	case key.Matches(msg, m.keys.Toggle):
		m.toggleCurrent()
	case key.Matches(msg, m.keys.Mark):
		m.markCurrent()
	case key.Matches(msg, m.keys.Delete):
		cmd := m.deleteSelected()
		return m, cmd
	case key.Matches(msg, m.keys.Add):
		cmd := m.openPopup()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.ui.HelpVisible = true
	case msg.String() == "esc":
		switch {
		case len(m.ui.Marked) > 0:
			clear(m.ui.Marked)
		case m.toastController.HasToasts():
			m.toastController.Dismiss()
		}
	}

	return m, nil
}

// currentTask returns the task under the cursor.
func (m *Model) currentTask() (task.Task, bool) {
	tasks := m.store.List()
	if m.ui.Cursor < 0 || m.ui.Cursor >= len(tasks) {
		return task.Task{}, false
	}
	return tasks[m.ui.Cursor], true
}

func (m *Model) toggleCurrent() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if m.store.Toggle(t.ID) {
		m.log.Debug().
			Ctx(m.logContext(t.ID)).
			Bool("completed", !t.Completed).
			Msg("task toggled")
	}
}

func (m *Model) markCurrent() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if m.ui.isMarked(t.ID) {
		delete(m.ui.Marked, t.ID)
		return
	}
	m.ui.Marked[t.ID] = struct{}{}
}

// deleteSelected removes the marked tasks, or the task under the cursor when
// nothing is marked.
func (m *Model) deleteSelected() tea.Cmd {
	var positions []int
	if len(m.ui.Marked) > 0 {
		for id := range m.ui.Marked {
			if idx := m.store.IndexOf(id); idx >= 0 {
				positions = append(positions, idx)
			}
		}
		clear(m.ui.Marked)
	} else if m.ui.Cursor >= 0 && m.ui.Cursor < m.store.Len() {
		positions = append(positions, m.ui.Cursor)
	}

	removed := m.store.DeleteAt(positions...)
	m.clampCursor()
	if removed == 0 {
		return nil
	}

	m.log.Debug().
		Ctx(m.logContext("")).
		Int("removed", removed).
		Int("remaining", m.store.Len()).
		Msg("tasks deleted")

	if removed == 1 {
		m.notifyBus.Infof("Deleted 1 task")
	} else {
		m.notifyBus.Infof("Deleted %d tasks", removed)
	}
	return m.ensureToastTick()
}

// clampCursor keeps the cursor on a task and the scroll offset around it.
func (m *Model) clampCursor() {
	n := m.store.Len()
	m.ui.Cursor = max(min(m.ui.Cursor, n-1), 0)

	rows := m.visibleRows()
	if rows <= 0 {
		m.ui.Offset = 0
		return
	}
	if m.ui.Cursor < m.ui.Offset {
		m.ui.Offset = m.ui.Cursor
	}
	if m.ui.Cursor >= m.ui.Offset+rows {
		m.ui.Offset = m.ui.Cursor - rows + 1
	}
	m.ui.Offset = max(min(m.ui.Offset, n-rows), 0)
}

// ensureToastTick starts the toast countdown unless it is already running.
func (m *Model) ensureToastTick() tea.Cmd {
	if !m.toastController.HasToasts() || m.toastController.Ticking() {
		return nil
	}
	m.toastController.SetTicking(true)
	return scheduleToastTick()
}

func (m *Model) logContext(taskID string) context.Context {
	ctx := logging.WithView(context.Background(), m.viewName())
	if taskID != "" {
		ctx = logging.WithTaskID(ctx, taskID)
	}
	return ctx
}

func (m *Model) viewName() string {
	switch {
	case m.ui.Splash:
		return "splash"
	case m.ui.PopupVisible:
		return "add"
	case m.ui.HelpVisible:
		return "help"
	default:
		return "list"
	}
}
