package tui

import (
	"fmt"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tudu/internal/core/styles"
	"github.com/colonyops/tudu/internal/core/task"
	"github.com/colonyops/tudu/pkg/tuitest"
)

func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestModel(t *testing.T, opts Options, names ...string) (Model, *task.Store) {
	t.Helper()

	store := task.NewStore(task.WithIDSource(counterIDs()))
	for _, name := range names {
		require.True(t, store.Add(name))
	}

	m := New(store, opts)
	m, _ = send(m, tuitest.WindowSize(80, 24))
	return m, store
}

// send feeds msgs through Update in order and returns the last command.
func send(m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var result tea.Model
		result, cmd = m.Update(msg)
		m = result.(Model)
	}
	return m, cmd
}

func taskNames(store *task.Store) []string {
	var names []string
	for _, t := range store.List() {
		names = append(names, t.Name)
	}
	return names
}

func TestModel_splash_ends_once(t *testing.T) {
	m, _ := newTestModel(t, Options{ShowSplash: true})

	require.True(t, m.State().Splash)
	assert.NotNil(t, m.Init())
	assert.Contains(t, tuitest.StripANSI(m.render()), "TUDU")

	m, cmd := send(m, splashDoneMsg{})
	assert.False(t, m.State().Splash)
	assert.Nil(t, cmd)
	assert.Contains(t, tuitest.StripANSI(m.render()), "Sample Task")

	m, _ = send(m, splashDoneMsg{})
	assert.False(t, m.State().Splash)
}

func TestModel_without_splash(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	assert.False(t, m.State().Splash)
	assert.Nil(t, m.Init())
}

func TestModel_splash_defaults_duration(t *testing.T) {
	m, _ := newTestModel(t, Options{ShowSplash: true})
	assert.Equal(t, DefaultSplashDuration, m.splashDuration)

	m, _ = newTestModel(t, Options{ShowSplash: true, SplashDuration: 1})
	assert.EqualValues(t, 1, m.splashDuration)
}

func TestModel_splash_ignores_keys(t *testing.T) {
	m, store := newTestModel(t, Options{ShowSplash: true})

	m, _ = send(m, tuitest.KeyPress('a'), tuitest.KeyPress('d'), tuitest.KeySpace(), tuitest.KeyPress('q'))

	assert.True(t, m.State().Splash)
	assert.False(t, m.State().PopupVisible)
	assert.False(t, m.quitting)
	require.Equal(t, 1, store.Len())
	assert.False(t, store.List()[0].Completed)
}

func TestModel_ctrl_c_quits(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		pre  []tea.Msg
	}{
		{name: "splash", opts: Options{ShowSplash: true}},
		{name: "list"},
		{name: "popup", pre: []tea.Msg{tuitest.KeyPress('a')}},
		{name: "help", pre: []tea.Msg{tuitest.KeyPress('?')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel(t, tt.opts)
			m, _ = send(m, tt.pre...)

			m, cmd := send(m, tuitest.CtrlC())
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.render())
		})
	}
}

func TestModel_q_quits_from_list(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	_, cmd := send(m, tuitest.KeyPress('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_toggle(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeySpace())
	assert.True(t, store.List()[0].Completed)
	assert.Contains(t, tuitest.StripANSI(m.render()), styles.IconChecked+" Sample Task")

	m, _ = send(m, tuitest.KeyEnter())
	assert.False(t, store.List()[0].Completed)
	assert.Contains(t, tuitest.StripANSI(m.render()), styles.IconUnchecked+" Sample Task")
}

func TestModel_toggle_follows_cursor(t *testing.T) {
	m, store := newTestModel(t, Options{}, "b", "c")

	_, _ = send(m, tuitest.KeyDown(), tuitest.KeyPress('j'), tuitest.KeyPress('k'), tuitest.KeySpace())

	tasks := store.List()
	assert.False(t, tasks[0].Completed)
	assert.True(t, tasks[1].Completed)
	assert.False(t, tasks[2].Completed)
}

func TestModel_cursor_clamps(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "b")

	m, _ = send(m, tuitest.KeyUp())
	assert.Equal(t, 0, m.State().Cursor)

	m, _ = send(m, tuitest.KeyDown(), tuitest.KeyDown(), tuitest.KeyDown())
	assert.Equal(t, 1, m.State().Cursor)
}

func TestModel_add_popup_submits(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('a'))
	require.True(t, m.State().PopupVisible)
	assert.Equal(t, styles.ButtonDisabledStyle.Render("Add"), m.addButton())

	m, _ = send(m, tuitest.Type("Buy milk")...)
	assert.Equal(t, "Buy milk", m.State().Buffer())
	assert.Equal(t, styles.ButtonStyle.Render("Add"), m.addButton())
	assert.Contains(t, tuitest.StripANSI(m.render()), "New Task")

	m, cmd := send(m, tuitest.KeyEnter())
	assert.False(t, m.State().PopupVisible)
	assert.Empty(t, m.State().Buffer())
	assert.Equal(t, []string{"Sample Task", "Buy milk"}, taskNames(store))
	assert.Equal(t, 1, m.State().Cursor)
	assert.False(t, store.List()[1].Completed)

	require.NotNil(t, cmd, "toast tick should start")
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, `Added "Buy milk"`, m.toastController.Toasts()[0].notification.Message)
}

func TestModel_add_popup_ignores_empty_submit(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('a'), tuitest.KeyEnter())

	assert.True(t, m.State().PopupVisible)
	assert.Equal(t, 1, store.Len())
	assert.False(t, m.toastController.HasToasts())
}

func TestModel_add_popup_backspace_to_empty(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('a'), tuitest.KeyPress('x'), tuitest.KeyBackspace(), tuitest.KeyEnter())

	assert.True(t, m.State().PopupVisible)
	assert.Empty(t, m.State().Buffer())
	assert.Equal(t, 1, store.Len())
}

func TestModel_add_popup_esc_discards(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('a'))
	m, _ = send(m, tuitest.Type("draft")...)
	m, _ = send(m, tuitest.KeyEsc())

	assert.False(t, m.State().PopupVisible)
	assert.Empty(t, m.State().Buffer())
	assert.Equal(t, 1, store.Len())

	m, _ = send(m, tuitest.KeyPress('a'))
	assert.True(t, m.State().PopupVisible)
	assert.Empty(t, m.State().Buffer())
}

func TestModel_add_popup_list_keys_are_text(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('a'))
	m, _ = send(m, tuitest.Type("dvq?")...)

	assert.True(t, m.State().PopupVisible)
	assert.Equal(t, "dvq?", m.State().Buffer())
	assert.Equal(t, 1, store.Len())
}

func TestModel_delete_cursor_row(t *testing.T) {
	m, store := newTestModel(t, Options{}, "b", "c")

	m, cmd := send(m, tuitest.KeyDown(), tuitest.KeyPress('d'))

	assert.Equal(t, []string{"Sample Task", "c"}, taskNames(store))
	assert.Equal(t, 1, m.State().Cursor)
	assert.NotNil(t, cmd)
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, "Deleted 1 task", m.toastController.Toasts()[0].notification.Message)
}

func TestModel_delete_last_row_moves_cursor_up(t *testing.T) {
	m, store := newTestModel(t, Options{}, "b")

	m, _ = send(m, tuitest.KeyDown(), tuitest.KeyPress('d'))

	assert.Equal(t, []string{"Sample Task"}, taskNames(store))
	assert.Equal(t, 0, m.State().Cursor)
}

func TestModel_delete_marked_rows(t *testing.T) {
	m, store := newTestModel(t, Options{}, "b", "c", "d")

	m, _ = send(m,
		tuitest.KeyPress('v'),
		tuitest.KeyDown(), tuitest.KeyDown(),
		tuitest.KeyPress('v'),
	)
	require.Len(t, m.State().Marked, 2)
	assert.Contains(t, tuitest.StripANSI(m.render()), styles.IconMarked)

	m, _ = send(m, tuitest.KeyPress('d'))

	assert.Equal(t, []string{"b", "d"}, taskNames(store))
	assert.Empty(t, m.State().Marked)
	assert.Equal(t, "Deleted 2 tasks", m.toastController.Toasts()[0].notification.Message)
}

func TestModel_mark_twice_unmarks(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('v'), tuitest.KeyPress('v'))
	assert.Empty(t, m.State().Marked)
}

func TestModel_esc_clears_marks(t *testing.T) {
	m, store := newTestModel(t, Options{}, "b")

	m, _ = send(m, tuitest.KeyPress('v'), tuitest.KeyEsc(), tuitest.KeyDown(), tuitest.KeyPress('d'))

	assert.Equal(t, []string{"Sample Task"}, taskNames(store))
}

func TestModel_delete_on_empty_list(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('d'))
	require.Equal(t, 0, store.Len())

	m, cmd := send(m, tuitest.KeyPress('d'), tuitest.KeySpace(), tuitest.KeyPress('v'))
	assert.Nil(t, cmd)
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0, m.State().Cursor)
	assert.Contains(t, tuitest.StripANSI(m.render()), "Nothing to do")
}

func TestModel_help_dialog(t *testing.T) {
	m, store := newTestModel(t, Options{})

	m, _ = send(m, tuitest.KeyPress('?'))
	require.True(t, m.State().HelpVisible)
	assert.Contains(t, tuitest.StripANSI(m.render()), "Keyboard")

	m, _ = send(m, tuitest.KeyPress('d'), tuitest.KeyPress('a'))
	assert.Equal(t, 1, store.Len())
	assert.False(t, m.State().PopupVisible)

	m, _ = send(m, tuitest.KeyEsc())
	assert.False(t, m.State().HelpVisible)
}

func TestModel_scrolls_to_cursor(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "t1", "t2", "t3", "t4", "t5")
	m, _ = send(m, tuitest.WindowSize(80, listChrome+2))

	for range 4 {
		m, _ = send(m, tuitest.KeyDown())
	}

	assert.Equal(t, 4, m.State().Cursor)
	assert.Equal(t, 3, m.State().Offset)
	view := tuitest.StripANSI(m.render())
	assert.Contains(t, view, "t3")
	assert.Contains(t, view, "t4")
	assert.NotContains(t, view, "Sample Task")

	for range 5 {
		m, _ = send(m, tuitest.KeyUp())
	}
	assert.Equal(t, 0, m.State().Offset)
}

func TestModel_toast_tick_chain_expires(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(m, tuitest.KeyPress('d'))
	require.NotNil(t, cmd)
	require.True(t, m.toastController.Ticking())

	ticks := 0
	for cmd != nil {
		m, cmd = send(m, toastTickMsg{})
		ticks++
		require.LessOrEqual(t, ticks, 100, "tick chain never expired")
	}

	assert.Equal(t, int(defaultToastTTL/toastTickInterval), ticks)
	assert.False(t, m.toastController.HasToasts())
	assert.False(t, m.toastController.Ticking())
}

func TestModel_second_toast_does_not_double_tick(t *testing.T) {
	m, _ := newTestModel(t, Options{}, "b")

	m, cmd := send(m, tuitest.KeyPress('d'))
	require.NotNil(t, cmd)

	_, cmd = send(m, tuitest.KeyPress('d'))
	assert.Nil(t, cmd)
}
