package tui

import (
	"charm.land/bubbles/v2/textinput"

	"github.com/colonyops/tudu/internal/core/styles"
	"github.com/colonyops/tudu/internal/core/validate"
)

// UIState is the transient presentation state. It is never persisted and is
// kept apart from the task store.
type UIState struct {
	// Splash is true until the splash timer fires.
	Splash bool
	// PopupVisible is true while the add popup is open.
	PopupVisible bool
	// Input buffers the text typed into the add popup.
	Input textinput.Model
	// HelpVisible is true while the help dialog is open.
	HelpVisible bool

	Cursor int
	Offset int
	// Marked holds ids of tasks marked for deletion.
	Marked map[string]struct{}
}

func newUIState(splash bool) UIState {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.Prompt = ""
	input.CharLimit = validate.MaxTaskNameLength
	input.SetWidth(popupInputWidth)

	inputStyles := textinput.DefaultStyles(!styles.CurrentPalette.Light)
	inputStyles.Cursor.Color = styles.ColorPrimary
	input.SetStyles(inputStyles)

	return UIState{
		Splash: splash,
		Input:  input,
		Marked: make(map[string]struct{}),
	}
}

// Buffer returns the text currently typed into the add popup.
func (s UIState) Buffer() string {
	return s.Input.Value()
}

func (s UIState) isMarked(id string) bool {
	_, ok := s.Marked[id]
	return ok
}
