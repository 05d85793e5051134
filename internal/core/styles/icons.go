package styles

var (
	IconChecked   = "☑"
	IconUnchecked = "☐"
	IconAdd       = "⊕"
	IconCursor    = "┃"
	IconMarked    = "✗"
)

// Notification icons
var (
	IconNotifyInfo    = "ℹ"
	IconNotifyWarning = "⚠"
	IconNotifyError   = "✖"
)
