package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/slovo/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Leaver is implemented by screens that must release session state when
// they are popped off the stack. PopToRoot does not call it.
type Leaver interface {
	Leave()
}

// Backer lets a screen replace the default pop when the user presses Esc.
type Backer interface {
	Back() tea.Cmd
}
