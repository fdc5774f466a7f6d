package app

import "github.com/charmbracelet/bubbles/key"

// keyMap is the exercise's key bindings. Bindings that do not apply in the
// current state are disabled, which also hides them from the help bar.
type keyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	PgUp   key.Binding
	PgDown key.Binding
	Grab   key.Binding
	Zone1  key.Binding
	Zone2  key.Binding
	Zone3  key.Binding
	Cancel key.Binding
	Remove key.Binding
	Check  key.Binding
	Reset  key.Binding
	Toast  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/h", "prev column"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
			key.WithHelp("→/l", "next column"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PgUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "scroll up"),
		),
		PgDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Grab: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "pick up / drop"),
		),
		Zone1: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "drop in zone 1"),
		),
		Zone2: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "drop in zone 2"),
		),
		Zone3: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "drop in zone 3"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel drag"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete", "backspace"),
			key.WithHelp("x", "remove card"),
		),
		Check: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "check answers"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset all"),
		),
		Toast: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "dismiss toast"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// zoneKeys returns the quick-drop bindings in zone order.
func (k keyMap) zoneKeys() []key.Binding {
	return []key.Binding{k.Zone1, k.Zone2, k.Zone3}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Cancel, k.Remove, k.Check, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PgUp, k.PgDown},
		{k.Grab, k.Zone1, k.Zone2, k.Zone3, k.Cancel},
		{k.Remove, k.Check, k.Reset, k.Toast},
		{k.Help, k.Quit},
	}
}
