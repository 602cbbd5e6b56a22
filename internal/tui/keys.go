package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Confirm  key.Binding
	Inc      key.Binding
	Dec      key.Binding
	Remove   key.Binding
	Calendar key.Binding
	Next     key.Binding
	Prev     key.Binding
	Save     key.Binding
	NewBill  key.Binding
	Print    key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:     key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add part")),
		Inc:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "qty +1")),
		Dec:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "qty -1")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		Calendar: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "AD/BS")),
		Next:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		NewBill:  key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new bill")),
		Print:    key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "print")),
		Quit:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

// contextHelp shows the bindings that apply to the focused field first.
type contextHelp struct {
	keys  keyMap
	focus field
}

func (h contextHelp) ShortHelp() []key.Binding {
	k := h.keys
	var local []key.Binding
	switch h.focus {
	case fieldSearch:
		local = []key.Binding{k.Up, k.Down, k.Confirm}
	case fieldBill:
		local = []key.Binding{k.Up, k.Down, k.Inc, k.Dec, k.Remove}
	case fieldDate:
		local = []key.Binding{k.Calendar}
	}
	return append(local, k.Next, k.Save, k.Print, k.Quit)
}

func (h contextHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		h.ShortHelp(),
		{k.Prev, k.NewBill, k.Calendar},
	}
}
