package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	mode     key.Binding
	paste    key.Binding
	file     key.Binding
	sample   key.Binding
	remove   key.Binding
	dedupe   key.Binding
	clear    key.Binding
	run      key.Binding
	reset    key.Binding
	allowDup key.Binding
	grow     key.Binding
	shrink   key.Binding
	export   key.Binding
	submit   key.Binding
	confirm  key.Binding
	back     key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		mode:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch mode")),
		paste:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add names")),
		file:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "import csv")),
		sample:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sample")),
		remove:   key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "remove")),
		dedupe:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "remove dupes")),
		clear:    key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear all")),
		run:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "draw/group")),
		reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset draw")),
		allowDup: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "allow repeats")),
		grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger groups")),
		shrink:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller groups")),
		export:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "export csv")),
		submit:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "add")),
		confirm:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "import")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.mode, k.run, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.mode},
		{k.paste, k.file, k.sample},
		{k.remove, k.dedupe, k.clear},
		{k.run, k.reset, k.allowDup},
		{k.grow, k.shrink, k.export},
		{k.quit},
	}
}

// drawKeys are the bindings shown under the draw panel.
func (k keyMap) drawKeys() []key.Binding {
	return []key.Binding{k.mode, k.run, k.reset, k.allowDup, k.paste, k.file, k.sample, k.remove, k.dedupe, k.clear, k.quit}
}

// groupKeys are the bindings shown under the group panel.
func (k keyMap) groupKeys() []key.Binding {
	return []key.Binding{k.mode, k.run, k.grow, k.shrink, k.export, k.paste, k.file, k.sample, k.remove, k.dedupe, k.clear, k.quit}
}
