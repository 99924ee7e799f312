package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgDrawTick MsgKind = iota
	MsgExported
)

// drawTickMsg is the constructor for [MsgDrawTick]. gen identifies the draw the tick belongs to.
func drawTickMsg(gen int) Msg {
	return Msg{kind: MsgDrawTick, data: gen}
}

// exportedMsg is the constructor for [MsgExported]
func exportedMsg(path string, err error) Msg {
	return Msg{
		kind: MsgExported,
		data: struct {
			path string
			err  error
		}{path, err},
	}
}
