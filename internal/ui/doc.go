// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The screen is split in two: the roster on the left and the active mode on the right.
//  1. [DrawMode] : Start a draw, watch the names cycle and see the winner with the draw history
//  2. [GroupMode] : Pick a group size, generate groups and export them as CSV
//
// The roster is edited in place with a paste box ([textarea.Model]) and a CSV path prompt ([textinput.Model]).
// Every edit goes through a [session.Session], so the draw resets whenever the roster changes.
//
// The draw animation is driven by [tea.Tick] messages at the configured cadence, each one advancing the draw
// engine by a step. Ticks carry a generation number so a reset or a new draw drops the stale chain.
package ui
