package ui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/hrtools/internal/draw"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/roster"
	"github.com/desertthunder/hrtools/internal/session"
	"github.com/desertthunder/hrtools/internal/shared"
	th "github.com/desertthunder/hrtools/internal/testing"
	"github.com/google/go-cmp/cmp"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	logger := shared.NewLogger(&bytes.Buffer{})

	cfg := shared.DefaultConfig()
	cfg.Draw.Steps = 5
	cfg.Draw.IntervalMS = 0
	cfg.Grouping.Size = 2

	sess := session.New(session.Opts{
		Config:   cfg,
		Logger:   logger,
		Random:   th.NewScriptedRandom(),
		Cosmetic: th.NewScriptedRandom(),
		IDs:      shared.NewSequence("p"),
	})

	return NewModel(sess, Opts{
		OutputDir: t.TempDir(),
		Logger:    logger,
		Now:       func() time.Time { return time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC) },
	})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(keyMsg(k))
	}
	return cmd
}

// finish delivers ticks for the current draw until it settles.
func finish(t *testing.T, m *Model) {
	t.Helper()
	for i := 0; i < 100 && m.session.Draw().State() == draw.Drawing; i++ {
		m.Update(drawTickMsg(m.drawGen))
	}
	if m.session.Draw().State() == draw.Drawing {
		t.Fatal("draw did not settle")
	}
}

func TestRosterKeys(t *testing.T) {
	t.Run("sample", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s")

		if got := len(m.session.Roster()); got != len(roster.SampleNames) {
			t.Errorf("expected %d names, got %d", len(roster.SampleNames), got)
		}
		if len(m.roster.Items()) != len(roster.SampleNames) {
			t.Errorf("list not refreshed: %d items", len(m.roster.Items()))
		}
		if !strings.Contains(m.status, "sample") {
			t.Errorf("unexpected status %q", m.status)
		}
	})

	t.Run("paste names", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "a")
		if m.view != PasteView {
			t.Fatalf("expected paste view, got %d", m.view)
		}

		press(m, "Ann, Bo", "ctrl+s")
		if m.view != BrowseView {
			t.Errorf("expected browse view after submit")
		}
		if diff := cmp.Diff([]string{"Ann", "Bo"}, models.Names(m.session.Roster())); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("paste keys do not trigger commands", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "a", "s", "q", "esc")
		if len(m.session.Roster()) != 0 {
			t.Errorf("typing in the paste box changed the roster")
		}
		if m.view != BrowseView {
			t.Errorf("esc should close the paste box")
		}
	})

	t.Run("import csv", func(t *testing.T) {
		m := newTestModel(t)
		path := filepath.Join(t.TempDir(), "names.csv")
		th.MustWriteFile(t, path, []byte("Ann,Bo\nCy\n"))

		press(m, "f", path, "enter")
		if len(m.session.Roster()) != 3 {
			t.Errorf("expected 3 imported names, got %d", len(m.session.Roster()))
		}
	})

	t.Run("import binary shows error", func(t *testing.T) {
		m := newTestModel(t)
		path := filepath.Join(t.TempDir(), "image.csv")
		th.MustWriteFile(t, path, []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01"))

		press(m, "f", path, "enter")
		if m.err == nil {
			t.Fatal("expected an error")
		}
		if !strings.Contains(m.View(), "Error") {
			t.Error("error not rendered")
		}
	})

	t.Run("remove selected", func(t *testing.T) {
		m := newTestModel(t)
		m.session.AddText("Ann,Bo")
		m.refreshRoster()

		press(m, "x")
		if diff := cmp.Diff([]string{"Bo"}, models.Names(m.session.Roster())); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("duplicates and clear", func(t *testing.T) {
		m := newTestModel(t)
		m.session.AddText("Ann,Bo,Ann")
		m.refreshRoster()

		if !strings.Contains(m.View(), "share a name") {
			t.Error("expected duplicate warning")
		}
		press(m, "D")
		if len(m.session.Roster()) != 2 {
			t.Errorf("expected 2 after dedupe, got %d", len(m.session.Roster()))
		}
		press(m, "C")
		if len(m.session.Roster()) != 0 || len(m.roster.Items()) != 0 {
			t.Error("expected empty roster")
		}
	})

	t.Run("quit", func(t *testing.T) {
		m := newTestModel(t)
		cmd := press(m, "q")
		if cmd == nil {
			t.Fatal("expected quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Error("expected tea.QuitMsg")
		}
	})
}

func TestDrawKeys(t *testing.T) {
	t.Run("space starts a draw that ticks to a winner", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s")

		cmd := press(m, " ")
		if cmd == nil {
			t.Fatal("expected a tick command")
		}
		if m.session.Draw().State() != draw.Drawing {
			t.Fatalf("expected Drawing, got %s", m.session.Draw().State())
		}
		if msg, ok := cmd().(Msg); !ok || msg.kind != MsgDrawTick {
			t.Fatalf("expected draw tick, got %#v", msg)
		}

		finish(t, m)
		winner := m.session.Draw().Winner()
		if winner == nil {
			t.Fatal("expected a winner")
		}
		if winner.Name != roster.SampleNames[0] {
			t.Errorf("expected scripted winner %s, got %s", roster.SampleNames[0], winner.Name)
		}
		if !strings.Contains(m.View(), winner.Name) {
			t.Error("winner banner not rendered")
		}
	})

	t.Run("empty roster does nothing", func(t *testing.T) {
		m := newTestModel(t)
		if cmd := press(m, " "); cmd != nil {
			t.Error("expected no command")
		}
		if m.session.Draw().State() != draw.Idle {
			t.Errorf("expected Idle, got %s", m.session.Draw().State())
		}
	})

	t.Run("stale ticks are dropped after reset", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", " ")
		stale := m.drawGen

		press(m, "r")
		if m.session.Draw().State() != draw.Idle {
			t.Fatalf("expected Idle, got %s", m.session.Draw().State())
		}

		press(m, " ")
		step := m.session.Draw().Progress().Step
		m.Update(drawTickMsg(stale))
		if m.session.Draw().Progress().Step != step {
			t.Error("stale tick advanced the draw")
		}
	})

	t.Run("roster change aborts a draw", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", " ", "s")
		if m.session.Draw().State() != draw.Idle {
			t.Errorf("expected Idle, got %s", m.session.Draw().State())
		}
	})

	t.Run("toggle repeats", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "t")
		if !m.session.Draw().AllowDuplicates() {
			t.Error("expected allow duplicates")
		}
	})

	t.Run("history accumulates", func(t *testing.T) {
		m := newTestModel(t)
		m.session.AddText("Ann,Bo")
		m.refreshRoster()

		press(m, " ")
		finish(t, m)
		press(m, " ")
		finish(t, m)

		if diff := cmp.Diff([]string{"Bo", "Ann"}, models.Names(m.session.Draw().History())); diff != "" {
			t.Errorf("history mismatch (-want +got):\n%s", diff)
		}
		if !strings.Contains(m.View(), "Everyone has been drawn") {
			t.Error("expected exhausted pool notice")
		}
	})
}

func TestGroupKeys(t *testing.T) {
	t.Run("tab switches to groups and space generates", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", "tab")
		if m.session.Mode() != models.GroupMode {
			t.Fatalf("expected group mode, got %s", m.session.Mode())
		}

		press(m, " ")
		groups := m.session.Grouping().Groups()
		if len(groups) != 8 {
			t.Errorf("expected 8 groups of 2 from 15 names, got %d", len(groups))
		}
		if !strings.Contains(m.View(), "Group 8 (1)") {
			t.Error("last group not rendered")
		}
	})

	t.Run("size bounds", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "tab", "-")
		if got := m.session.Grouping().Size(); got != 2 {
			t.Errorf("expected size to stay at 2, got %d", got)
		}
		press(m, "+", "+")
		if got := m.session.Grouping().Size(); got != 4 {
			t.Errorf("expected 4, got %d", got)
		}
	})

	t.Run("export writes dated csv", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", "tab", " ")

		cmd := press(m, "e")
		if cmd == nil {
			t.Fatal("expected export command")
		}
		m.Update(cmd())

		path := filepath.Join(m.outputDir, "groups_2026-10-17.csv")
		th.AssertFileExists(t, path)
		if !strings.Contains(m.status, path) {
			t.Errorf("unexpected status %q", m.status)
		}
	})

	t.Run("export without groups", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "tab")
		m.Update(press(m, "e")())
		if m.status != "No groups to export" {
			t.Errorf("unexpected status %q", m.status)
		}
	})

	t.Run("export runs on a snapshot while groups regenerate", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", "tab", " ")
		cmd := press(m, "e")

		done := make(chan tea.Msg)
		go func() { done <- cmd() }()
		for range 50 {
			press(m, " ")
		}
		m.Update(<-done)

		path := filepath.Join(m.outputDir, "groups_2026-10-17.csv")
		content := th.MustReadFile(t, path)
		if strings.Count(content, "\n") != 1+len(roster.SampleNames) {
			t.Errorf("expected header plus %d rows, got %q", len(roster.SampleNames), content)
		}
	})

	t.Run("group count preview follows the size", func(t *testing.T) {
		m := newTestModel(t)
		press(m, "s", "tab")
		if !strings.Contains(m.View(), "Size: 2 per group (8 groups)") {
			t.Errorf("expected preview for size 2:\n%s", m.View())
		}

		press(m, "+")
		if !strings.Contains(m.View(), "Size: 3 per group (5 groups)") {
			t.Errorf("expected preview for size 3:\n%s", m.View())
		}

		press(m, "-")
		if !strings.Contains(m.View(), "Size: 2 per group (8 groups)") {
			t.Errorf("expected preview back at size 2:\n%s", m.View())
		}

		press(m, "C")
		if !strings.Contains(m.View(), "(0 groups)") {
			t.Errorf("expected empty preview:\n%s", m.View())
		}
	})
}
