package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/hrtools/internal/draw"
	"github.com/desertthunder/hrtools/internal/grouping"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/session"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/samber/lo"
)

var _ Painter = (*Palette)(nil)

// ViewState represents the current input focus in the TUI.
type ViewState int

const (
	BrowseView ViewState = iota // roster list and mode panel have the keyboard
	PasteView                   // paste box is focused
	ImportView                  // CSV path prompt is focused
)

const (
	DrawMode  = models.DrawMode
	GroupMode = models.GroupMode
)

// Opts contains configuration for the TUI [Model].
type Opts struct {
	OutputDir string           // Export directory (default: ".")
	Logger    *log.Logger      // Defaults to a stderr logger; the CLI passes a file logger
	Now       func() time.Time // Clock for export filenames (default: [time.Now])
}

// Model represents the TUI application state.
type Model struct {
	session   *session.Session
	logger    *log.Logger
	outputDir string
	now       func() time.Time
	view      ViewState
	width     int
	height    int
	roster    list.Model
	paste     textarea.Model
	path      textinput.Model
	drawGen   int
	status    string
	err       error
	help      help.Model
	keys      keyMap
}

// NewModel creates a new TUI model around an existing session, which may already hold a roster.
func NewModel(sess *session.Session, opts Opts) *Model {
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	roster := list.New(nil, list.NewDefaultDelegate(), 36, 20)
	roster.Title = "Roster"
	roster.SetShowHelp(false)
	roster.SetFilteringEnabled(false)
	roster.DisableQuitKeybindings()

	paste := textarea.New()
	paste.Placeholder = "Names separated by commas or new lines"
	paste.ShowLineNumbers = false
	paste.SetWidth(40)
	paste.SetHeight(6)

	path := textinput.New()
	path.Placeholder = "path/to/names.csv"
	path.Prompt = "CSV: "
	path.Width = 40

	m := &Model{
		session:   sess,
		logger:    shared.WithLogger(opts.Logger, "component", "tui"),
		outputDir: opts.OutputDir,
		now:       opts.Now,
		view:      BrowseView,
		roster:    roster,
		paste:     paste,
		path:      path,
		help:      help.New(),
		keys:      newKeyMap(),
	}
	m.refreshRoster()
	return m
}

// Init implements [tea.Model]. The roster is already loaded, so there is no startup command.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.roster.SetSize(max(msg.Width/3, 24), max(msg.Height-8, 5))
		m.paste.SetWidth(max(msg.Width/2, 20))
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PasteView:
			return m.handlePasteKeys(msg)
		case ImportView:
			return m.handleImportKeys(msg)
		default:
			return m.handleBrowseKeys(msg)
		}

	case Msg:
		switch msg.kind {
		case MsgDrawTick:
			return m.handleDrawTick(msg.data.(int))
		case MsgExported:
			data := msg.data.(struct {
				path string
				err  error
			})
			switch {
			case errors.Is(data.err, shared.ErrNothingToExport):
				m.setStatus("No groups to export")
			case data.err != nil:
				m.setError(data.err)
			default:
				m.logger.Info("groups exported", "path", data.path)
				m.setStatus(fmt.Sprintf("Exported %s", data.path))
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.roster, cmd = m.roster.Update(msg)
	return m, cmd
}

func (m *Model) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.mode):
		mode := m.session.ToggleMode()
		m.setStatus(fmt.Sprintf("Mode: %s", mode))
		return m, nil
	case key.Matches(msg, m.keys.paste):
		m.view = PasteView
		m.paste.Reset()
		return m, m.paste.Focus()
	case key.Matches(msg, m.keys.file):
		m.view = ImportView
		m.path.Reset()
		return m, m.path.Focus()
	case key.Matches(msg, m.keys.sample):
		n := m.session.LoadSample()
		m.afterRosterChange(fmt.Sprintf("Added %d sample names", n))
		return m, nil
	case key.Matches(msg, m.keys.remove):
		if item, ok := m.roster.SelectedItem().(personItem); ok && m.session.Remove(item.person.ID) {
			m.afterRosterChange(fmt.Sprintf("Removed %s", item.person.Name))
		}
		return m, nil
	case key.Matches(msg, m.keys.dedupe):
		n := m.session.RemoveDuplicates()
		m.afterRosterChange(fmt.Sprintf("Removed %d duplicates", n))
		return m, nil
	case key.Matches(msg, m.keys.clear):
		if m.session.Clear() {
			m.afterRosterChange("Cleared roster")
		}
		return m, nil
	case key.Matches(msg, m.keys.run):
		return m.run()
	}

	if m.session.Mode() == DrawMode {
		switch {
		case key.Matches(msg, m.keys.reset):
			m.drawGen++
			m.session.Draw().Reset()
			m.setStatus("Draw reset")
			return m, nil
		case key.Matches(msg, m.keys.allowDup):
			allow := !m.session.Draw().AllowDuplicates()
			m.session.Draw().SetAllowDuplicates(allow)
			m.setStatus(fmt.Sprintf("Allow repeat winners: %t", allow))
			return m, nil
		}
	} else {
		switch {
		case key.Matches(msg, m.keys.grow):
			m.resize(1)
			return m, nil
		case key.Matches(msg, m.keys.shrink):
			m.resize(-1)
			return m, nil
		case key.Matches(msg, m.keys.export):
			return m, m.export()
		}
	}

	var cmd tea.Cmd
	m.roster, cmd = m.roster.Update(msg)
	return m, cmd
}

func (m *Model) handlePasteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = BrowseView
		m.paste.Blur()
		return m, nil
	case key.Matches(msg, m.keys.submit):
		n := m.session.AddText(m.paste.Value())
		m.view = BrowseView
		m.paste.Blur()
		m.paste.Reset()
		m.afterRosterChange(fmt.Sprintf("Added %d names", n))
		return m, nil
	}

	var cmd tea.Cmd
	m.paste, cmd = m.paste.Update(msg)
	return m, cmd
}

func (m *Model) handleImportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.back):
		m.view = BrowseView
		m.path.Blur()
		return m, nil
	case key.Matches(msg, m.keys.confirm):
		path := strings.TrimSpace(m.path.Value())
		m.view = BrowseView
		m.path.Blur()
		if path == "" {
			return m, nil
		}
		n, err := m.session.AddFile(path)
		if err != nil {
			m.setError(err)
			return m, nil
		}
		m.afterRosterChange(fmt.Sprintf("Imported %d names from %s", n, path))
		return m, nil
	}

	var cmd tea.Cmd
	m.path, cmd = m.path.Update(msg)
	return m, cmd
}

// run starts a draw or generates groups depending on the mode.
func (m *Model) run() (tea.Model, tea.Cmd) {
	if m.session.Mode() == GroupMode {
		groups := m.session.GenerateGroups()
		if len(groups) > 0 {
			m.setStatus(fmt.Sprintf("Generated %d groups", len(groups)))
		}
		return m, nil
	}

	if !m.session.Draw().Start() {
		return m, nil
	}
	m.drawGen++
	m.err = nil
	m.status = ""
	return m, m.tick(m.drawGen)
}

func (m *Model) tick(gen int) tea.Cmd {
	return tea.Tick(m.session.Draw().Interval(), func(time.Time) tea.Msg {
		return drawTickMsg(gen)
	})
}

func (m *Model) handleDrawTick(gen int) (tea.Model, tea.Cmd) {
	engine := m.session.Draw()
	if gen != m.drawGen || engine.State() != draw.Drawing {
		return m, nil
	}

	update := engine.Tick()
	if update.Done && update.Winner != nil {
		m.logger.Info("winner drawn", "name", update.Winner.Name, "remaining", len(engine.Pool()))
		return m, nil
	}
	return m, m.tick(gen)
}

func (m *Model) resize(delta int) {
	g := m.session.Grouping()
	if err := g.SetSize(g.Size() + delta); err != nil {
		m.setStatus(fmt.Sprintf("Group size stays at %d", g.Size()))
		return
	}
	m.setStatus(fmt.Sprintf("Group size: %d", g.Size()))
}

// export snapshots the groups here so the command goroutine never touches the engine.
func (m *Model) export() tea.Cmd {
	g := m.session.Grouping()
	groups, locale := g.Groups(), g.Locale()
	dir, now := m.outputDir, m.now()
	return func() tea.Msg {
		path, err := grouping.WriteFile(groups, locale, dir, now)
		return exportedMsg(path, err)
	}
}

func (m *Model) afterRosterChange(status string) {
	m.drawGen++
	m.refreshRoster()
	m.setStatus(status)
}

func (m *Model) refreshRoster() {
	m.roster.SetItems(personItems(m.session.Roster(), m.session.Duplicates()))
}

func (m *Model) setStatus(s string) {
	m.err = nil
	m.status = s
}

func (m *Model) setError(err error) {
	m.logger.Error("action failed", "error", err)
	m.status = ""
	m.err = err
}

// View renders the roster beside the active mode panel.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	left := m.roster.View()
	var right string
	switch m.view {
	case PasteView:
		right = m.renderPaste()
	case ImportView:
		right = m.renderImport()
	default:
		if m.session.Mode() == GroupMode {
			right = m.renderGroups()
		} else {
			right = m.renderDraw()
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", styles.panel.Render(right)))
	b.WriteString("\n")

	if dupes := m.duplicateCount(); dupes > 0 {
		b.WriteString(styles.warn.Render(fmt.Sprintf("%d entries share a name with another entry (press D to remove)", dupes)))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		if errors.Is(m.err, shared.ErrUnsupportedFile) {
			b.WriteString(styles.help.Render(" (only text CSV files can be imported)"))
		}
	case m.status != "":
		b.WriteString(styles.ok.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, mode := range []models.Mode{DrawMode, GroupMode} {
		label := strings.ToUpper(mode.String()[:1]) + mode.String()[1:]
		if mode == m.session.Mode() {
			tabs = append(tabs, styles.active.Render(label))
		} else {
			tabs = append(tabs, styles.tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderDraw() string {
	engine := m.session.Draw()
	progress := engine.Progress()

	var b strings.Builder
	b.WriteString(styles.title.Render("Lucky Draw"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Pool: %s of %d\n", styles.As(fmt.Sprint(len(engine.Pool())), lipgloss.Color("#04B575")), len(m.session.Roster())))
	b.WriteString(fmt.Sprintf("Allow repeat winners: %t\n", engine.AllowDuplicates()))

	switch engine.State() {
	case draw.Drawing:
		b.WriteString("\n")
		b.WriteString(styles.On(styles.warn.Render(fmt.Sprintf("» %s «", progress.Current.Name)), lipgloss.Color("#3A2A00")))
		b.WriteString(styles.help.Render(fmt.Sprintf("  %d/%d", progress.Step, progress.Total)))
		b.WriteString("\n")
	case draw.Result:
		if w := engine.Winner(); w != nil {
			b.WriteString(styles.banner.Render(fmt.Sprintf("★ %s ★", w.Name)))
			b.WriteString("\n")
		}
	default:
		if len(m.session.Roster()) == 0 {
			b.WriteString(styles.help.Render("\nAdd names to start drawing\n"))
		} else if len(engine.Pool()) > 0 {
			b.WriteString(styles.help.Render("\nPress space to draw\n"))
		}
	}

	if engine.State() != draw.Drawing && len(m.session.Roster()) > 0 && len(engine.Pool()) == 0 {
		b.WriteString(styles.warn.Render("\nEveryone has been drawn. Press r to reset\n"))
	}

	if history := engine.History(); len(history) > 0 {
		b.WriteString("\nHistory\n")
		for i, p := range history {
			b.WriteString(fmt.Sprintf("  %d. %s\n", len(history)-i, p.Name))
		}
	}
	return b.String()
}

func (m *Model) renderGroups() string {
	g := m.session.Grouping()

	var b strings.Builder
	b.WriteString(styles.title.Render("Groups"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Size: %d per group (%d groups)\n", g.Size(), grouping.Count(len(m.session.Roster()), g.Size())))

	groups := g.Groups()
	if len(groups) == 0 {
		b.WriteString(styles.help.Render("\nPress space to generate groups\n"))
		return b.String()
	}

	for _, group := range groups {
		b.WriteString("\n")
		b.WriteString(styles.ok.Render(fmt.Sprintf("%s (%d)", group.Name, len(group.Members))))
		b.WriteString("\n")
		b.WriteString("  " + strings.Join(models.Names(group.Members), ", "))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderPaste() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		styles.title.Render("Add names"),
		m.paste.View(),
		m.help.ShortHelpView([]key.Binding{m.keys.submit, m.keys.back}),
	)
}

func (m *Model) renderImport() string {
	return fmt.Sprintf("%s\n\n%s\n\n%s",
		styles.title.Render("Import CSV"),
		m.path.View(),
		m.help.ShortHelpView([]key.Binding{m.keys.confirm, m.keys.back}),
	)
}

func (m *Model) renderHelp() string {
	if m.view != BrowseView {
		return ""
	}
	if m.session.Mode() == GroupMode {
		return m.help.ShortHelpView(m.keys.groupKeys())
	}
	return m.help.ShortHelpView(m.keys.drawKeys())
}

func (m *Model) duplicateCount() int {
	return lo.Count(m.session.Duplicates(), true)
}
