// package session ties the roster, draw and grouping engines together.
//
// A [Session] owns the single roster. Every mutation goes through the roster manager, and the draw
// engine is re-seeded only when the roster actually changed.
package session

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/hrtools/internal/draw"
	"github.com/desertthunder/hrtools/internal/grouping"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/roster"
	"github.com/desertthunder/hrtools/internal/shared"
)

// Opts contains configuration for a [Session].
type Opts struct {
	Config   *shared.Config // Defaults from [shared.DefaultConfig]
	Logger   *log.Logger    // Defaults to a stderr logger
	Random   shared.Random  // Binding draws and group shuffles (default: [shared.NewRandom])
	Cosmetic shared.Random  // Draw animation samples
	IDs      func() string  // Person and group IDs (default: [shared.GenerateID])
}

// Session is the application state shared by the CLI and the TUI.
type Session struct {
	roster   []models.Person
	mode     models.Mode
	manager  *roster.Manager
	draw     *draw.Engine
	grouping *grouping.Engine
	logger   *log.Logger
}

// New creates an empty [Session] in draw mode.
func New(opts Opts) *Session {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Random == nil {
		opts.Random = shared.NewRandom()
	}
	if opts.IDs == nil {
		opts.IDs = shared.GenerateID
	}
	cfg := opts.Config

	return &Session{
		roster:  []models.Person{},
		mode:    models.DrawMode,
		manager: roster.NewManager(roster.ManagerOpts{IDs: opts.IDs, Sample: cfg.Roster.SampleNames}),
		draw: draw.NewEngine(nil, draw.Opts{
			Random:          opts.Random,
			Cosmetic:        opts.Cosmetic,
			Steps:           cfg.Draw.Steps,
			Interval:        cfg.Draw.Interval(),
			AllowDuplicates: cfg.Draw.AllowDuplicates,
		}),
		grouping: grouping.NewEngine(grouping.Opts{
			Size:   cfg.Grouping.Size,
			Random: opts.Random,
			IDs:    opts.IDs,
			Locale: shared.LookupLocale(cfg.Locale.Name),
		}),
		logger: shared.WithLogger(opts.Logger, "component", "session"),
	}
}

// replace swaps in next and notifies the draw engine when it differs from the held roster.
func (s *Session) replace(op string, next []models.Person) bool {
	if sameRoster(s.roster, next) {
		s.logger.Debug("roster unchanged", "op", op, "size", len(s.roster))
		return false
	}

	s.roster = next
	s.draw.SetRoster(next)
	s.logger.Debug("roster updated", "op", op, "size", len(next))
	return true
}

func sameRoster(a, b []models.Person) bool {
	return slices.EqualFunc(a, b, func(x, y models.Person) bool { return x == y })
}

// AddText appends the names in text and returns how many were added.
func (s *Session) AddText(text string) int {
	before := len(s.roster)
	s.replace("add_text", s.manager.AddFromText(s.roster, text))
	return len(s.roster) - before
}

// AddCSV appends every non-empty cell read from r and returns how many were added.
func (s *Session) AddCSV(r io.Reader) (int, error) {
	next, err := s.manager.AddFromCSV(s.roster, r)
	if err != nil {
		return 0, err
	}
	before := len(s.roster)
	s.replace("add_csv", next)
	return len(s.roster) - before, nil
}

// AddFile imports the CSV file at path and returns how many names were added.
func (s *Session) AddFile(path string) (int, error) {
	next, err := s.manager.AddFromFile(s.roster, path)
	if err != nil {
		s.logger.Warn("import rejected", "path", path, "error", err)
		return 0, err
	}
	before := len(s.roster)
	s.replace("add_file", next)
	return len(s.roster) - before, nil
}

// LoadSample appends the sample names and returns how many were added.
func (s *Session) LoadSample() int {
	before := len(s.roster)
	s.replace("sample", s.manager.LoadSample(s.roster))
	return len(s.roster) - before
}

// Remove deletes the person with id, reporting whether anyone was removed.
func (s *Session) Remove(id string) bool {
	return s.replace("remove", roster.Remove(s.roster, id))
}

// Clear empties the roster.
func (s *Session) Clear() bool {
	return s.replace("clear", roster.Clear())
}

// RemoveDuplicates keeps the first occurrence of each name and returns how many entries were dropped.
func (s *Session) RemoveDuplicates() int {
	before := len(s.roster)
	s.replace("dedupe", roster.RemoveDuplicates(s.roster))
	return before - len(s.roster)
}

// Roster returns a copy of the current roster.
func (s *Session) Roster() []models.Person { return slices.Clone(s.roster) }

// Duplicates returns per-entry duplicate flags for the current roster.
func (s *Session) Duplicates() []bool { return roster.Duplicates(s.roster) }

// HasDuplicates reports whether any name appears more than once.
func (s *Session) HasDuplicates() bool { return roster.HasDuplicates(s.roster) }

// Mode returns the active mode.
func (s *Session) Mode() models.Mode { return s.mode }

// SetMode switches the active mode. Engine state is preserved across switches.
func (s *Session) SetMode(m models.Mode) {
	if m == s.mode {
		return
	}
	s.logger.Debug("mode changed", "from", s.mode, "to", m)
	s.mode = m
}

// ToggleMode flips between draw and group mode and returns the new mode.
func (s *Session) ToggleMode() models.Mode {
	if s.mode == models.DrawMode {
		s.SetMode(models.GroupMode)
	} else {
		s.SetMode(models.DrawMode)
	}
	return s.mode
}

// Draw returns the draw engine bound to this roster.
func (s *Session) Draw() *draw.Engine { return s.draw }

// Grouping returns the grouping engine.
func (s *Session) Grouping() *grouping.Engine { return s.grouping }

// GenerateGroups partitions the current roster with the grouping engine.
func (s *Session) GenerateGroups() []models.Group {
	groups := s.grouping.Generate(s.roster)
	s.logger.Debug("groups generated", "roster", len(s.roster), "size", s.grouping.Size(), "groups", len(groups))
	return groups
}
