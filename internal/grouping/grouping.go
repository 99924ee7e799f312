package grouping

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"time"

	"github.com/desertthunder/hrtools/internal/formatter"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/samber/lo"
)

const (
	MinSize     = 2
	MaxSize     = 20
	DefaultSize = 4
)

// Partition shuffles a copy of list with rnd and cuts it into chunks of size.
//
// The final chunk holds the remainder. An empty list yields no chunks.
func Partition(list []models.Person, size int, rnd shared.Random) [][]models.Person {
	if len(list) == 0 || size <= 0 {
		return nil
	}

	shuffled := slices.Clone(list)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return lo.Chunk(shuffled, size)
}

// Count returns the number of groups n people produce at the given size.
func Count(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Opts contains configuration for an [Engine].
type Opts struct {
	Size   int           // Members per group (default: 4)
	Random shared.Random // Shuffle source (default: [shared.NewRandom])
	IDs    func() string // Group ID generator (default: [shared.GenerateID])
	Locale shared.Locale // Labels for names and exports (default: en)
}

// Engine generates and holds the latest set of groups.
type Engine struct {
	size   int
	rnd    shared.Random
	nextID func() string
	locale shared.Locale
	groups []models.Group
}

// NewEngine creates an [Engine]. An out-of-range size falls back to [DefaultSize].
func NewEngine(opts Opts) *Engine {
	if opts.Size < MinSize || opts.Size > MaxSize {
		opts.Size = DefaultSize
	}
	if opts.Random == nil {
		opts.Random = shared.NewRandom()
	}
	if opts.IDs == nil {
		opts.IDs = shared.GenerateID
	}
	if opts.Locale.GroupLabel == "" {
		opts.Locale = shared.LookupLocale("en")
	}

	return &Engine{
		size:   opts.Size,
		rnd:    opts.Random,
		nextID: opts.IDs,
		locale: opts.Locale,
	}
}

// SetSize changes the group size used by the next [Engine.Generate]. Existing groups are kept.
func (e *Engine) SetSize(size int) error {
	if size < MinSize || size > MaxSize {
		return fmt.Errorf("%w: group size %d not in [%d, %d]", shared.ErrInvalidArgument, size, MinSize, MaxSize)
	}
	e.size = size
	return nil
}

// Size returns the configured group size.
func (e *Engine) Size() int { return e.size }

// Locale returns the labels used for names and exports.
func (e *Engine) Locale() shared.Locale { return e.locale }

// Generate replaces the current groups with a fresh random partition of list.
//
// An empty list leaves the current groups untouched.
func (e *Engine) Generate(list []models.Person) []models.Group {
	if len(list) == 0 {
		return e.Groups()
	}

	chunks := Partition(list, e.size, e.rnd)
	groups := make([]models.Group, len(chunks))
	for i, members := range chunks {
		groups[i] = models.Group{
			ID:      e.nextID(),
			Name:    e.locale.GroupName(i + 1),
			Members: slices.Clone(members),
		}
	}

	e.groups = groups
	return e.Groups()
}

// Groups returns a copy of the current groups.
func (e *Engine) Groups() []models.Group {
	return slices.Clone(e.groups)
}

// Clear discards the current groups.
func (e *Engine) Clear() { e.groups = nil }

// Export writes the current groups as CSV. Nothing is written when there are no groups.
func (e *Engine) Export(w io.Writer) error {
	if len(e.groups) == 0 {
		return nil
	}

	data, err := formatter.GroupsToCSV(e.groups, e.locale.Header)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}

// ExportFile writes the current groups to a dated CSV file in dir and returns its path.
//
// Returns an empty path when there are no groups.
func (e *Engine) ExportFile(dir string, now time.Time) (string, error) {
	if len(e.groups) == 0 {
		return "", nil
	}
	return WriteFile(e.groups, e.locale, dir, now)
}

// WriteFile writes groups to <prefix>_<date>.csv in dir using the locale's header and prefix.
//
// It only reads its arguments, so callers may hand it a snapshot from [Engine.Groups] and run it off the
// goroutine that owns the engine. No groups is reported as [shared.ErrNothingToExport].
func WriteFile(groups []models.Group, locale shared.Locale, dir string, now time.Time) (string, error) {
	if len(groups) == 0 {
		return "", shared.ErrNothingToExport
	}

	path := filepath.Join(dir, formatter.ExportFilename(locale.FilenamePrefix, now))
	if err := formatter.WriteGroupsExport(groups, locale.Header, path); err != nil {
		return "", err
	}
	return path, nil
}
