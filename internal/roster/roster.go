package roster

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

// sniffLen is how much of an uploaded file is inspected to decide whether it is text.
const sniffLen = 3072

// SampleNames is the built-in demo roster.
var SampleNames = []string{
	"陳大文", "林小明", "張華強", "李美玲", "王小芬",
	"趙子龍", "孫悟空", "周杰倫", "蔡依林", "劉德華",
	"林志玲", "郭台銘", "馬雲", "張忠謀", "黃仁勳",
}

// Manager assigns identity to ingested names and produces new rosters.
type Manager struct {
	nextID func() string
	sample []string
}

// ManagerOpts contains configuration options for creating a [Manager].
type ManagerOpts struct {
	IDs    func() string // ID generator (default: [shared.GenerateID])
	Sample []string      // Sample names (default: [SampleNames])
}

// NewManager creates a new [Manager] with the provided options
func NewManager(opts ManagerOpts) *Manager {
	if opts.IDs == nil {
		opts.IDs = shared.GenerateID
	}
	if len(opts.Sample) == 0 {
		opts.Sample = SampleNames
	}
	return &Manager{nextID: opts.IDs, sample: opts.Sample}
}

// AddFromText appends the names found in text. Blank input returns list unchanged.
func (m *Manager) AddFromText(list []models.Person, text string) []models.Person {
	return m.append(list, ParseNames(text))
}

// AddFromCSV appends every non-empty cell read from r.
func (m *Manager) AddFromCSV(list []models.Person, r io.Reader) ([]models.Person, error) {
	names, err := ParseCSV(r)
	if err != nil {
		return list, err
	}
	return m.append(list, names), nil
}

// AddFromFile reads a CSV file from path and appends its cells.
//
// Files whose content is not text are rejected with [shared.ErrUnsupportedFile].
func (m *Manager) AddFromFile(list []models.Person, path string) ([]models.Person, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return list, fmt.Errorf("failed to read roster file: %w", err)
	}

	if err := checkText(data); err != nil {
		return list, fmt.Errorf("%s: %w", path, err)
	}

	return m.AddFromCSV(list, bytes.NewReader(data))
}

// LoadSample appends the configured sample names.
func (m *Manager) LoadSample(list []models.Person) []models.Person {
	return m.append(list, m.sample)
}

func (m *Manager) append(list []models.Person, names []string) []models.Person {
	if len(names) == 0 {
		return list
	}

	out := make([]models.Person, 0, len(list)+len(names))
	out = append(out, list...)
	for _, name := range names {
		out = append(out, models.Person{ID: m.nextID(), Name: name})
	}
	return out
}

func checkText(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	sniff := data
	if len(sniff) > sniffLen {
		sniff = sniff[:sniffLen]
	}

	detected := mimetype.Detect(sniff)
	for mt := detected; mt != nil; mt = mt.Parent() {
		if strings.HasPrefix(mt.String(), "text/") {
			return nil
		}
	}
	return fmt.Errorf("%w: %s", shared.ErrUnsupportedFile, detected.String())
}

// Remove drops the person with the given id. An unknown id returns list unchanged.
func Remove(list []models.Person, id string) []models.Person {
	i := slices.IndexFunc(list, func(p models.Person) bool { return p.ID == id })
	if i < 0 {
		return list
	}
	return slices.Concat(list[:i], list[i+1:])
}

// Clear returns an empty roster.
func Clear() []models.Person {
	return []models.Person{}
}

// Duplicates flags each entry whose exact name appears more than once.
func Duplicates(list []models.Person) []bool {
	counts := lo.CountValuesBy(list, func(p models.Person) string { return p.Name })
	return lo.Map(list, func(p models.Person, _ int) bool { return counts[p.Name] > 1 })
}

// DuplicateNames returns each repeated name once, in order of first appearance.
func DuplicateNames(list []models.Person) []string {
	counts := lo.CountValuesBy(list, func(p models.Person) string { return p.Name })
	names := lo.Uniq(models.Names(list))
	return lo.Filter(names, func(n string, _ int) bool { return counts[n] > 1 })
}

// HasDuplicates reports whether any name appears more than once.
func HasDuplicates(list []models.Person) bool {
	return len(lo.UniqBy(list, func(p models.Person) string { return p.Name })) != len(list)
}

// RemoveDuplicates keeps the first occurrence of each name in insertion order.
func RemoveDuplicates(list []models.Person) []models.Person {
	if !HasDuplicates(list) {
		return list
	}
	return lo.UniqBy(list, func(p models.Person) string { return p.Name })
}
