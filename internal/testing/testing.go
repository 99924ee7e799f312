// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"strconv"
	"testing"

	"github.com/desertthunder/hrtools/internal/models"
)

// ScriptedRandom is a test double for [shared.Random].
//
// IntN returns the scripted values in order (modulo n) and repeats the last one when exhausted.
// Shuffle reverses the slice, which is deterministic and easy to assert against.
type ScriptedRandom struct {
	Values []int
	calls  int
}

func NewScriptedRandom(values ...int) *ScriptedRandom {
	return &ScriptedRandom{Values: values}
}

func (s *ScriptedRandom) IntN(n int) int {
	if n <= 0 {
		panic("invalid argument to IntN")
	}
	if len(s.Values) == 0 {
		return 0
	}
	i := s.calls
	if i >= len(s.Values) {
		i = len(s.Values) - 1
	}
	s.calls++
	return s.Values[i] % n
}

func (s *ScriptedRandom) Shuffle(n int, swap func(i, j int)) {
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		swap(i, j)
	}
}

// Calls reports how many times IntN was invoked.
func (s *ScriptedRandom) Calls() int { return s.calls }

// People builds a roster with sequential IDs p-1, p-2, ... for the given names.
func People(names ...string) []models.Person {
	people := make([]models.Person, len(names))
	for i, n := range names {
		people[i] = models.Person{ID: "p-" + strconv.Itoa(i+1), Name: n}
	}
	return people
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// FReader simulates a failure when reading
type FReader struct{}

func (f *FReader) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path string, content []byte) {
	t.Helper()
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
