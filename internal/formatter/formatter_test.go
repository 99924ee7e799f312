package formatter

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/hrtools/internal/models"
	th "github.com/desertthunder/hrtools/internal/testing"
	"github.com/google/go-cmp/cmp"
)

func sampleGroups() []models.Group {
	people := th.People("Ann", "Bo", "Cy", "Di", "Ed")
	return []models.Group{
		{ID: "g-1", Name: "Group 1", Members: people[:2]},
		{ID: "g-2", Name: "Group 2", Members: people[2:4]},
		{ID: "g-3", Name: "Group 3", Members: people[4:]},
	}
}

func TestExporters(t *testing.T) {
	t.Run("GroupsToCSV", func(t *testing.T) {
		data, err := GroupsToCSV(sampleGroups(), []string{"Group", "Name"})
		if err != nil {
			t.Fatalf("GroupsToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.HasPrefix(output, BOM) {
			t.Fatalf("CSV missing byte-order mark, got: %q", output[:min(len(output), 8)])
		}

		want := "Group,Name\nGroup 1,Ann\nGroup 1,Bo\nGroup 2,Cy\nGroup 2,Di\nGroup 3,Ed\n"
		if diff := cmp.Diff(want, strings.TrimPrefix(output, BOM)); diff != "" {
			t.Errorf("CSV mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("GroupsToCSV quotes commas", func(t *testing.T) {
		groups := []models.Group{{Name: "Group 1", Members: th.People("Lee, Ann")}}
		data, err := GroupsToCSV(groups, nil)
		if err != nil {
			t.Fatalf("GroupsToCSV failed: %v", err)
		}
		if !strings.Contains(string(data), `"Lee, Ann"`) {
			t.Errorf("expected quoted name, got: %s", data)
		}
	})

	t.Run("GroupsToCSV with localized header", func(t *testing.T) {
		data, err := GroupsToCSV(sampleGroups()[:1], []string{"組別", "姓名"})
		if err != nil {
			t.Fatalf("GroupsToCSV failed: %v", err)
		}
		if !strings.Contains(string(data), "組別,姓名\n") {
			t.Errorf("CSV missing localized header, got: %s", data)
		}
	})

	t.Run("GroupsToMarkdown", func(t *testing.T) {
		data, err := GroupsToMarkdown(sampleGroups())
		if err != nil {
			t.Fatalf("GroupsToMarkdown failed: %v", err)
		}

		output := string(data)
		for _, want := range []string{"## Group 1 (2)", "## Group 3 (1)", "- Ann", "- Ed"} {
			if !strings.Contains(output, want) {
				t.Errorf("Markdown missing %q", want)
			}
		}
	})

	t.Run("GroupsToText", func(t *testing.T) {
		data, err := GroupsToText(sampleGroups())
		if err != nil {
			t.Fatalf("GroupsToText failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "Group 2 (2)\n  1. Cy\n  2. Di\n") {
			t.Errorf("Text missing group 2 block, got:\n%s", output)
		}
	})

	t.Run("RosterToText marks duplicates", func(t *testing.T) {
		list := th.People("Ann", "Bo", "Ann")
		got := string(RosterToText(list, []bool{true, false, true}))
		want := "1. Ann *\n2. Bo\n3. Ann *\n"
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("roster mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("RosterToText without flags", func(t *testing.T) {
		got := string(RosterToText(th.People("Ann"), nil))
		if got != "1. Ann\n" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("HistoryToText", func(t *testing.T) {
		got := string(HistoryToText(th.People("Cy", "Ann")))
		if got != "1. Cy\n2. Ann\n" {
			t.Errorf("got %q", got)
		}
	})
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 3, 7, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name   string
		prefix string
		want   string
	}{
		{"english", "groups", "groups_2026-03-07.csv"},
		{"traditional chinese", "分組結果", "分組結果_2026-03-07.csv"},
		{"empty prefix", "", "groups_2026-03-07.csv"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExportFilename(tt.prefix, now); got != tt.want {
				t.Errorf("ExportFilename(%q) = %q, want %q", tt.prefix, got, tt.want)
			}
		})
	}
}

func TestWriters(t *testing.T) {
	t.Run("WriteGroupsExport", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "groups.csv")
		if err := WriteGroupsExport(sampleGroups(), []string{"Group", "Name"}, path); err != nil {
			t.Fatalf("WriteGroupsExport failed: %v", err)
		}

		th.AssertFileExists(t, path)
		content := th.MustReadFile(t, path)
		if !strings.HasPrefix(content, BOM+"Group,Name\n") {
			t.Errorf("export missing BOM and header, got: %q", content)
		}
		if !strings.Contains(content, "Group 3,Ed") {
			t.Errorf("export missing last member")
		}
	})

	t.Run("GroupsTable", func(t *testing.T) {
		var buf bytes.Buffer
		GroupsTable(&buf, sampleGroups(), []string{"Group", "Name"})

		output := buf.String()
		for _, want := range []string{"Group", "Name", "Group 1", "Ann", "Bo", "Group 3", "Ed"} {
			if !strings.Contains(output, want) {
				t.Errorf("table missing %q:\n%s", want, output)
			}
		}
		if strings.Count(output, "Group 1") != 1 {
			t.Errorf("expected merged group label, got:\n%s", output)
		}
	})

	t.Run("RosterTable", func(t *testing.T) {
		var buf bytes.Buffer
		RosterTable(&buf, th.People("Ann", "Ann"), []bool{true, true})

		output := buf.String()
		for _, want := range []string{"Duplicate", "p-1", "p-2", "yes"} {
			if !strings.Contains(output, want) {
				t.Errorf("table missing %q:\n%s", want, output)
			}
		}
	})
}
