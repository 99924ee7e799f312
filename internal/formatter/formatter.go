// package formatter renders rosters, draw history and groups to CSV, Markdown, plain text and tables
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/desertthunder/hrtools/internal/models"
	"github.com/olekukonko/tablewriter"
)

// BOM is the UTF-8 byte-order mark written ahead of CSV exports so spreadsheets detect the encoding.
const BOM = "\uFEFF"

// GroupsToCSV converts groups to CSV with one row per (group name, member name), preceded by a BOM and the header row.
func GroupsToCSV(groups []models.Group, header []string) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(BOM)
	writer := csv.NewWriter(&buf)

	if len(header) > 0 {
		if err := writer.Write(header); err != nil {
			return nil, fmt.Errorf("failed to write CSV headers: %w", err)
		}
	}

	for _, group := range groups {
		for _, member := range group.Members {
			if err := writer.Write([]string{group.Name, member.Name}); err != nil {
				return nil, fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// GroupsToMarkdown converts groups to Markdown with one section per group
func GroupsToMarkdown(groups []models.Group) ([]byte, error) {
	var buf bytes.Buffer

	for i, group := range groups {
		if i > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(fmt.Sprintf("## %s (%d)\n\n", group.Name, len(group.Members)))
		for _, member := range group.Members {
			buf.WriteString(fmt.Sprintf("- %s\n", member.Name))
		}
	}

	return buf.Bytes(), nil
}

// GroupsToText converts groups to plain text format
func GroupsToText(groups []models.Group) ([]byte, error) {
	var buf bytes.Buffer

	for _, group := range groups {
		buf.WriteString(fmt.Sprintf("%s (%d)\n", group.Name, len(group.Members)))
		for j, member := range group.Members {
			buf.WriteString(fmt.Sprintf("  %d. %s\n", j+1, member.Name))
		}
	}

	return buf.Bytes(), nil
}

// RosterToText lists the roster one person per line, marking duplicated names with an asterisk.
//
// dupes may be nil or must match list in length.
func RosterToText(list []models.Person, dupes []bool) []byte {
	var buf bytes.Buffer

	for i, p := range list {
		mark := ""
		if i < len(dupes) && dupes[i] {
			mark = " *"
		}
		buf.WriteString(fmt.Sprintf("%d. %s%s\n", i+1, p.Name, mark))
	}

	return buf.Bytes()
}

// HistoryToText lists past winners, most recent first.
func HistoryToText(history []models.Person) []byte {
	var buf bytes.Buffer

	for i, p := range history {
		buf.WriteString(fmt.Sprintf("%d. %s\n", i+1, p.Name))
	}

	return buf.Bytes()
}

// ExportFilename builds the dated filename for a group export, e.g. groups_2026-10-17.csv
func ExportFilename(prefix string, now time.Time) string {
	if prefix == "" {
		prefix = "groups"
	}
	return fmt.Sprintf("%s_%s.csv", prefix, now.Format(time.DateOnly))
}

// WriteGroupsExport writes the CSV export of groups to path, creating the parent directory.
func WriteGroupsExport(groups []models.Group, header []string, path string) error {
	data, err := GroupsToCSV(groups, header)
	if err != nil {
		return fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}

	return nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// GroupsTable renders groups as a two-column table, merging repeated group labels.
func GroupsTable(w io.Writer, groups []models.Group, header []string) {
	table := newTable(w, header)
	table.SetAutoMergeCells(true)
	table.SetRowLine(true)
	for _, group := range groups {
		for _, member := range group.Members {
			table.Append([]string{group.Name, member.Name})
		}
	}
	table.Render()
}

// RosterTable renders the roster with its IDs and a duplicate marker column.
func RosterTable(w io.Writer, list []models.Person, dupes []bool) {
	table := newTable(w, []string{"#", "Name", "ID", "Duplicate"})
	for i, p := range list {
		dup := ""
		if i < len(dupes) && dupes[i] {
			dup = "yes"
		}
		table.Append([]string{strconv.Itoa(i + 1), p.Name, p.ID, dup})
	}
	table.Render()
}
