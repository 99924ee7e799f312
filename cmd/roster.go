package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/hrtools/internal/formatter"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/roster"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/urfave/cli/v3"
)

// rosterReport is the JSON shape of the roster command.
type rosterReport struct {
	People     []models.Person `json:"people"`
	Duplicates []string        `json:"duplicates"`
}

// Roster prints the roster built from the input flags.
func (r *Runner) Roster(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	if format != "table" && format != "text" {
		return fmt.Errorf("%w: unknown --format %q", shared.ErrInvalidFlag, format)
	}

	sess := r.newSession(cmd, r.config, r.logger)
	if err := r.applyInput(cmd, sess); err != nil {
		return err
	}

	people := sess.Roster()
	dupes := roster.DuplicateNames(people)

	if cmd.Bool("json") {
		return r.writeJSON(rosterReport{People: people, Duplicates: dupes}, cmd.Bool("pretty"))
	}

	if len(people) == 0 {
		return r.writePlain("Roster is empty. Add names with --text, --file or --sample.\n")
	}

	switch format {
	case "text":
		if err := r.writeBytes(formatter.RosterToText(people, sess.Duplicates())); err != nil {
			return err
		}
	case "table":
		formatter.RosterTable(r.output, people, sess.Duplicates())
	}
	r.writePlain("%d people\n", len(people))
	if len(dupes) > 0 {
		r.logger.Warn("roster contains duplicate names", "names", strings.Join(dupes, ", "))
		return r.writePlain("⚠ Duplicate names: %s (use --dedupe to keep the first of each)\n", strings.Join(dupes, ", "))
	}
	return nil
}
