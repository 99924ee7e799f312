package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/hrtools/internal/formatter"
	"github.com/desertthunder/hrtools/internal/grouping"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/urfave/cli/v3"
)

// Group partitions the roster and prints or exports the groups.
func (r *Runner) Group(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")
	switch format {
	case "table", "text", "markdown", "csv", "json":
	default:
		return fmt.Errorf("%w: unknown --format %q", shared.ErrInvalidFlag, format)
	}

	sess := r.newSession(cmd, r.config, r.logger)
	if cmd.IsSet("size") {
		if err := sess.Grouping().SetSize(cmd.Int("size")); err != nil {
			return err
		}
	}
	if err := r.applyInput(cmd, sess); err != nil {
		return err
	}

	if len(sess.Roster()) == 0 {
		r.logger.Warn("roster is empty, nothing to group")
		return r.writePlain("Roster is empty. Add names with --text, --file or --sample.\n")
	}

	g := sess.Grouping()
	people := len(sess.Roster())
	r.logger.Info("grouping roster", "people", people, "size", g.Size(), "expected", grouping.Count(people, g.Size()))
	groups := sess.GenerateGroups()

	if cmd.Bool("export") {
		dir := cmd.String("output-dir")
		if dir == "" {
			dir = r.config.Grouping.OutputDir
		}
		path, err := g.ExportFile(dir, r.now())
		if err != nil {
			return err
		}
		r.logger.Info("groups exported", "path", path)
	}

	switch format {
	case "json":
		return r.writeJSON(groups, cmd.Bool("pretty"))
	case "csv":
		return g.Export(r.output)
	case "markdown":
		data, err := formatter.GroupsToMarkdown(groups)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	case "text":
		data, err := formatter.GroupsToText(groups)
		if err != nil {
			return err
		}
		return r.writeBytes(data)
	default:
		formatter.GroupsTable(r.output, groups, g.Locale().Header)
		return r.writePlain("%d people in %d groups of up to %d\n", people, len(groups), g.Size())
	}
}
