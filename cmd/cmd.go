// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// inputFlags are shared by every command that builds a roster.
func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "text",
			Aliases: []string{"t"},
			Usage:   "Names separated by commas or new lines (repeatable)",
		},
		&cli.StringSliceFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "CSV file whose non-empty cells are names (repeatable)",
		},
		&cli.BoolFlag{
			Name:  "sample",
			Usage: "Append the sample roster",
		},
		&cli.BoolFlag{
			Name:  "dedupe",
			Usage: "Keep only the first occurrence of each name",
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print JSON output",
			Value: true,
		},
	}
}

func seedFlag() cli.Flag {
	return &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Seed for reproducible results",
	}
}

// rosterCommand prints the roster built from the input flags
func rosterCommand(r *Runner) *cli.Command {
	flags := append(inputFlags(), outputFlags()...)
	flags = append(flags, &cli.StringFlag{
		Name:  "format",
		Usage: "Output format: table or text (ignored with --json)",
		Value: "table",
	})
	return &cli.Command{
		Name:   "roster",
		Usage:  "Build a roster and show it with duplicate flags",
		Flags:  flags,
		Action: r.Roster,
	}
}

// drawCommand runs one or more lucky draws
func drawCommand(r *Runner) *cli.Command {
	flags := append(inputFlags(), outputFlags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"n"},
			Usage:   "Number of draws to run",
			Value:   1,
		},
		&cli.BoolFlag{
			Name:  "allow-duplicates",
			Usage: "Keep winners in the pool so they can win again",
		},
		&cli.BoolFlag{
			Name:  "animate",
			Usage: "Show the cycling names at the configured cadence",
		},
		seedFlag(),
	)

	return &cli.Command{
		Name:   "draw",
		Usage:  "Pick winners at random from the roster",
		Flags:  flags,
		Action: r.Draw,
	}
}

// groupCommand partitions the roster into random groups
func groupCommand(r *Runner) *cli.Command {
	flags := append(inputFlags(), outputFlags()...)
	flags = append(flags,
		&cli.IntFlag{
			Name:    "size",
			Aliases: []string{"s"},
			Usage:   "Members per group (2-20, default from config)",
		},
		&cli.StringFlag{
			Name:  "format",
			Usage: "Output format: table, text, markdown, csv or json",
			Value: "table",
		},
		&cli.BoolFlag{
			Name:  "export",
			Usage: "Write the groups to a dated CSV file",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Directory for --export (default from config)",
		},
		seedFlag(),
	)

	return &cli.Command{
		Name:   "group",
		Usage:  "Split the roster into random groups",
		Flags:  flags,
		Action: r.Group,
	}
}

// tuiCommand launches the interactive interface
func tuiCommand(r *Runner) *cli.Command {
	flags := append(inputFlags(), seedFlag())
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive terminal UI",
		Flags:  flags,
		Action: r.TUI,
	}
}

// setupCommand writes starter files
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Create starter configuration",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example config to the --config path",
				Action: r.SetupConfig,
			},
		},
	}
}
