package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/hrtools/internal/session"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config *shared.Config
	logger *log.Logger
	output io.Writer
	random shared.Random
	ids    func() string
	now    func() time.Time
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config *shared.Config
	Logger *log.Logger
	Output io.Writer
	Random shared.Random    // Fixed randomness, overrides --seed (tests)
	IDs    func() string    // ID generator (default: [shared.GenerateID])
	Now    func() time.Time // Clock for export filenames (default: [time.Now])
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.IDs == nil {
		opts.IDs = shared.GenerateID
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Runner{
		config: opts.Config,
		logger: opts.Logger,
		output: opts.Output,
		random: opts.Random,
		ids:    opts.IDs,
		now:    opts.Now,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, rosterCommand, drawCommand, groupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// SetLogger swaps the logger used by subsequent actions.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// loadConfig reads the --config file when it exists. A missing file keeps the defaults.
func (r *Runner) loadConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return ctx, fmt.Errorf("failed to stat config: %w", err)
		}
		r.logger.Debug("config file not found, using defaults", "path", path)
	} else {
		config, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		r.config = config
		r.logger.Debug("config loaded", "path", path)
	}

	shared.SetLogLevel(r.logger, shared.ParseLevel(r.config.Log.Level))
	return ctx, nil
}

// newSession builds a session from the loaded config, honoring --seed when the command defines it.
func (r *Runner) newSession(cmd *cli.Command, cfg *shared.Config, logger *log.Logger) *session.Session {
	rnd := r.random
	if rnd == nil {
		if cmd.IsSet("seed") {
			rnd = shared.NewSeededRandom(cmd.Uint64("seed"))
		} else {
			rnd = shared.NewRandom()
		}
	}

	return session.New(session.Opts{
		Config: cfg,
		Logger: logger,
		Random: rnd,
		IDs:    r.ids,
	})
}

// applyInput feeds the shared input flags into sess in order: text, files, sample, dedupe.
//
// Binary files are skipped with a warning. Any other read failure aborts the command.
func (r *Runner) applyInput(cmd *cli.Command, sess *session.Session) error {
	for _, text := range cmd.StringSlice("text") {
		n := sess.AddText(text)
		r.logger.Debug("added names from text", "count", n)
	}

	for _, path := range cmd.StringSlice("file") {
		n, err := sess.AddFile(path)
		switch {
		case errors.Is(err, shared.ErrUnsupportedFile):
			r.logger.Warn("skipping file that is not text", "path", path)
		case err != nil:
			return err
		default:
			r.logger.Info("imported roster file", "path", path, "count", n)
		}
	}

	if cmd.Bool("sample") {
		sess.LoadSample()
	}

	if cmd.Bool("dedupe") {
		if n := sess.RemoveDuplicates(); n > 0 {
			r.logger.Info("removed duplicate names", "count", n)
		}
	}

	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writeBytes(data []byte) error {
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
