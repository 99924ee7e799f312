package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/desertthunder/hrtools/internal/draw"
	"github.com/desertthunder/hrtools/internal/formatter"
	"github.com/desertthunder/hrtools/internal/models"
	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/urfave/cli/v3"
)

// drawReport is the JSON shape of the draw command.
type drawReport struct {
	Winners   []models.Person `json:"winners"`
	History   []models.Person `json:"history"`
	Remaining int             `json:"remaining"`
}

// Draw runs up to --count draws and prints the winners.
func (r *Runner) Draw(ctx context.Context, cmd *cli.Command) error {
	count := cmd.Int("count")
	animate := cmd.Bool("animate")
	if count < 1 {
		return fmt.Errorf("%w: --count must be at least 1, got %d", shared.ErrInvalidFlag, count)
	}

	cfg := *r.config
	if cmd.IsSet("allow-duplicates") {
		cfg.Draw.AllowDuplicates = cmd.Bool("allow-duplicates")
	}
	if !animate {
		cfg.Draw.IntervalMS = 0
	}

	sess := r.newSession(cmd, &cfg, r.logger)
	if err := r.applyInput(cmd, sess); err != nil {
		return err
	}

	engine := sess.Draw()
	if len(engine.Pool()) == 0 {
		r.logger.Warn("roster is empty, nothing to draw")
		return r.writePlain("Roster is empty. Add names with --text, --file or --sample.\n")
	}

	winners := make([]models.Person, 0, count)
	for i := range count {
		winner, err := r.runDraw(ctx, engine, animate)
		if err != nil {
			return fmt.Errorf("draw %d interrupted: %w", i+1, err)
		}
		if winner == nil {
			r.logger.Info("pool exhausted, skipping remaining draws", "completed", i, "requested", count)
			break
		}
		winners = append(winners, *winner)
		r.logger.Debug("winner drawn", "draw", i+1, "name", winner.Name)
	}

	if cmd.Bool("json") {
		return r.writeJSON(drawReport{
			Winners:   winners,
			History:   engine.History(),
			Remaining: len(engine.Pool()),
		}, cmd.Bool("pretty"))
	}

	for i, w := range winners {
		r.writePlain("🎉 Winner #%d: %s\n", i+1, w.Name)
	}
	r.writePlainln("History (most recent first):")
	if err := r.writeBytes(formatter.HistoryToText(engine.History())); err != nil {
		return err
	}
	return r.writePlain("%d left in the pool\n", len(engine.Pool()))
}

// runDraw performs one draw, printing the cycling names when animate is set.
func (r *Runner) runDraw(ctx context.Context, engine *draw.Engine, animate bool) (*models.Person, error) {
	if !animate {
		return engine.Run(ctx, nil)
	}

	progress := make(chan draw.ProgressUpdate, 8)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for update := range progress {
			if update.Done {
				r.writePlain("\r\033[K")
				continue
			}
			r.writePlain("\r\033[K» %s  (%d/%d)", update.Current.Name, update.Step, update.Total)
		}
	}()

	winner, err := engine.Run(ctx, progress)
	close(progress)
	wg.Wait()
	return winner, err
}
