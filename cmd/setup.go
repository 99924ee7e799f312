package main

import (
	"context"
	"errors"
	"os"

	"github.com/desertthunder/hrtools/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the embedded example configuration. An existing file is left untouched.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			r.logger.Warn("config file already exists, leaving it as is", "path", path)
			return nil
		}
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Wrote %s\n", path)
}
