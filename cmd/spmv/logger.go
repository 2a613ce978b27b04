// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvsparse/cmd/spmv/config"
)

// newLogger builds the driver logger from cfg, writing to w. Every record
// carries the run id so lines from one invocation can be grouped.
func newLogger(w io.Writer, cfg config.LogConfig, runID uuid.UUID) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if cfg.Format == config.FormatJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("run_id", runID.String()), nil
}
