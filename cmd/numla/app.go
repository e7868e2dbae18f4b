// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/numla/backend"
	"github.com/katalvlaran/numla/internal/config"
	"github.com/katalvlaran/numla/internal/logger"
	"github.com/katalvlaran/numla/internal/matfile"
	"github.com/katalvlaran/numla/matrix"
)

// globals holds the destinations of the root flags.
type globals struct {
	configPath string
	logLevel   string
	logFormat  string
	output     string
	backend    string
}

// session is the resolved per-invocation environment shared by all commands.
// Its logger travels in the context returned by open.
type session struct {
	runID  string
	cfg    *config.Config
	kernel backend.Kernel
	format matfile.Format
	out    io.Writer
}

func newApp() *cli.Command {
	g := &globals{}

	return &cli.Command{
		Name:  "numla",
		Usage: "Dense matrix toolkit backed by BLAS/LAPACK kernels",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "path to config.yaml (default: user config dir)",
				Destination: &g.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Value:       config.DefaultLogLevel,
				Destination: &g.logLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "log format (text, json)",
				Value:       config.DefaultLogFormat,
				Destination: &g.logFormat,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "output document format (json, yaml)",
				Value:       config.DefaultOutput,
				Destination: &g.output,
			},
			&cli.StringFlag{
				Name:        "backend",
				Usage:       "kernel backend (" + backend.Available() + ")",
				Value:       backend.Auto,
				Destination: &g.backend,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		Commands: []*cli.Command{
			infoCmd(g),
			genCmd(g),
			opCmd(g),
		},
	}
}

// open loads the config file, applies explicitly set flags on top of it and
// installs the logger as the matrix diagnostics sink. The returned context
// carries the session logger; commands log through logger.FromContext.
func (g *globals) open(ctx context.Context, cmd *cli.Command) (context.Context, *session, error) {
	path := g.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return ctx, nil, err
	}
	if cmd.IsSet("log-level") {
		cfg.LogLevel = g.logLevel
	}
	if cmd.IsSet("log-format") {
		cfg.LogFormat = g.logFormat
	}
	if cmd.IsSet("output") {
		cfg.Output = g.output
	}
	if cmd.IsSet("backend") {
		cfg.Backend = g.backend
	}
	if err := cfg.Validate(); err != nil {
		return ctx, nil, fmt.Errorf("flags: %w", err)
	}

	root := cmd.Root()
	errOut := root.ErrWriter
	if errOut == nil {
		errOut = os.Stderr
	}
	out := root.Writer
	if out == nil {
		out = os.Stdout
	}

	log, err := logger.ForFormat(cfg.LogFormat, errOut, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return ctx, nil, err
	}
	runID := uuid.NewString()
	log = log.With("run_id", runID, "cmd", cmd.Name)

	kernel, err := backend.Lookup(cfg.Backend)
	if err != nil {
		return ctx, nil, err
	}
	format, err := matfile.ParseFormat(cfg.Output)
	if err != nil {
		return ctx, nil, err
	}

	matrix.SetDiagnostics(log.WithGroup("matrix"))
	log.Debug("session opened", "config", path, "backend", kernel.Name(), "output", format)

	s := &session{
		runID:  runID,
		cfg:    cfg,
		kernel: kernel,
		format: format,
		out:    out,
	}

	return logger.WithContext(ctx, log), s, nil
}
