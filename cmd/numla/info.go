// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/numla/backend"
	"github.com/katalvlaran/numla/internal/logger"
	"github.com/katalvlaran/numla/internal/matfile"
)

type infoReport struct {
	RunID     string          `json:"run_id" yaml:"run_id"`
	Kernel    string          `json:"kernel" yaml:"kernel"`
	Available []string        `json:"available" yaml:"available"`
	Seed      int64           `json:"seed" yaml:"seed"`
	CPU       backend.CPUInfo `json:"cpu" yaml:"cpu"`
}

func infoCmd(g *globals) *cli.Command {
	return &cli.Command{
		Name:  "info",
		Usage: "Print the active kernel and host CPU features",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, s, err := g.open(ctx, cmd)
			if err != nil {
				return err
			}
			rep := infoReport{
				RunID:     s.runID,
				Kernel:    s.kernel.Name(),
				Available: strings.Split(backend.Available(), ","),
				Seed:      s.cfg.Seed,
				CPU:       backend.DetectCPU(),
			}
			logger.FromContext(ctx).Debug("cpu detected", "arch", rep.CPU.Arch, "kernel", rep.Kernel)

			return matfile.Encode(s.out, s.format, rep)
		},
	}
}
