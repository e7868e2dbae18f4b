// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/numla/internal/logger"
	"github.com/katalvlaran/numla/internal/matfile"
	"github.com/katalvlaran/numla/matrix"
)

// Matrix kinds accepted by gen.
const (
	kindZeros    = "zeros"
	kindOnes     = "ones"
	kindFull     = "full"
	kindIdentity = "identity"
	kindUniform  = "uniform"
	kindPoisson  = "poisson"
	kindGaussian = "gaussian"
)

func genCmd(g *globals) *cli.Command {
	var (
		kind     string
		rows     int
		cols     int
		value    float64
		lambda   float64
		seed     int64
		timeSeed bool
	)

	return &cli.Command{
		Name:  "gen",
		Usage: "Generate a matrix document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "kind",
				Aliases:     []string{"k"},
				Usage:       "zeros, ones, full, identity, uniform, poisson, gaussian",
				Value:       kindZeros,
				Destination: &kind,
			},
			&cli.IntFlag{Name: "rows", Aliases: []string{"r"}, Usage: "row count", Required: true, Destination: &rows},
			&cli.IntFlag{Name: "cols", Aliases: []string{"c"}, Usage: "column count", Required: true, Destination: &cols},
			&cli.Float64Flag{Name: "value", Usage: "fill value for kind=full", Destination: &value},
			&cli.Float64Flag{Name: "lambda", Usage: "mean for kind=poisson", Value: 1, Destination: &lambda},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "RNG seed for random kinds (default from config)",
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "time-seed",
				Usage:       "seed random kinds from the wall clock (not reproducible)",
				Destination: &timeSeed,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, s, err := g.open(ctx, cmd)
			if err != nil {
				return err
			}
			log := logger.FromContext(ctx)
			if !cmd.IsSet("seed") {
				seed = s.cfg.Seed
			}
			src := matrix.NewSource(seed)
			if timeSeed {
				src = matrix.NewTimeSeededSource()
			}

			m, err := generate(kind, rows, cols, value, lambda, src)
			if err != nil {
				log.Error("generate failed", "kind", kind, "rows", rows, "cols", cols, "error", err)
				return err
			}
			log.Debug("generated", "kind", kind, "rows", rows, "cols", cols, "seed", seed, "time_seed", timeSeed)

			return matfile.EncodeMatrix(s.out, s.format, m)
		},
	}
}

// generate builds one matrix of the named kind.
func generate(kind string, rows, cols int, value, lambda float64, src *rand.Rand) (*matrix.Dense, error) {
	switch kind {
	case kindZeros:
		return matrix.NewZeros(rows, cols)
	case kindOnes:
		return matrix.NewOnes(rows, cols)
	case kindFull:
		return matrix.NewFull(rows, cols, value)
	case kindIdentity:
		return matrix.NewIdentity(rows, cols)
	case kindUniform:
		return matrix.NewUniform(rows, cols, src)
	case kindPoisson:
		return matrix.NewPoisson(rows, cols, lambda, src)
	case kindGaussian:
		return matrix.NewGaussian(rows, cols, src)
	default:
		return nil, fmt.Errorf("gen: unknown kind %q", kind)
	}
}
