// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/numla/internal/logger"
	"github.com/katalvlaran/numla/internal/matfile"
	"github.com/katalvlaran/numla/matrix"
)

// envelope wraps every op result.
type envelope struct {
	RunID  string `json:"run_id" yaml:"run_id"`
	Op     string `json:"op" yaml:"op"`
	Kernel string `json:"kernel" yaml:"kernel"`
	Result any    `json:"result" yaml:"result"`
}

// operation is one named entry of the op command. b is nil for unary ops.
type operation struct {
	binary bool
	run    func(a, b *matrix.Dense, opts ...matrix.Option) (any, error)
}

var errMissingOperand = errors.New("op: missing operand")

var operations = map[string]operation{
	"add":        binaryDense(matrix.Add),
	"sub":        binaryDense(matrix.Sub),
	"multiply":   binaryDense(matrix.Multiply),
	"minimum":    binaryDense(matrix.Minimum),
	"maximum":    binaryDense(matrix.Maximum),
	"join-left":  binaryDense(matrix.JoinLeft),
	"join-right": binaryDense(matrix.JoinRight),
	"join-above": binaryDense(matrix.JoinAbove),
	"join-below": binaryDense(matrix.JoinBelow),
	"matmul": {binary: true, run: func(a, b *matrix.Dense, opts ...matrix.Option) (any, error) {
		return denseResult(matrix.MultiplyDense(a, b, opts...))
	}},

	"transpose":      unaryDense(matrix.Transpose),
	"swap-diagonals": unaryDense(matrix.SwapDiagonals),
	"trace": {run: func(a, _ *matrix.Dense, _ ...matrix.Option) (any, error) {
		return scalarResult(matrix.Trace(a))
	}},
	"flatten": {run: func(a, _ *matrix.Dense, _ ...matrix.Option) (any, error) {
		return vectorResult(matrix.Flatten(a))
	}},
	"diagonal": {run: func(a, _ *matrix.Dense, _ ...matrix.Option) (any, error) {
		return vectorResult(matrix.DiagonalVector(a))
	}},

	"invert":   delegated(matrix.Invert),
	"ref":      delegated(matrix.RowEchelon),
	"cholesky": delegated(matrix.Cholesky),
	"argmax": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return vectorResult(matrix.ArgMax(a, opts...))
	}},
	"argmin": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return vectorResult(matrix.ArgMin(a, opts...))
	}},
	"det": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return scalarResult(matrix.Determinant(a, opts...))
	}},

	"lu": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		f, err := matrix.LU(a, opts...)
		if err != nil {
			return nil, err
		}
		return luResult{L: matfile.FromDense(f.L), U: matfile.FromDense(f.U), P: matfile.FromDense(f.P)}, nil
	}},
	"svd": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		f, err := matrix.SVD(a, opts...)
		if err != nil {
			return nil, err
		}
		return svdResult{U: matfile.FromDense(f.U), S: matfile.FromVector(f.S), VT: matfile.FromDense(f.VT)}, nil
	}},
	"singular-values": {run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return vectorResult(matrix.SingularValues(a, opts...))
	}},
	"eigen":     eigenOp(matrix.Eigen),
	"eigen-sym": eigenOp(matrix.EigenSym),
	"pinv":      delegated(matrix.PseudoInverse),
	"lstsq": {binary: true, run: func(a, b *matrix.Dense, opts ...matrix.Option) (any, error) {
		return denseResult(matrix.LeastSquares(a, b, opts...))
	}},

	"norm-l1":        norm(matrix.NormL1),
	"norm-l2":        norm(matrix.NormL2),
	"norm-inf":       norm(matrix.NormInf),
	"norm-frobenius": norm(matrix.NormFrobenius),
	"norm-max":       norm(matrix.NormMax),
}

type luResult struct {
	L matfile.MatrixDocument `json:"l" yaml:"l"`
	U matfile.MatrixDocument `json:"u" yaml:"u"`
	P matfile.MatrixDocument `json:"p" yaml:"p"`
}

type svdResult struct {
	U  matfile.MatrixDocument `json:"u" yaml:"u"`
	S  matfile.VectorDocument `json:"s" yaml:"s"`
	VT matfile.MatrixDocument `json:"vt" yaml:"vt"`
}

// eigenResult stores eigenvectors as columns of vectors.
type eigenResult struct {
	Real    matfile.VectorDocument `json:"real" yaml:"real"`
	Imag    matfile.VectorDocument `json:"imag" yaml:"imag"`
	Vectors matfile.MatrixDocument `json:"vectors" yaml:"vectors"`
}

func eigenOp(f func(a *matrix.Dense, opts ...matrix.Option) (*matrix.EigenFactors, error)) operation {
	return operation{run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		e, err := f(a, opts...)
		if err != nil {
			return nil, err
		}
		return eigenResult{
			Real:    matfile.FromVector(e.Real),
			Imag:    matfile.FromVector(e.Imag),
			Vectors: matfile.FromDense(e.Vectors),
		}, nil
	}}
}

func norm(f func(a *matrix.Dense, opts ...matrix.Option) (float64, error)) operation {
	return operation{run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return scalarResult(f(a, opts...))
	}}
}

func binaryDense(f func(a, b *matrix.Dense) (*matrix.Dense, error)) operation {
	return operation{binary: true, run: func(a, b *matrix.Dense, _ ...matrix.Option) (any, error) {
		return denseResult(f(a, b))
	}}
}

func unaryDense(f func(a *matrix.Dense) (*matrix.Dense, error)) operation {
	return operation{run: func(a, _ *matrix.Dense, _ ...matrix.Option) (any, error) {
		return denseResult(f(a))
	}}
}

func delegated(f func(a *matrix.Dense, opts ...matrix.Option) (*matrix.Dense, error)) operation {
	return operation{run: func(a, _ *matrix.Dense, opts ...matrix.Option) (any, error) {
		return denseResult(f(a, opts...))
	}}
}

func denseResult(m *matrix.Dense, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return matfile.FromDense(m), nil
}

func vectorResult(v *matrix.Vector, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return matfile.FromVector(v), nil
}

func scalarResult(x float64, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return x, nil
}

func operationNames() []string {
	return slices.Sorted(maps.Keys(operations))
}

func opCmd(g *globals) *cli.Command {
	var pathA, pathB string

	return &cli.Command{
		Name:      "op",
		Usage:     "Run one matrix operation",
		ArgsUsage: "<" + strings.Join(operationNames(), "|") + ">",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "a",
				Usage:       "first operand document (.json, .yaml; - for stdin)",
				Required:    true,
				Destination: &pathA,
			},
			&cli.StringFlag{
				Name:        "b",
				Usage:       "second operand document for binary operations",
				Destination: &pathB,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			ctx, s, err := g.open(ctx, cmd)
			if err != nil {
				return err
			}
			name := cmd.Args().First()
			env, err := runOperation(ctx, s, name, pathA, pathB)
			if err != nil {
				logger.FromContext(ctx).Error("operation failed", "op", name, "error", err)
				return err
			}
			return matfile.Encode(s.out, s.format, env)
		},
	}
}

// runOperation loads the operands, runs the named op on the session's kernel
// and returns the result envelope. It logs through the logger carried by ctx.
func runOperation(ctx context.Context, s *session, name, pathA, pathB string) (*envelope, error) {
	op, ok := operations[name]
	if !ok {
		return nil, fmt.Errorf("op: unknown operation %q (expected one of %s)", name, strings.Join(operationNames(), ", "))
	}
	if op.binary && pathB == "" {
		return nil, fmt.Errorf("%w: %s needs --b", errMissingOperand, name)
	}

	a, err := matfile.ReadMatrix(pathA)
	if err != nil {
		return nil, err
	}
	var b *matrix.Dense
	if op.binary {
		if b, err = matfile.ReadMatrix(pathB); err != nil {
			return nil, err
		}
	}

	logger.FromContext(ctx).Debug("running", "op", name, "a_rows", a.Rows(), "a_cols", a.Cols())
	res, err := op.run(a, b, matrix.WithKernel(s.kernel))
	if err != nil {
		return nil, err
	}

	return &envelope{RunID: s.runID, Op: name, Kernel: s.kernel.Name(), Result: res}, nil
}
