// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the options snapshot and private helpers.
//
// Purpose:
//   - Expose a read-only view of the resolved Options to matrix_test without
//     widening the production API.
//   - Expose the seed mixer and panic messages so tests avoid magic strings.

import "github.com/katalvlaran/numla/backend"

// OptionsSnapshot is a stable, read-only view of resolved Options.
type OptionsSnapshot struct {
	Kernel      backend.Kernel
	Diagnostics Diagnostics
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as the delegated operations do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)
	return OptionsSnapshot{Kernel: o.kernel, Diagnostics: o.diag}
}

// PanicNilKernel_TestOnly is the WithKernel(nil) panic message.
const PanicNilKernel_TestOnly = panicNilKernel

// Message constants checked by diagnostics tests.
const (
	MsgShapeMismatch_TestOnly  = msgShapeMismatch
	MsgProductDims_TestOnly    = msgProductDims
	MsgNotSquare_TestOnly      = msgNotSquare
	MsgNotSymmetric_TestOnly   = msgNotSymmetric
	MsgIndexRange_TestOnly     = msgIndexRange
	MsgInvalidShape_TestOnly   = msgInvalidShape
	MsgJoinSize_TestOnly       = msgJoinSize
	MsgBackendFailure_TestOnly = msgBackendFailure
)

// MixSeed_TestOnly forwards to the private SplitMix64 finalizer.
func MixSeed_TestOnly(parent int64, stream uint64) int64 { return mixSeed(parent, stream) }
