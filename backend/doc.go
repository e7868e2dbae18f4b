// SPDX-License-Identifier: MIT

// Package backend defines the boundary between the numla value layer and an
// external linear-algebra library (BLAS/LAPACK equivalent).
//
// What & Why:
//
//	The matrix package never implements numerical kernels itself. It marshals
//	its row-major buffers into the calling convention described by Kernel:
//	a layout flag, dimensions, a leading dimension per operand and, for
//	factorizations, a caller-allocated pivot buffer. Kernels report through a
//	signed status code in the LAPACKE convention:
//
//	   0   success
//	  -i   the i-th argument had an illegal value
//	  +i   numerical failure (exact zero pivot U(i,i), leading minor i not
//	       positive definite, ...)
//
//	Any library that honours these signatures can be plugged in; the default
//	is a pure-Go kernel built on gonum's blas64 and lapack/gonum packages.
//
// Concurrency:
//
//	The gonum kernel is stateless and safe for concurrent use on distinct
//	buffers.
package backend
