// SPDX-License-Identifier: MIT
// Package: stimgen/permute
//
// errors.go — sentinel errors for the permute package.

package permute

import "errors"

// ErrSequenceMismatch indicates that the condition-sequence length does
// not evenly divide the trial count, so tiling the rotated sequence would
// leave an unbalanced remainder. Configuration error; the pipeline aborts.
// Usage: if errors.Is(err, ErrSequenceMismatch) { /* fix trial count */ }.
var ErrSequenceMismatch = errors.New("permute: condition sequence does not tile row count")
