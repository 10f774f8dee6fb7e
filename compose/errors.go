// SPDX-License-Identifier: MIT
// Package: stimgen/compose
//
// errors.go — sentinel errors for the compose package. Lexical lookup
// misses propagate lexicon.ErrMissingLexeme; only slot capacity is owned
// here.

package compose

import "errors"

// ErrSlotOverflow indicates that a composed sentence needs more than
// trial.MaxWordSlots word positions. The fixed sentence grammar cannot
// produce this; hitting it means the lexicon carries multi-word surface
// forms the slot model cannot represent. Configuration error.
var ErrSlotOverflow = errors.New("compose: sentence exceeds word slots")
