// SPDX-License-Identifier: MIT
// Package: stimgen/lexicon
//
// errors.go — sentinel errors for the lexicon package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via %w wrapping; sentinels are never
//     formatted at definition site.

package lexicon

import "errors"

// ErrEmptyLexicon indicates that selection produced a table with no rows,
// or that a loader returned an empty table. The pipeline cannot proceed
// without lexical material, so this is a configuration error.
// Usage: if errors.Is(err, ErrEmptyLexicon) { /* fix session/language */ }.
var ErrEmptyLexicon = errors.New("lexicon: no items after selection")

// ErrMissingLexeme indicates a failed lexical lookup: no article for a
// gender+number pair, no connective or adverb for a format, or no DOM
// marker in the table. Sentence composition must fail loudly on this
// rather than emit a malformed sentence.
// Usage: if errors.Is(err, ErrMissingLexeme) { /* fix the item table */ }.
var ErrMissingLexeme = errors.New("lexicon: no matching lexical item")

// ErrBadRecord indicates a malformed row in the delimited input table
// (wrong field count, unknown category). Reported with the offending
// line number by LoadCSV.
var ErrBadRecord = errors.New("lexicon: malformed input record")
