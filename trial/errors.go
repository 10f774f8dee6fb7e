// SPDX-License-Identifier: MIT
// Package: stimgen/trial
//
// errors.go — sentinel errors for the trial package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context via %w wrapping.
//   • Both sentinels classify as configuration errors: the pipeline
//     aborts rather than produce a partially-composed table.

package trial

import "errors"

// ErrNoCombinations indicates that the cross-join produced zero trials:
// the selected lexicon has no transitive verbs, no nouns, or no persons.
// Usage: if errors.Is(err, ErrNoCombinations) { /* fix item table */ }.
var ErrNoCombinations = errors.New("trial: no verb–noun combinations")

// ErrNounPoolExhausted indicates that the eligible wrap-up-noun set
// emptied during sampling: the noun pool is too small relative to the
// trial count. The draw is undefined, so sampling aborts rather than
// silently degrading the balance guarantee.
// Usage: if errors.Is(err, ErrNounPoolExhausted) { /* grow noun pool */ }.
var ErrNounPoolExhausted = errors.New("trial: eligible wrap-up noun set is empty")
