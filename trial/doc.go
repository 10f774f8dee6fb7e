// Package trial defines the evolving stimulus-table row and the first two
// generative stages of the pipeline.
//
// The package offers the following key components:
//
//   - Trial:          one table row — a verb × noun combination plus every
//     column later stages fill in (list, condition, sentence, word slots,
//     durations, trigger codes).
//   - Condition:      the closed three-way grammaticality contrast
//     (grammatical / DOM-violation / article-location-violation).
//   - Format:         the two wrap-up clause formats (additive /
//     adversative).
//   - Combine:        the combination generator — cross-joins transitive
//     verbs with nouns into base trials with composite IDs and
//     round-robin person assignment. No randomness.
//   - AssignWrapups:  the balanced pair sampler — draws a wrap-up noun
//     per trial under per-noun usage quotas that split the trial count
//     evenly, seeded per row as base seed + row index.
//   - DeriveSeed:     SplitMix64 seed mixing for independent random
//     streams (used by the wrap-up-format assignment in package permute).
//
// Guarantees:
//
//   - Determinism: every draw in AssignWrapups is a pure function of
//     (seed, row index); re-running with the same inputs reproduces the
//     table byte for byte.
//   - Invariant: Trial.WrapNoun != Trial.Noun1 for every row, and
//     wrap-up usage counts across nouns differ by at most one.
//   - Stages return fresh slices; input rows are never written through.
package trial
