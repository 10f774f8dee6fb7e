// Package permute produces the three counterbalanced presentation lists
// and assigns the wrap-up clause format.
//
// The package offers the following key components:
//
//   - Rotate:        the condition permuter — triples the base trial set
//     into list1..list3, tiling a cyclic rotation of the base condition
//     sequence [grammatical, DOM-violation, article-location-violation]
//     over the rows of each list, and stamping correct response plus the
//     fixed descriptive metadata (property name/code, session tag,
//     materials version, language).
//   - AssignFormats: balanced round-robin wrap-up-format assignment per
//     list×verb group, on a random stream independent from the wrap-up
//     noun sampler.
//   - Meta:          the run-constant metadata Rotate stamps on rows.
//
// Counterbalancing invariant: within a list every (verb, noun) pair
// appears exactly once, and across the three lists every pair meets each
// of the three conditions exactly once. Rotate guarantees this because
// list k assigns base[(i+k−1) mod 3] to row i, so the three lists cover
// all three residues for every row index.
package permute
