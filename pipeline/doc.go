// Package pipeline wires the whole stimulus-generation run: item
// selection, combination, wrap-up sampling, list rotation, format
// assignment, sentence composition, trigger codes, durations and the
// balance check — one synchronous pass of whole-table transformations.
//
// Usage:
//
//	opts := pipeline.DefaultOptions()
//	opts.Seed = 7
//	opts.Session = "session1"
//	opts.Language = "es"
//	res, err := pipeline.Generate(items, opts)
//
// Every stage consumes the previous stage's output slice; any stage error
// aborts the run before a partially-composed table can escape. All
// randomness derives from Options.Seed (wrap-up nouns, per row) and the
// independent format stream (wrap-up formats, per list×verb group), so a
// run is a pure function of (items, Options).
package pipeline
