// Package stimgen builds counterbalanced, fully-specified linguistic
// stimulus sets for a grammaticality-judgment EEG experiment on
// differential object marking (DOM).
//
// 🚀 What is stimgen?
//
//	A deterministic batch generator that brings together:
//		• Combination generation: every transitive verb × noun trial
//		• Balanced wrap-up sampling: frequency-capped second nouns,
//		  seeded per row for exact reproducibility
//		• Counterbalancing: three lists, each verb–noun pair under a
//		  different grammaticality condition per list
//		• Sentence composition: condition × article-placement rules,
//		  target-word localization
//		• Trigger codes: dense per-list event codes for EEG alignment
//		• Word timing: letter-based durations with trigger-latency
//		  correction
//		• Balance validation: uniform-frequency sanity checks
//
// ✨ Why does determinism matter here?
//
//   - Stimulus tables must be reviewable and re-generable bit for bit
//   - Every random draw is a pure function of (seed, row index) or
//     (format seed, group index); no clocks, no hidden globals
//   - The whole pipeline is synchronous whole-table transformation
//
// Everything is organized under focused subpackages:
//
//	lexicon/  — lexical-item table, selection, deterministic lookups
//	trial/    — table row, combination generator, wrap-up sampler
//	permute/  — list rotation, condition metadata, format assignment
//	compose/  — sentence composition and target-word localization
//	trigger/  — per-list event-code assignment
//	timing/   — word-duration model and latency correction
//	balance/  — column-balance sanity checks
//	pipeline/ — the orchestrated run (Options + Generate)
//	export/   — per-list CSV serialization
//	cmd/      — the stimgen command-line front end
package stimgen
