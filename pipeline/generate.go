// SPDX-License-Identifier: MIT
// Package: stimgen/pipeline
//
// generate.go — the stage sequence.
//
// Contract:
//   • Stages run strictly in order; the first error aborts the run so no
//     partially-composed table escapes to downstream consumers.
//   • Balance warnings are results, not errors: they ride along in
//     Result.Warnings.
//
// Determinism: Generate is a pure function of (items, opts).

package pipeline

import (
	"fmt"

	"github.com/katalvlaran/stimgen/balance"
	"github.com/katalvlaran/stimgen/compose"
	"github.com/katalvlaran/stimgen/lexicon"
	"github.com/katalvlaran/stimgen/permute"
	"github.com/katalvlaran/stimgen/timing"
	"github.com/katalvlaran/stimgen/trial"
	"github.com/katalvlaran/stimgen/trigger"
)

// Result is one finished generation run.
type Result struct {
	// Rows is the final table: one row per (trial, list), list-major in
	// list order, base trial order inside every list.
	Rows []trial.Trial
	// Warnings are the non-fatal balance-check findings.
	Warnings []balance.Warning
}

// Generate runs the full pipeline over the lexical-item table.
func Generate(items lexicon.Lexicon, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}
	opts = opts.resolve()

	// 1. Item selection: the session/language subset.
	lex, err := lexicon.Select(items, opts.Session, opts.Language)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 2. Combination generation: transitive verbs × nouns.
	rows, err := trial.Combine(lex)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 3. Balanced wrap-up noun sampling, seeded per row.
	rows, err = trial.AssignWrapups(rows, opts.Seed)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 4. Counterbalanced list rotation + run metadata.
	rows, err = permute.Rotate(rows, permute.Meta{
		MaterialsVersion:    opts.MaterialsVersion,
		Language:            opts.Language,
		Session:             opts.Session,
		PropertyName:        opts.PropertyName,
		PropertyCode:        opts.PropertyCode,
		ResponseGrammatical: opts.ResponseGrammatical,
		ResponseViolation:   opts.ResponseViolation,
	})
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 5. Wrap-up format assignment on its independent stream.
	rows = permute.AssignFormats(rows, opts.FormatSeed)

	// 6. Sentence composition per (article rule, condition).
	rows, err = compose.Sentences(rows, lex, opts.ArticleRule)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 7. Trigger codes, per list.
	rows, err = trigger.Assign(rows)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 8. Word durations with the trigger-latency correction.
	rows, err = timing.Durations(rows)
	if err != nil {
		return Result{}, fmt.Errorf("Generate: %w", err)
	}

	// 9. Balance sanity check (non-fatal).
	warnings := balance.Check(rows, balance.DefaultColumns())

	return Result{Rows: rows, Warnings: warnings}, nil
}
