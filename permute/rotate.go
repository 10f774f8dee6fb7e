// SPDX-License-Identifier: MIT
// Package: stimgen/permute
//
// rotate.go — the condition permuter.
//
// Contract:
//   • len(rows) must be a multiple of trial.NumConditions, else
//     ErrSequenceMismatch (fail fast, no partial output).
//   • List k (1..3) assigns base[(i+k−1) mod 3] to row i, preserving the
//     base row order inside every list.
//   • The three lists are concatenated list1 ‖ list2 ‖ list3.
//   • Correct response: grammatical ⇒ Meta.ResponseGrammatical, any
//     violation ⇒ Meta.ResponseViolation.
//
// Determinism: no randomness; pure function of (rows, meta).
//
// Complexity: O(NumLists · rows) time and space.

package permute

import (
	"fmt"

	"github.com/katalvlaran/stimgen/trial"
)

// Meta carries the run-constant descriptive metadata stamped on every row
// during list rotation.
type Meta struct {
	// MaterialsVersion identifies the stimulus-material revision.
	MaterialsVersion string
	// Language is the language tag of the run.
	Language string
	// Session is the session tag of the run.
	Session string
	// PropertyName names the grammatical property under study (e.g. "DOM").
	PropertyName string
	// PropertyCode is the numeric code of that property.
	PropertyCode int
	// ResponseGrammatical is the correct judgment for grammatical trials.
	ResponseGrammatical string
	// ResponseViolation is the correct judgment for violation trials.
	ResponseViolation string
}

// ConditionCode maps a condition to its fixed numeric code (1-based, in
// base-sequence order).
func ConditionCode(c trial.Condition) int {
	return int(c) + 1
}

// Rotate triples the base trial set into the three counterbalanced lists.
func Rotate(rows []trial.Trial, meta Meta) ([]trial.Trial, error) {
	if len(rows)%trial.NumConditions != 0 {
		return nil, fmt.Errorf("Rotate: %d rows, sequence length %d: %w",
			len(rows), trial.NumConditions, ErrSequenceMismatch)
	}

	base := trial.BaseConditionSequence()
	out := make([]trial.Trial, 0, trial.NumLists*len(rows))
	for k := 1; k <= trial.NumLists; k++ {
		for i, r := range rows {
			cond := base[(i+k-1)%trial.NumConditions]

			r.List = trial.ListName(k)
			r.Condition = cond
			r.ConditionCode = ConditionCode(cond)
			r.MaterialsVersion = meta.MaterialsVersion
			r.Language = meta.Language
			r.Session = meta.Session
			r.PropertyName = meta.PropertyName
			r.PropertyCode = meta.PropertyCode
			if cond == trial.Grammatical {
				r.CorrectResponse = meta.ResponseGrammatical
			} else {
				r.CorrectResponse = meta.ResponseViolation
			}

			out = append(out, r)
		}
	}
	return out, nil
}
