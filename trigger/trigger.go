// SPDX-License-Identifier: MIT
// Package: stimgen/trigger
//
// trigger.go — per-list dense event-code assignment.
//
// Contract:
//   • Codes are dense: within a list, target codes form 40..40+k−1 and
//     sentence codes 110..110+m−1 with no gaps, where k and m are the
//     distinct target-word and sentence counts of that list.
//   • First-occurrence order in the row sequence decides enumeration.
//   • Range overflow aborts with ErrCodeRange (configuration error).
//
// Determinism: pure function of the row sequence; the per-list state maps
// are keyed lookups only, never iterated.
//
// Complexity: O(rows) time, O(distinct values) space.

package trigger

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/stimgen/trial"
)

// Allowed code ranges of the presentation hardware.
const (
	// TargetCodeStart is the first target-word code of every list.
	TargetCodeStart = 40
	// TargetCodeMax is the last code in the target-word range.
	TargetCodeMax = 99
	// SentenceCodeStart is the first sentence code of every list.
	SentenceCodeStart = 110
	// SentenceCodeMax is the last code in the sentence range.
	SentenceCodeMax = 253
)

// ErrCodeRange indicates that a list needs more distinct codes than the
// allowed range holds. Configuration error; the pipeline aborts.
// Usage: if errors.Is(err, ErrCodeRange) { /* shrink the list */ }.
var ErrCodeRange = errors.New("trigger: code range exceeded")

// listCodes holds one list's enumeration state.
type listCodes struct {
	target   map[string]int
	sentence map[string]int
}

// Assign sets TargetCode and SentenceCode on every row. Returns a fresh
// slice; rows is not written through.
func Assign(rows []trial.Trial) ([]trial.Trial, error) {
	perList := make(map[string]*listCodes)

	out := make([]trial.Trial, len(rows))
	for i, r := range rows {
		lc, ok := perList[r.List]
		if !ok {
			lc = &listCodes{target: make(map[string]int), sentence: make(map[string]int)}
			perList[r.List] = lc
		}

		code, ok := lc.target[r.TargetWord]
		if !ok {
			code = TargetCodeStart + len(lc.target)
			if code > TargetCodeMax {
				return nil, fmt.Errorf("Assign: list %s: target code %d > %d: %w",
					r.List, code, TargetCodeMax, ErrCodeRange)
			}
			lc.target[r.TargetWord] = code
		}
		r.TargetCode = code

		scode, ok := lc.sentence[r.Sentence]
		if !ok {
			scode = SentenceCodeStart + len(lc.sentence)
			if scode > SentenceCodeMax {
				return nil, fmt.Errorf("Assign: list %s: sentence code %d > %d: %w",
					r.List, scode, SentenceCodeMax, ErrCodeRange)
			}
			lc.sentence[r.Sentence] = scode
		}
		r.SentenceCode = scode

		out[i] = r
	}
	return out, nil
}
