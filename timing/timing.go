// SPDX-License-Identifier: MIT
// Package: stimgen/timing
//
// timing.go — the word-duration model.
//
// Contract:
//   • Empty slots keep duration 0; populated slots follow the letter rule.
//   • The trigger latency is subtracted exactly once, from the slot at
//     the recorded target position.
//   • Target positions outside {3,4} abort with ErrTargetPosition.
//
// Determinism: pure function of the row sequence; no randomness.
//
// Complexity: O(rows · MaxWordSlots) time, O(rows) space.

package timing

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/katalvlaran/stimgen/trial"
)

// Duration-model constants (milliseconds / letters).
const (
	// BaseDurationMS is the display duration of a short word.
	BaseDurationMS = 250
	// ShortWordLetters is the letter count still covered by the base duration.
	ShortWordLetters = 3
	// PerLetterMS is the increment per letter beyond ShortWordLetters.
	PerLetterMS = 35
	// TriggerLatencyMS is the hardware code-emission lag absorbed into the
	// target word's display window.
	TriggerLatencyMS = 40
)

// Legal target positions: the critical word sits at slot 3 (DOM omitted)
// or slot 4 (DOM present), never anywhere else.
const (
	minTargetPos = 3
	maxTargetPos = 4
)

// ErrTargetPosition indicates a recorded target position outside the two
// legal slots. Configuration error; the pipeline aborts.
var ErrTargetPosition = errors.New("timing: target position outside legal slots")

// WordDuration returns the display duration of a single word in ms.
func WordDuration(word string) int {
	letters := letterCount(word)
	if letters <= ShortWordLetters {
		return BaseDurationMS
	}
	return BaseDurationMS + PerLetterMS*(letters-ShortWordLetters)
}

// Durations fills the duration slots of every row and applies the
// trigger-latency correction at the target position. Returns a fresh
// slice; rows is not written through.
func Durations(rows []trial.Trial) ([]trial.Trial, error) {
	out := make([]trial.Trial, len(rows))
	for i, r := range rows {
		for s, w := range r.Words {
			if w == "" {
				r.Durations[s] = 0
				continue
			}
			r.Durations[s] = WordDuration(w)
		}

		if r.TargetPos < minTargetPos || r.TargetPos > maxTargetPos {
			return nil, fmt.Errorf("Durations: row %d (id=%s): position %d: %w",
				i, r.ID, r.TargetPos, ErrTargetPosition)
		}
		r.Durations[r.TargetPos-1] -= TriggerLatencyMS

		out[i] = r
	}
	return out, nil
}

// letterCount counts unicode letters only, so punctuation and digits do
// not contribute to display time.
func letterCount(word string) int {
	n := 0
	for _, r := range word {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}
