// SPDX-License-Identifier: MIT
// Package: stimgen/trial
//
// combine.go — the combination generator.
//
// Contract:
//   • One output row per (transitive verb, non-empty noun) pair.
//   • Rows with an incomplete verb or noun side never enter the output
//     (the lexicon filters drop empty surface forms).
//   • Composite key "<verbID>_<noun1ID>" is stable across runs.
//   • Persons are tiled round-robin over trials in row order; the
//     balance validator checks the resulting person frequencies.
//   • No randomness anywhere in this stage.
//
// Determinism:
//   • Output order is verbs-major in lexicon row order, nouns-minor in
//     lexicon row order. Every later stage depends on this order.
//
// Complexity: O(V·N) time and space.

package trial

import (
	"fmt"

	"github.com/katalvlaran/stimgen/lexicon"
)

// compositeKeySep joins verb and noun IDs into the trial ID.
const compositeKeySep = "_"

// Combine cross-joins the lexicon's transitive verbs with its nouns into
// base trials and assigns persons round-robin.
func Combine(lex lexicon.Lexicon) ([]Trial, error) {
	verbs := lex.TransitiveVerbs()
	nouns := lex.Nouns()
	persons := lex.Persons()

	if len(verbs) == 0 || len(nouns) == 0 || len(persons) == 0 {
		return nil, fmt.Errorf("Combine: verbs=%d nouns=%d persons=%d: %w",
			len(verbs), len(nouns), len(persons), ErrNoCombinations)
	}

	rows := make([]Trial, 0, len(verbs)*len(nouns))
	for _, v := range verbs {
		for _, n := range nouns {
			rows = append(rows, Trial{
				ID:          v.ID + compositeKeySep + n.ID,
				VerbID:      v.ID,
				Verb:        v.Surface,
				Noun1ID:     n.ID,
				Noun1:       n.Surface,
				Noun1Gender: n.Gender,
				Noun1Number: n.Number,
			})
		}
	}

	// Tile persons over trials in row order (deterministic, balanced
	// whenever the person count divides the trial count).
	for i := range rows {
		rows[i].Person = persons[i%len(persons)].Surface
	}

	return rows, nil
}
