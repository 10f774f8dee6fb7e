// SPDX-License-Identifier: MIT
// Package: stimgen/trial
//
// wrapup.go — the balanced pair sampler.
//
// Contract:
//   • Every trial receives a wrap-up noun distinct from its own Noun1.
//   • Per-noun quotas split the trial count evenly over the distinct
//     nouns (base = rows/nouns, the remainder spread one each), so final
//     usage counts across nouns never differ by more than one.
//   • Row i draws from an RNG seeded with seed+i (RowRNG), so each draw
//     is a pure function of (seed, row index).
//   • A noun whose remaining quota equals the number of still-unprocessed
//     rows able to serve it becomes a forced pick: the draw bucket
//     narrows to such nouns, so no draw can strand a later row.
//   • An empty draw bucket aborts with ErrNounPoolExhausted: the noun
//     pool cannot cover the trial sequence, a configuration error.
//
// Determinism:
//   • The candidate pool is ordered by first occurrence in the trial
//     sequence; no map iteration reaches the draw.
//   • The quota remainder is placed on a DeriveSeed substream of the base
//     seed, disjoint from the per-row seed+i family.
//   • Quotas and slack are read-and-updated strictly in row order. Do not
//     parallelize this loop.
//
// Complexity: O(rows · distinct nouns) time, O(rows) space.

package trial

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/stimgen/lexicon"
)

// quotaStream is the stream id of the remainder placement; any fixed
// non-zero id keeps it disjoint from the per-row seed+i family.
const quotaStream uint64 = 0x71756f74 // "quot"

// wrapupAccumulator threads the per-noun quota state through the ordered
// fold over trials.
type wrapupAccumulator struct {
	names     []string         // distinct Noun1 values, first-occurrence order
	genders   []lexicon.Gender // gender per name, parallel to names
	numbers   []lexicon.Number // number per name, parallel to names
	index     map[string]int   // name -> position in names
	remaining []int            // wrap-up quota left per name
	notOwn    []int            // unprocessed rows whose Noun1 differs, per name
}

// newWrapupAccumulator collects the distinct noun pool from the trial
// sequence in first-occurrence order and splits the trial count into
// per-noun quotas: rows/nouns each, the remainder spread one apiece over
// a seeded permutation of the pool.
func newWrapupAccumulator(rows []Trial, seed int64) *wrapupAccumulator {
	acc := &wrapupAccumulator{index: make(map[string]int)}
	for _, r := range rows {
		if _, seen := acc.index[r.Noun1]; seen {
			continue
		}
		acc.index[r.Noun1] = len(acc.names)
		acc.names = append(acc.names, r.Noun1)
		acc.genders = append(acc.genders, r.Noun1Gender)
		acc.numbers = append(acc.numbers, r.Noun1Number)
	}

	n := len(acc.names)
	if n == 0 {
		return acc
	}
	acc.remaining = make([]int, n)
	for j := range acc.remaining {
		acc.remaining[j] = len(rows) / n
	}
	if rem := len(rows) % n; rem > 0 {
		order := rand.New(rand.NewSource(DeriveSeed(seed, quotaStream))).Perm(n)
		for _, j := range order[:rem] {
			acc.remaining[j]++
		}
	}

	acc.notOwn = make([]int, n)
	for j := range acc.notOwn {
		acc.notOwn[j] = len(rows)
	}
	for _, r := range rows {
		acc.notOwn[acc.index[r.Noun1]]--
	}
	return acc
}

// eligible returns the draw bucket for a trial whose primary noun is
// noun1: every distinct noun except noun1 itself with quota left. When
// any such noun has no slack (its remaining quota already equals the
// rows still able to serve it), the bucket narrows to those forced picks.
func (acc *wrapupAccumulator) eligible(noun1 string, buf []int) []int {
	buf = buf[:0]
	forced := false
	for j, name := range acc.names {
		if name == noun1 || acc.remaining[j] == 0 {
			continue
		}
		urgent := acc.remaining[j] >= acc.notOwn[j]
		if urgent && !forced {
			forced = true
			buf = buf[:0]
		}
		if forced && !urgent {
			continue
		}
		buf = append(buf, j)
	}
	return buf
}

// advance retires row i from the slack counters: every noun other than
// the row's own Noun1 loses one serviceable row.
func (acc *wrapupAccumulator) advance(noun1 string) {
	own := acc.index[noun1]
	for j := range acc.notOwn {
		if j != own {
			acc.notOwn[j]--
		}
	}
}

// AssignWrapups draws a wrap-up noun for every trial under the per-noun
// quotas, seeded per row. Returns a fresh slice; rows is not written
// through.
func AssignWrapups(rows []Trial, seed int64) ([]Trial, error) {
	acc := newWrapupAccumulator(rows, seed)

	out := make([]Trial, len(rows))
	buf := make([]int, 0, len(acc.names))
	for i, r := range rows {
		buf = acc.eligible(r.Noun1, buf)
		if len(buf) == 0 {
			return nil, fmt.Errorf("AssignWrapups: row %d (noun1=%q): %w", i, r.Noun1, ErrNounPoolExhausted)
		}

		// One uniform draw per row from its own seeded stream.
		pick := buf[RowRNG(seed, i).Intn(len(buf))]
		acc.remaining[pick]--
		acc.advance(r.Noun1)

		r.WrapNoun = acc.names[pick]
		r.WrapGender = acc.genders[pick]
		r.WrapNumber = acc.numbers[pick]
		out[i] = r
	}
	return out, nil
}
