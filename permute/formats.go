// SPDX-License-Identifier: MIT
// Package: stimgen/permute
//
// formats.go — balanced round-robin wrap-up-format assignment.
//
// Contract:
//   • Rows are grouped by (list, verb); groups are ordered by first
//     occurrence in the table, rows inside a group keep table order.
//   • Each group tiles [additive, adversative] over its rows, starting
//     at a seeded offset, so the two formats split every group as evenly
//     as its size allows.
//   • The stream is derived per group via trial.DeriveSeed(formatSeed,
//     groupIndex) and is therefore independent of the wrap-up noun
//     sampler's seed+row streams; the two choices must not correlate.
//
// Complexity: O(rows) time, O(groups) space.

package permute

import (
	"math/rand"

	"github.com/katalvlaran/stimgen/trial"
)

// formatGroupKey identifies one list×verb group.
type formatGroupKey struct {
	list   string
	verbID string
}

// AssignFormats assigns the wrap-up clause format to every row, balanced
// per list×verb group. Returns a fresh slice; rows is not written through.
func AssignFormats(rows []trial.Trial, formatSeed int64) []trial.Trial {
	// First pass: enumerate groups in first-occurrence order and record
	// each row's position within its group.
	groupIdx := make(map[formatGroupKey]int)
	offsets := make([]int, 0)
	position := make([]int, len(rows))
	group := make([]int, len(rows))
	counts := make([]int, 0)

	for i, r := range rows {
		key := formatGroupKey{list: r.List, verbID: r.VerbID}
		g, seen := groupIdx[key]
		if !seen {
			g = len(offsets)
			groupIdx[key] = g
			// One draw per group from its own derived stream: the
			// starting point of the round-robin.
			rng := rand.New(rand.NewSource(trial.DeriveSeed(formatSeed, uint64(g))))
			offsets = append(offsets, rng.Intn(trial.NumFormats))
			counts = append(counts, 0)
		}
		group[i] = g
		position[i] = counts[g]
		counts[g]++
	}

	// Second pass: tile the format sequence per group.
	out := make([]trial.Trial, len(rows))
	for i, r := range rows {
		r.Format = trial.Format((position[i] + offsets[group[i]]) % trial.NumFormats)
		out[i] = r
	}
	return out
}
