// Package permute_test validates counterbalanced list rotation and the
// balanced wrap-up-format assignment.
package permute_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimgen/permute"
	"github.com/katalvlaran/stimgen/trial"
)

// baseRows builds a 6-trial base set (2 verbs × 3 nouns) the way the
// combination generator orders it.
func baseRows() []trial.Trial {
	var rows []trial.Trial
	for _, v := range []string{"v1", "v2"} {
		for _, n := range []string{"n1", "n2", "n3"} {
			rows = append(rows, trial.Trial{ID: v + "_" + n, VerbID: v, Noun1ID: n, Noun1: n})
		}
	}
	return rows
}

func testMeta() permute.Meta {
	return permute.Meta{
		MaterialsVersion:    "v1",
		Language:            "es",
		Session:             "session1",
		PropertyName:        "DOM",
		PropertyCode:        1,
		ResponseGrammatical: "yes",
		ResponseViolation:   "no",
	}
}

// TestRotate_Counterbalancing checks the central invariant: every pair
// appears once per list, and across the three lists meets all three
// conditions with no duplicates.
func TestRotate_Counterbalancing(t *testing.T) {
	t.Parallel()

	rows, err := permute.Rotate(baseRows(), testMeta())
	require.NoError(t, err)
	require.Len(t, rows, 18, "6 trials × 3 lists")

	// Pairs per list, conditions per pair.
	perList := make(map[string]map[string]int)        // list -> pair -> count
	perPair := make(map[string]map[trial.Condition]int) // pair -> condition -> count
	for _, r := range rows {
		if perList[r.List] == nil {
			perList[r.List] = make(map[string]int)
		}
		perList[r.List][r.ID]++
		if perPair[r.ID] == nil {
			perPair[r.ID] = make(map[trial.Condition]int)
		}
		perPair[r.ID][r.Condition]++
	}

	require.Len(t, perList, trial.NumLists)
	for list, pairs := range perList {
		require.Len(t, pairs, 6, "list %s must hold every pair exactly once", list)
		for pair, c := range pairs {
			require.Equal(t, 1, c, "list %s repeats pair %s", list, pair)
		}
	}
	for pair, conds := range perPair {
		require.Len(t, conds, trial.NumConditions, "pair %s misses a condition", pair)
		for cond, c := range conds {
			require.Equal(t, 1, c, "pair %s repeats condition %s", pair, cond)
		}
	}
}

// TestRotate_Metadata checks response mapping and the stamped constants.
func TestRotate_Metadata(t *testing.T) {
	t.Parallel()

	rows, err := permute.Rotate(baseRows(), testMeta())
	require.NoError(t, err)

	for _, r := range rows {
		if r.Condition == trial.Grammatical {
			require.Equal(t, "yes", r.CorrectResponse)
		} else {
			require.Equal(t, "no", r.CorrectResponse)
		}
		require.Equal(t, permute.ConditionCode(r.Condition), r.ConditionCode)
		require.Equal(t, "v1", r.MaterialsVersion)
		require.Equal(t, "es", r.Language)
		require.Equal(t, "session1", r.Session)
		require.Equal(t, "DOM", r.PropertyName)
		require.Equal(t, 1, r.PropertyCode)
	}

	// List 1, row 0 carries the first base condition; list 2 rotates by one.
	require.Equal(t, trial.Grammatical, rows[0].Condition)
	require.Equal(t, trial.DOMViolation, rows[6].Condition)
	require.Equal(t, trial.ArticleViolation, rows[12].Condition)
}

// TestRotate_SequenceMismatch checks the tiling configuration error.
func TestRotate_SequenceMismatch(t *testing.T) {
	t.Parallel()

	_, err := permute.Rotate(baseRows()[:4], testMeta())
	require.Error(t, err)
	require.True(t, errors.Is(err, permute.ErrSequenceMismatch), "got %v", err)
}

// TestAssignFormats_BalancePerGroup checks that each list×verb group
// splits the two formats as evenly as its size allows.
func TestAssignFormats_BalancePerGroup(t *testing.T) {
	t.Parallel()

	rows, err := permute.Rotate(baseRows(), testMeta())
	require.NoError(t, err)
	rows = permute.AssignFormats(rows, 99)

	type key struct{ list, verb string }
	counts := make(map[key]map[trial.Format]int)
	for _, r := range rows {
		k := key{list: r.List, verb: r.VerbID}
		if counts[k] == nil {
			counts[k] = make(map[trial.Format]int)
		}
		counts[k][r.Format]++
	}

	// Each group has 3 rows; a round-robin over 2 formats yields a 2/1 split.
	require.Len(t, counts, 6, "3 lists × 2 verbs")
	for k, c := range counts {
		diff := c[trial.Additive] - c[trial.Adversative]
		if diff < 0 {
			diff = -diff
		}
		require.LessOrEqual(t, diff, 1, "group %+v unbalanced: %v", k, c)
	}
}

// TestAssignFormats_Deterministic checks the format stream reproduces
// exactly and is controlled by its own seed.
func TestAssignFormats_Deterministic(t *testing.T) {
	t.Parallel()

	rows, err := permute.Rotate(baseRows(), testMeta())
	require.NoError(t, err)

	a := permute.AssignFormats(rows, 5)
	b := permute.AssignFormats(rows, 5)
	require.Equal(t, a, b, "same format seed must reproduce")
}
