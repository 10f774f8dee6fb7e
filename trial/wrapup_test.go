// Package trial contains unit tests for the balanced pair sampler.
package trial

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimgen/lexicon"
)

// wrapupRows builds a base trial set with the given verb and noun counts
// (nouns are n1..nN, verbs v1..vV).
func wrapupRows(verbs, nouns int) []Trial {
	rows := make([]Trial, 0, verbs*nouns)
	for v := 1; v <= verbs; v++ {
		for n := 1; n <= nouns; n++ {
			rows = append(rows, Trial{
				ID:          "v_n",
				VerbID:      "v",
				Noun1:       nounName(n),
				Noun1Gender: lexicon.Feminine,
				Noun1Number: lexicon.Singular,
			})
		}
	}
	return rows
}

func nounName(n int) string {
	return string(rune('a'+n-1)) + "noun"
}

// TestAssignWrapups_Invariants checks the sampler's contract: the wrap-up
// noun always differs from noun1, usage counts split the trial count
// evenly across nouns, and the draws account for every trial.
func TestAssignWrapups_Invariants(t *testing.T) {
	t.Parallel()

	rows := wrapupRows(4, 6)
	out, err := AssignWrapups(rows, 42)
	require.NoError(t, err)
	require.Len(t, out, len(rows))

	usage := make(map[string]int)
	for i, r := range out {
		require.NotEmpty(t, r.WrapNoun, "row %d has no wrap-up noun", i)
		require.NotEqual(t, r.Noun1, r.WrapNoun, "row %d: wrap-up equals noun1", i)
		require.Equal(t, lexicon.Feminine, r.WrapGender, "row %d: gender not copied", i)
		usage[r.WrapNoun]++
	}

	// 24 trials over 6 nouns: the quota splits evenly, so every noun
	// serves exactly 4 times.
	require.Len(t, usage, 6, "every noun must serve in the wrap-up role")
	for noun, c := range usage {
		require.Equal(t, 4, c, "noun %q usage off the quota", noun)
	}
}

// usageSpread returns max−min wrap-up usage over the given noun pool.
func usageSpread(t *testing.T, out []Trial, nouns int) int {
	t.Helper()
	usage := make(map[string]int)
	for _, r := range out {
		usage[r.WrapNoun]++
	}
	min, max := len(out), 0
	for n := 1; n <= nouns; n++ {
		c := usage[nounName(n)]
		if c < min {
			min = c
		}
		if c > max {
			max = c
		}
	}
	return max - min
}

// TestAssignWrapups_BalancedUsage checks the balance guarantee across
// many seeds: after all trials, per-noun usage counts differ by at most
// one, including the small 2-verb/3-noun set where an unclamped sampler
// can leave a noun unused.
func TestAssignWrapups_BalancedUsage(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 200; seed++ {
		out, err := AssignWrapups(wrapupRows(2, 3), seed)
		require.NoError(t, err, "seed %d", seed)
		require.Zero(t, usageSpread(t, out, 3), "seed %d: 6 trials over 3 nouns must split 2/2/2", seed)
	}
}

// TestAssignWrapups_BalancedUsage_Remainder checks the ≤1 usage spread
// when the trial count does not divide evenly over the noun pool.
func TestAssignWrapups_BalancedUsage_Remainder(t *testing.T) {
	t.Parallel()

	// 7 trials over 3 nouns: quotas are 3/2/2 in some seed-dependent
	// placement; the spread must still be at most one.
	base := wrapupRows(2, 3)
	rows := append(base, Trial{
		ID:          "v_n",
		VerbID:      "v",
		Noun1:       nounName(1),
		Noun1Gender: lexicon.Feminine,
		Noun1Number: lexicon.Singular,
	})
	for seed := int64(1); seed <= 200; seed++ {
		out, err := AssignWrapups(rows, seed)
		require.NoError(t, err, "seed %d", seed)
		require.LessOrEqual(t, usageSpread(t, out, 3), 1, "seed %d", seed)
	}
}

// TestAssignWrapups_Deterministic checks exact reproducibility: same seed
// ⇒ identical assignment, different seed ⇒ (in general) different one.
func TestAssignWrapups_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := AssignWrapups(wrapupRows(3, 8), 7)
	require.NoError(t, err)
	b, err := AssignWrapups(wrapupRows(3, 8), 7)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the assignment")

	c, err := AssignWrapups(wrapupRows(3, 8), 8)
	require.NoError(t, err)
	diff := 0
	for i := range a {
		if a[i].WrapNoun != c[i].WrapNoun {
			diff++
		}
	}
	require.Positive(t, diff, "different seeds produced an identical assignment")
}

// TestAssignWrapups_InputUntouched checks that the input slice is not
// written through.
func TestAssignWrapups_InputUntouched(t *testing.T) {
	t.Parallel()

	rows := wrapupRows(2, 4)
	_, err := AssignWrapups(rows, 1)
	require.NoError(t, err)
	for i, r := range rows {
		require.Empty(t, r.WrapNoun, "input row %d was mutated", i)
	}
}

// TestAssignWrapups_PoolExhausted checks the configuration-error path:
// with a single distinct noun the eligible set is empty on the first row.
func TestAssignWrapups_PoolExhausted(t *testing.T) {
	t.Parallel()

	rows := wrapupRows(2, 1)
	_, err := AssignWrapups(rows, 1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNounPoolExhausted), "expected ErrNounPoolExhausted, got %v", err)
}

// TestDeriveSeed_Diffusion checks that nearby stream ids map to well
// separated seeds and that derivation is stable.
func TestDeriveSeed_Diffusion(t *testing.T) {
	t.Parallel()

	require.Equal(t, DeriveSeed(1, 1), DeriveSeed(1, 1))
	require.NotEqual(t, DeriveSeed(1, 1), DeriveSeed(1, 2))
	require.NotEqual(t, DeriveSeed(1, 1), DeriveSeed(2, 1))
}
