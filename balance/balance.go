// SPDX-License-Identifier: MIT
// Package: stimgen/balance
//
// balance.go — the column-balance sanity check.
//
// Contract:
//   • Per checked column, compute the frequency of every distinct value
//     over the final table; a non-singleton frequency set yields one
//     Warning naming the column and its counts.
//   • Warnings are non-fatal by design: this is a sanity check on the
//     materials, not a guarantee of full experimental balance.
//   • Blank values are skipped — shared rows with empty cells must not
//     trip the check.
//
// Determinism: Warning.Counts is sorted by value so reports are stable.

// Package balance verifies that key stimulus-table columns have uniform
// per-value frequency and reports violations as non-fatal warnings.
package balance

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/stimgen/trial"
)

// Column extracts one checked column from a row.
type Column struct {
	// Name labels the column in warnings.
	Name string
	// Value reads the column's cell from a row.
	Value func(trial.Trial) string
}

// ValueCount is one (value, frequency) pair of an unbalanced column.
type ValueCount struct {
	Value string
	Count int
}

// Warning reports one column whose values are not uniformly frequent.
type Warning struct {
	Column string
	Counts []ValueCount
}

// String renders the warning for logs.
func (w Warning) String() string {
	return fmt.Sprintf("balance: column %q has non-uniform value frequencies: %v", w.Column, w.Counts)
}

// DefaultColumns are the columns checked by the pipeline: noun gender,
// number, person, verb, primary noun and wrap-up noun.
func DefaultColumns() []Column {
	return []Column{
		{Name: "noun1_gender", Value: func(t trial.Trial) string { return string(t.Noun1Gender) }},
		{Name: "number", Value: func(t trial.Trial) string { return string(t.Noun1Number) }},
		{Name: "person", Value: func(t trial.Trial) string { return t.Person }},
		{Name: "verb", Value: func(t trial.Trial) string { return t.Verb }},
		{Name: "noun1", Value: func(t trial.Trial) string { return t.Noun1 }},
		{Name: "wrapup_noun", Value: func(t trial.Trial) string { return t.WrapNoun }},
	}
}

// Check computes per-value frequencies for every column and returns one
// warning per column whose frequency set is not a singleton.
func Check(rows []trial.Trial, columns []Column) []Warning {
	var warnings []Warning
	for _, col := range columns {
		freq := make(map[string]int)
		for _, r := range rows {
			v := col.Value(r)
			if v == "" {
				continue
			}
			freq[v]++
		}
		if uniform(freq) {
			continue
		}

		counts := make([]ValueCount, 0, len(freq))
		for v, c := range freq {
			counts = append(counts, ValueCount{Value: v, Count: c})
		}
		sort.Slice(counts, func(i, j int) bool { return counts[i].Value < counts[j].Value })
		warnings = append(warnings, Warning{Column: col.Name, Counts: counts})
	}
	return warnings
}

// uniform reports whether all frequencies are equal (or the map is empty).
func uniform(freq map[string]int) bool {
	first := -1
	for _, c := range freq {
		if first == -1 {
			first = c
			continue
		}
		if c != first {
			return false
		}
	}
	return true
}
