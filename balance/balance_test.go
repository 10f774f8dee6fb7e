// Package balance contains unit tests for the column-balance check.
package balance

import (
	"testing"

	"github.com/katalvlaran/stimgen/trial"
)

// TestCheck_Uniform verifies that balanced columns produce no warnings.
func TestCheck_Uniform(t *testing.T) {
	t.Parallel()

	rows := []trial.Trial{
		{Verb: "vio", Person: "Juan"},
		{Verb: "vio", Person: "María"},
		{Verb: "saludó", Person: "Juan"},
		{Verb: "saludó", Person: "María"},
	}
	cols := []Column{
		{Name: "verb", Value: func(r trial.Trial) string { return r.Verb }},
		{Name: "person", Value: func(r trial.Trial) string { return r.Person }},
	}
	if warnings := Check(rows, cols); len(warnings) != 0 {
		t.Errorf("balanced table produced warnings: %v", warnings)
	}
}

// TestCheck_NonUniform verifies that a skewed column is reported, with
// counts sorted by value for stable output.
func TestCheck_NonUniform(t *testing.T) {
	t.Parallel()

	rows := []trial.Trial{
		{Verb: "vio"}, {Verb: "vio"}, {Verb: "vio"},
		{Verb: "saludó"},
	}
	cols := []Column{{Name: "verb", Value: func(r trial.Trial) string { return r.Verb }}}

	warnings := Check(rows, cols)
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	w := warnings[0]
	if w.Column != "verb" {
		t.Errorf("expected column \"verb\", got %q", w.Column)
	}
	if len(w.Counts) != 2 || w.Counts[0].Value != "saludó" || w.Counts[0].Count != 1 {
		t.Errorf("unexpected counts: %v", w.Counts)
	}
}

// TestCheck_BlanksSkipped verifies that blank cells never trip the check.
func TestCheck_BlanksSkipped(t *testing.T) {
	t.Parallel()

	rows := []trial.Trial{
		{WrapNoun: "mujer"},
		{WrapNoun: "hombre"},
		{WrapNoun: ""}, // shared row with an empty cell
	}
	cols := []Column{{Name: "wrapup_noun", Value: func(r trial.Trial) string { return r.WrapNoun }}}
	if warnings := Check(rows, cols); len(warnings) != 0 {
		t.Errorf("blank cells tripped the check: %v", warnings)
	}
}

// TestDefaultColumns pins the checked column set.
func TestDefaultColumns(t *testing.T) {
	t.Parallel()

	want := []string{"noun1_gender", "number", "person", "verb", "noun1", "wrapup_noun"}
	cols := DefaultColumns()
	if len(cols) != len(want) {
		t.Fatalf("expected %d columns, got %d", len(want), len(cols))
	}
	for i, name := range want {
		if cols[i].Name != name {
			t.Errorf("column %d: expected %q, got %q", i, name, cols[i].Name)
		}
	}
}
