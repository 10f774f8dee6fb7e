// SPDX-License-Identifier: MIT
// Package: stimgen/trial
//
// types.go — the stimulus-table row and its closed vocabularies.
//
// Contract:
//   • Trial is a pure value row; stages copy it forward and assign
//     columns explicitly, never through shared pointers.
//   • Condition and Format are closed enums; String forms are the stable
//     serialized names used in the output table.

package trial

import (
	"fmt"

	"github.com/katalvlaran/stimgen/lexicon"
)

// Condition is the grammaticality condition of a trial within a list.
type Condition uint8

const (
	// Grammatical: DOM morpheme precedes the object in both clauses.
	Grammatical Condition = iota
	// DOMViolation: the DOM morpheme is omitted from both clauses.
	DOMViolation
	// ArticleViolation: DOM present, but article and noun are fused into
	// a single orthographic token regardless of the language's norm.
	ArticleViolation

	// NumConditions is the size of the condition set.
	NumConditions = 3
)

// conditionNames are the stable serialized condition tags.
var conditionNames = [NumConditions]string{
	"grammatical",
	"DOM-violation",
	"article-location-violation",
}

// String returns the stable serialized name of the condition.
func (c Condition) String() string {
	if int(c) >= NumConditions {
		return fmt.Sprintf("condition(%d)", uint8(c))
	}
	return conditionNames[c]
}

// BaseConditionSequence returns the canonical ordered condition sequence
// that the permuter rotates per list. A fresh slice is returned so callers
// may rotate in place.
func BaseConditionSequence() []Condition {
	return []Condition{Grammatical, DOMViolation, ArticleViolation}
}

// Format is the wrap-up clause format of a trial.
type Format uint8

const (
	// Additive wrap-up: connective "and"-class, adverb sentence-final.
	Additive Format = iota
	// Adversative wrap-up: connective "but"-class, adverb before clause 2.
	Adversative

	// NumFormats is the size of the format set.
	NumFormats = 2
)

// formatNames are the stable serialized format tags; they double as the
// lexicon lookup keys for connectives and adverbs.
var formatNames = [NumFormats]string{"additive", "adversative"}

// String returns the stable serialized name of the format.
func (f Format) String() string {
	if int(f) >= NumFormats {
		return fmt.Sprintf("format(%d)", uint8(f))
	}
	return formatNames[f]
}

// MaxWordSlots is the fixed number of word positions per sentence. The
// longest composed sentence (separate-article grammatical) fills all ten.
const MaxWordSlots = 10

// NumLists is the number of counterbalanced presentation lists.
const NumLists = 3

// ListName renders the 1-based list index as its stable output tag.
func ListName(k int) string {
	return fmt.Sprintf("list%d", k)
}

// Trial is one row of the evolving stimulus table. Combine creates rows
// with the verb/noun columns set; each later stage fills its own columns.
type Trial struct {
	// ID is the composite trial key "<verbID>_<noun1ID>".
	ID string

	// Run metadata, set by the permuter from pipeline options.
	MaterialsVersion string
	Language         string
	List             string
	Session          string

	// Verb side of the combination.
	VerbID string
	Verb   string

	// Primary object noun (clause 1).
	Noun1ID     string
	Noun1       string
	Noun1Gender lexicon.Gender
	Noun1Number lexicon.Number

	// Wrap-up noun (clause 2), drawn by AssignWrapups.
	WrapNoun   string
	WrapGender lexicon.Gender
	WrapNumber lexicon.Number

	// Person is the sentence-initial proper name.
	Person string

	// Condition assignment and its fixed descriptive metadata.
	Condition       Condition
	ConditionCode   int
	CorrectResponse string
	PropertyName    string
	PropertyCode    int

	// Format of the wrap-up clause.
	Format Format

	// Composed sentence.
	Sentence  string
	Words     [MaxWordSlots]string
	Durations [MaxWordSlots]int

	// Target word (critical position) and trigger codes.
	TargetWord   string
	TargetPos    int // 1-based word slot; only 3 and 4 are legal
	TargetCode   int
	SentenceCode int
}
