// SPDX-License-Identifier: MIT
// Package: stimgen/lexicon
//
// types.go — lexical-item row type and closed vocabularies.
//
// Contract:
//   • LexicalItem is a pure value; the pipeline never writes to it.
//   • Category/Gender/Number string forms match the input table verbatim.
//   • A Lexicon is an ordered collection; order is the input row order.

package lexicon

// Category classifies a lexical item by its grammatical role in the
// stimulus sentences.
type Category string

// Closed category vocabulary. Surface strings match the input table.
const (
	CatVerb       Category = "verb"       // transitive or intransitive verb
	CatNoun       Category = "noun"       // object noun (clause 1 or wrap-up)
	CatPerson     Category = "person"     // sentence-initial proper name
	CatArticle    Category = "article"    // definite article, by gender+number
	CatConnective Category = "connective" // clause connective (additive/adversative)
	CatAdverb     Category = "adverb"     // wrap-up adverb (additive/adversative)
	CatMorpheme   Category = "morpheme"   // the DOM marker word
)

// Gender is the grammatical gender tag carried by nouns and articles.
type Gender string

// Grammatical genders used by the article lookup.
const (
	Feminine  Gender = "f"
	Masculine Gender = "m"
)

// Number is the grammatical number tag carried by nouns and articles.
type Number string

// Grammatical numbers used by the article lookup.
const (
	Singular Number = "sg"
	Plural   Number = "pl"
)

// LexicalItem is one row of the validated input table. Immutable.
type LexicalItem struct {
	// ID is the stable item identifier used in composite trial keys.
	ID string
	// Category is the grammatical role (see Category constants).
	Category Category
	// Surface is the orthographic form presented on screen.
	Surface string
	// Gender tags nouns and articles; empty for other categories.
	Gender Gender
	// Number tags nouns and articles; empty for other categories.
	Number Number
	// Lang is the language tag this item belongs to.
	Lang string
	// Sessions lists the experimental sessions this item is included in.
	Sessions []string
	// Transitive marks verbs of the transitive class; meaningful only
	// for CatVerb rows.
	Transitive bool
	// Format tags connectives and adverbs as "additive" or
	// "adversative"; empty for other categories.
	Format string
}

// Lexicon is the ordered lexical-item table.
type Lexicon []LexicalItem

// InSession reports whether the item is flagged for the given session.
func (it LexicalItem) InSession(session string) bool {
	for _, s := range it.Sessions {
		if s == session {
			return true
		}
	}
	return false
}
