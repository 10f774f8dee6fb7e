// Package lexicon holds the validated lexical-item table that feeds the
// stimulus pipeline and the deterministic lookups the later stages rely on.
//
// The package offers the following key components:
//
//   - LexicalItem:  one immutable row per vocabulary entry (category,
//     surface form, gender, number, language tag, session flags,
//     transitivity, wrap-up format tag).
//   - Category / Gender / Number: closed enumerations with stable string
//     forms matching the input table.
//   - Select:       the item selector — filters the table to the subset
//     relevant to one session and one language.
//   - Lexicon methods: TransitiveVerbs, Nouns, Persons, Article,
//     Connective, Adverb, DOMMarker — deterministic, order-preserving
//     lookups used by the combination generator and sentence composer.
//   - LoadCSV:      parses the input table from its delimited form.
//
// Guarantees:
//
//   - All lookups preserve input row order; no hidden sorting.
//   - Missing lookups surface as ErrMissingLexeme-wrapped errors, never
//     as empty strings, so a malformed sentence cannot be composed
//     silently.
//   - The table is never mutated after construction; selection returns
//     a new Lexicon value.
package lexicon
