// SPDX-License-Identifier: MIT
// Package: stimgen/lexicon
//
// select.go — item selection and deterministic lookups.
//
// Contract:
//   • Select never mutates its input; it returns a fresh Lexicon.
//   • All lookups scan in input row order and return the FIRST match,
//     so duplicate rows cannot make output order-dependent on map state.
//   • Lookup misses return ErrMissingLexeme wrapped with the query.
//
// Determinism:
//   • No maps are iterated anywhere in this file.

package lexicon

import "fmt"

// Select filters the table to the items flagged for the given session and
// carrying the given language tag. This is the pipeline's item selector.
//
// Complexity: O(n) time, O(n) space for the result.
func Select(items Lexicon, session, lang string) (Lexicon, error) {
	out := make(Lexicon, 0, len(items))
	for _, it := range items {
		if it.Lang != lang {
			continue
		}
		if !it.InSession(session) {
			continue
		}
		out = append(out, it)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("Select(session=%q, lang=%q): %w", session, lang, ErrEmptyLexicon)
	}
	return out, nil
}

// TransitiveVerbs returns the transitive-class verbs in row order.
func (lx Lexicon) TransitiveVerbs() Lexicon {
	out := make(Lexicon, 0, len(lx))
	for _, it := range lx {
		if it.Category == CatVerb && it.Transitive && it.Surface != "" {
			out = append(out, it)
		}
	}
	return out
}

// Nouns returns the non-empty noun rows in row order.
func (lx Lexicon) Nouns() Lexicon {
	out := make(Lexicon, 0, len(lx))
	for _, it := range lx {
		if it.Category == CatNoun && it.Surface != "" {
			out = append(out, it)
		}
	}
	return out
}

// Persons returns the person (proper name) rows in row order.
func (lx Lexicon) Persons() Lexicon {
	out := make(Lexicon, 0, len(lx))
	for _, it := range lx {
		if it.Category == CatPerson && it.Surface != "" {
			out = append(out, it)
		}
	}
	return out
}

// Article returns the surface form of the article matching the given
// gender and number. A miss is a configuration error (ErrMissingLexeme).
func (lx Lexicon) Article(g Gender, n Number) (string, error) {
	for _, it := range lx {
		if it.Category == CatArticle && it.Gender == g && it.Number == n {
			return it.Surface, nil
		}
	}
	return "", fmt.Errorf("Article(gender=%q, number=%q): %w", g, n, ErrMissingLexeme)
}

// Connective returns the clause connective tagged with the given wrap-up
// format ("additive" or "adversative").
func (lx Lexicon) Connective(format string) (string, error) {
	for _, it := range lx {
		if it.Category == CatConnective && it.Format == format {
			return it.Surface, nil
		}
	}
	return "", fmt.Errorf("Connective(format=%q): %w", format, ErrMissingLexeme)
}

// Adverb returns the wrap-up adverb tagged with the given format.
func (lx Lexicon) Adverb(format string) (string, error) {
	for _, it := range lx {
		if it.Category == CatAdverb && it.Format == format {
			return it.Surface, nil
		}
	}
	return "", fmt.Errorf("Adverb(format=%q): %w", format, ErrMissingLexeme)
}

// DOMMarker returns the differential-object-marking morpheme.
func (lx Lexicon) DOMMarker() (string, error) {
	for _, it := range lx {
		if it.Category == CatMorpheme && it.Surface != "" {
			return it.Surface, nil
		}
	}
	return "", fmt.Errorf("DOMMarker(): %w", ErrMissingLexeme)
}
