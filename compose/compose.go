// SPDX-License-Identifier: MIT
// Package: stimgen/compose
//
// compose.go — sentence composition per (article rule, condition).
//
// Contract:
//   • Token order: person verb [DOM] obj1 connective [adv] [DOM] obj2 [adv]
//     with the adverb before clause 2 for adversative format and
//     sentence-final for additive format.
//   • Object construction per (rule, condition):
//     – separate  + grammatical/DOM-violation: article, noun (two tokens)
//     – suffixed  + grammatical/DOM-violation: noun‖article (one token)
//     – any rule  + article-location-violation: article‖noun (one token)
//   • The DOM morpheme is present in both clauses except under
//     DOM-violation, where it is omitted from both.
//   • Target word = first token of the clause-1 object construction.
//   • First character upper-cased; terminal period on the last token.
//   • Missing lookups abort with wrapped lexicon.ErrMissingLexeme.
//
// Determinism: pure function of (rows, lex, rule); no randomness.
//
// Complexity: O(rows · lexicon) time, O(rows) space.

package compose

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/stimgen/lexicon"
	"github.com/katalvlaran/stimgen/trial"
)

// Sentences composes the word sequence, sentence text, target word and
// target position for every row. Returns a fresh slice.
func Sentences(rows []trial.Trial, lex lexicon.Lexicon, rule ArticleRule) ([]trial.Trial, error) {
	dom, err := lex.DOMMarker()
	if err != nil {
		return nil, fmt.Errorf("Sentences: %w", err)
	}

	out := make([]trial.Trial, len(rows))
	for i, r := range rows {
		composed, err := one(r, lex, rule, dom)
		if err != nil {
			return nil, fmt.Errorf("Sentences: row %d (id=%s, list=%s, condition=%s): %w",
				i, r.ID, r.List, r.Condition, err)
		}
		out[i] = composed
	}
	return out, nil
}

// one composes a single row.
func one(r trial.Trial, lex lexicon.Lexicon, rule ArticleRule, dom string) (trial.Trial, error) {
	conn, err := lex.Connective(r.Format.String())
	if err != nil {
		return trial.Trial{}, err
	}
	adv, err := lex.Adverb(r.Format.String())
	if err != nil {
		return trial.Trial{}, err
	}

	obj1, err := objectTokens(lex, rule, r.Condition, r.Noun1, r.Noun1Gender, r.Noun1Number)
	if err != nil {
		return trial.Trial{}, err
	}
	obj2, err := objectTokens(lex, rule, r.Condition, r.WrapNoun, r.WrapGender, r.WrapNumber)
	if err != nil {
		return trial.Trial{}, err
	}

	domPresent := r.Condition != trial.DOMViolation

	// Assemble tokens in presentation order, recording where the clause-1
	// object construction starts: that token is the target word.
	tokens := make([]string, 0, trial.MaxWordSlots)
	tokens = append(tokens, r.Person, r.Verb)
	if domPresent {
		tokens = append(tokens, dom)
	}
	targetPos := len(tokens) + 1 // 1-based slot of the next token
	tokens = append(tokens, obj1...)
	tokens = append(tokens, conn)
	if r.Format == trial.Adversative {
		tokens = append(tokens, adv)
	}
	if domPresent {
		tokens = append(tokens, dom)
	}
	tokens = append(tokens, obj2...)
	if r.Format == trial.Additive {
		tokens = append(tokens, adv)
	}

	if len(tokens) > trial.MaxWordSlots {
		return trial.Trial{}, fmt.Errorf("%d tokens: %w", len(tokens), ErrSlotOverflow)
	}

	r.TargetWord = tokens[targetPos-1]
	r.TargetPos = targetPos

	// Surface form: capitalize the first token, close with a period.
	tokens[0] = capitalize(tokens[0])
	tokens[len(tokens)-1] += "."

	r.Words = [trial.MaxWordSlots]string{}
	copy(r.Words[:], tokens)
	r.Sentence = strings.Join(tokens, " ")

	return r, nil
}

// objectTokens renders one (article + noun) construction under the given
// rule and condition.
func objectTokens(lex lexicon.Lexicon, rule ArticleRule, cond trial.Condition,
	noun string, g lexicon.Gender, n lexicon.Number) ([]string, error) {

	art, err := lex.Article(g, n)
	if err != nil {
		return nil, err
	}

	if cond == trial.ArticleViolation {
		// Fused article‖noun, regardless of the language's convention.
		return []string{art + noun}, nil
	}
	if rule == ArticleSuffixed {
		// The language writes the article onto the noun (suffix order).
		return []string{noun + art}, nil
	}
	return []string{art, noun}, nil
}

// capitalize upper-cases the first rune of s.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
