// Package compose builds the final word sequence for every
// (trial, condition, list) row and locates the critical (target) word.
//
// Two orthogonal axes drive composition:
//
//   - Condition (trial.Condition): grammatical keeps the DOM morpheme
//     before the object in both clauses; DOM-violation omits the morpheme
//     from both clauses; article-location-violation keeps the morpheme
//     but fuses article and noun into one orthographic token regardless
//     of the language's normal convention.
//   - ArticleRule: ArticleSeparate keeps article and noun as two words;
//     ArticleSuffixed appends the article to the noun as a single
//     orthographic unit (suffix order).
//
// The wrap-up format placed on the row earlier selects the connective and
// the adverb position: additive places the adverb after the second
// object, adversative before the second clause.
//
// Sentence shape (slots 1..10, separate-article grammatical fills all ten):
//
//	person verb [DOM] obj1… connective [adv] [DOM] obj2… [adv]
//
// The target word is always the first token of the clause-1 object
// construction: slot 4 when the DOM morpheme is present, slot 3 when it
// is omitted. The first character is upper-cased and the last token
// carries the terminal period.
//
// Any missing lexical lookup (article, connective, adverb, DOM marker)
// aborts composition with an error wrapping lexicon.ErrMissingLexeme; a
// malformed sentence is never emitted silently.
package compose
