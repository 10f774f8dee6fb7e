// SPDX-License-Identifier: MIT
// Package: stimgen/compose
//
// types.go — the article-placement rule axis.

package compose

import "fmt"

// ArticleRule describes how a language places the definite article
// relative to its noun.
type ArticleRule uint8

const (
	// ArticleSeparate keeps article and noun as separate words
	// (e.g. "la mujer").
	ArticleSeparate ArticleRule = iota
	// ArticleSuffixed appends the article to the noun as one orthographic
	// unit (suffix order, e.g. "emakume"+"a" → "emakumea").
	ArticleSuffixed

	numArticleRules = 2
)

// articleRuleNames are the stable serialized rule tags used in run
// configuration.
var articleRuleNames = [numArticleRules]string{"separate", "suffixed"}

// String returns the stable serialized name of the rule.
func (r ArticleRule) String() string {
	if int(r) >= numArticleRules {
		return fmt.Sprintf("articleRule(%d)", uint8(r))
	}
	return articleRuleNames[r]
}

// ParseArticleRule resolves a serialized rule tag. Unknown tags return an
// error so configuration typos fail loudly.
func ParseArticleRule(s string) (ArticleRule, error) {
	for i, name := range articleRuleNames {
		if s == name {
			return ArticleRule(i), nil
		}
	}
	return 0, fmt.Errorf("ParseArticleRule: unknown rule %q", s)
}
