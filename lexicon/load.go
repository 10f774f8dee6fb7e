// SPDX-License-Identifier: MIT
// Package: stimgen/lexicon
//
// load.go — delimited input-table parsing.
//
// Input format (one header row, then one row per item):
//
//	id,category,surface,gender,number,lang,sessions,transitive,format
//
// sessions is a semicolon-separated list; transitive is "1"/"true" for
// transitive-class verbs and blank otherwise. Empty cells stay empty
// strings; the table layer does not invent defaults.

package lexicon

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// column indices of the input table, fixed by the header contract above.
const (
	colID = iota
	colCategory
	colSurface
	colGender
	colNumber
	colLang
	colSessions
	colTransitive
	colFormat
	numColumns
)

// sessionSeparator splits the sessions cell into individual session tags.
const sessionSeparator = ";"

// LoadCSV reads the lexical-item table from r. The first record is the
// header and is not validated beyond its field count, matching how the
// table is produced upstream.
//
// Complexity: O(rows) time and space.
func LoadCSV(r io.Reader) (Lexicon, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numColumns

	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("LoadCSV: header: %w", err)
	}

	var items Lexicon
	line := 1
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("LoadCSV: line %d: %v: %w", line, err, ErrBadRecord)
		}
		it, err := itemFromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("LoadCSV: line %d: %w", line, err)
		}
		items = append(items, it)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("LoadCSV: %w", ErrEmptyLexicon)
	}
	return items, nil
}

// itemFromRecord converts one CSV record into a LexicalItem.
func itemFromRecord(rec []string) (LexicalItem, error) {
	cat := Category(rec[colCategory])
	switch cat {
	case CatVerb, CatNoun, CatPerson, CatArticle, CatConnective, CatAdverb, CatMorpheme:
		// known category
	default:
		return LexicalItem{}, fmt.Errorf("unknown category %q: %w", rec[colCategory], ErrBadRecord)
	}

	var sessions []string
	if rec[colSessions] != "" {
		sessions = strings.Split(rec[colSessions], sessionSeparator)
	}

	transitive := rec[colTransitive] == "1" || strings.EqualFold(rec[colTransitive], "true")

	return LexicalItem{
		ID:         rec[colID],
		Category:   cat,
		Surface:    rec[colSurface],
		Gender:     Gender(rec[colGender]),
		Number:     Number(rec[colNumber]),
		Lang:       rec[colLang],
		Sessions:   sessions,
		Transitive: transitive,
		Format:     rec[colFormat],
	}, nil
}
