// SPDX-License-Identifier: MIT
// Package: stimgen/export
//
// export.go — CSV serialization of the final stimulus table.
//
// Contract:
//   • One row per (trial, list); fixed header; 10 (word, duration)
//     column pairs.
//   • Empty or unset values serialize as blank cells, never as a null
//     marker or a zero.
//   • SplitByList partitions rows per list, and every list's output also
//     carries the rows whose list field is blank (global/shared rows).
//
// Determinism: a run serialized twice yields byte-identical output.

// Package export writes the finished stimulus table in the delimited form
// the presentation software consumes, one file per presentation list.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/stimgen/trial"
)

// header is the fixed output column order.
var header = []string{
	"materials_version", "language", "list", "number", "trial_id",
	"condition", "condition_code", "correct_response",
	"property_name", "property_code",
	"sentence", "sentence_code", "session",
	"target_word", "target_pos", "target_code",
	"word1", "duration1", "word2", "duration2", "word3", "duration3",
	"word4", "duration4", "word5", "duration5", "word6", "duration6",
	"word7", "duration7", "word8", "duration8", "word9", "duration9",
	"word10", "duration10",
}

// WriteCSV serializes rows to w with the fixed header.
func WriteCSV(w io.Writer, rows []trial.Trial) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCSV: header: %w", err)
	}
	for i, r := range rows {
		if err := cw.Write(record(r)); err != nil {
			return fmt.Errorf("WriteCSV: row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: flush: %w", err)
	}
	return nil
}

// SplitByList partitions rows per list name in first-occurrence order and
// appends the blank-list (shared) rows to every partition. The returned
// names preserve first-occurrence order; blank is never a name of its own.
func SplitByList(rows []trial.Trial) (names []string, lists map[string][]trial.Trial) {
	lists = make(map[string][]trial.Trial)
	var shared []trial.Trial
	for _, r := range rows {
		if r.List == "" {
			shared = append(shared, r)
			continue
		}
		if _, seen := lists[r.List]; !seen {
			names = append(names, r.List)
		}
		lists[r.List] = append(lists[r.List], r)
	}
	for _, name := range names {
		lists[name] = append(lists[name], shared...)
	}
	return names, lists
}

// record renders one row into output cells; blanks for empty values.
func record(r trial.Trial) []string {
	// A blank-list shared row carries no condition; its zero-valued
	// Condition must serialize blank, not "grammatical".
	cond := ""
	if r.List != "" {
		cond = r.Condition.String()
	}

	rec := make([]string, 0, len(header))
	rec = append(rec,
		r.MaterialsVersion, r.Language, r.List, string(r.Noun1Number), r.ID,
		cond, cell(r.ConditionCode), r.CorrectResponse,
		r.PropertyName, cell(r.PropertyCode),
		r.Sentence, cell(r.SentenceCode), r.Session,
		r.TargetWord, cell(r.TargetPos), cell(r.TargetCode),
	)
	for s := 0; s < trial.MaxWordSlots; s++ {
		rec = append(rec, r.Words[s])
		if r.Words[s] == "" {
			rec = append(rec, "")
			continue
		}
		rec = append(rec, strconv.Itoa(r.Durations[s]))
	}
	return rec
}

// cell renders a positive integer; zero (unset) serializes blank.
func cell(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
