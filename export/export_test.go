// Package export_test validates CSV serialization and per-list splitting.
package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stimgen/export"
	"github.com/katalvlaran/stimgen/trial"
)

// sampleRow fills the columns the serializer renders.
func sampleRow() trial.Trial {
	r := trial.Trial{
		ID:               "v1_n1",
		MaterialsVersion: "v1",
		Language:         "es",
		List:             "list1",
		Session:          "session1",
		Noun1Number:      "sg",
		Condition:        trial.Grammatical,
		ConditionCode:    1,
		CorrectResponse:  "yes",
		PropertyName:     "DOM",
		PropertyCode:     1,
		Sentence:         "Juan vio a la mujer y a el hombre también.",
		SentenceCode:     110,
		TargetWord:       "la",
		TargetPos:        4,
		TargetCode:       40,
	}
	r.Words = [trial.MaxWordSlots]string{"Juan", "vio", "a", "la", "mujer", "y", "a", "el", "hombre", "también."}
	r.Durations = [trial.MaxWordSlots]int{285, 250, 250, 210, 320, 250, 250, 250, 390, 390}
	return r
}

// TestWriteCSV checks the header, the cell layout and blank serialization
// of empty values.
func TestWriteCSV(t *testing.T) {
	t.Parallel()

	full := sampleRow()
	short := trial.Trial{ID: "v1_n2", List: "list1", TargetPos: 3}
	short.Words = [trial.MaxWordSlots]string{"Juan", "vio", "la", "mujer."}
	short.Durations = [trial.MaxWordSlots]int{285, 250, 210, 320}

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, []trial.Trial{full, short}))

	recs, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 3, "header + 2 rows")

	header, row1, row2 := recs[0], recs[1], recs[2]
	require.Equal(t, "materials_version", header[0])
	require.Equal(t, "word1", header[16])
	require.Len(t, row1, len(header))

	require.Equal(t, "v1_n1", row1[4])
	require.Equal(t, "grammatical", row1[5])
	require.Equal(t, "Juan", row1[16])
	require.Equal(t, "285", row1[17])
	require.Equal(t, "también.", row1[34])
	require.Equal(t, "390", row1[35])

	// Unset cells serialize blank, not zero: word5..word10 of the short
	// row are empty, and so are their durations.
	require.Equal(t, "", row2[0], "materials_version blank")
	require.Equal(t, "", row2[24], "word5 blank")
	require.Equal(t, "", row2[25], "duration5 blank, not 0")
	require.Equal(t, "", row2[6], "condition_code blank when unset")
}

// TestWriteCSV_SharedRow checks that a blank-list shared row serializes
// a blank condition cell instead of the zero-valued condition's name.
func TestWriteCSV_SharedRow(t *testing.T) {
	t.Parallel()

	shared := trial.Trial{ID: "practice", Session: "session1"}
	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, []trial.Trial{shared}))

	recs, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 2)

	row := recs[1]
	require.Equal(t, "", row[2], "list blank")
	require.Equal(t, "", row[5], "condition blank, not \"grammatical\"")
	require.Equal(t, "", row[6], "condition_code blank")
	require.Equal(t, "session1", row[12])
}

// TestSplitByList checks the per-list partition and that shared
// (blank-list) rows ride along in every partition.
func TestSplitByList(t *testing.T) {
	t.Parallel()

	rows := []trial.Trial{
		{ID: "a", List: "list1"},
		{ID: "b", List: "list2"},
		{ID: "c", List: "list1"},
		{ID: "shared", List: ""},
		{ID: "d", List: "list3"},
	}
	names, lists := export.SplitByList(rows)

	require.Equal(t, []string{"list1", "list2", "list3"}, names)
	require.Len(t, lists["list1"], 3, "2 own rows + 1 shared")
	require.Len(t, lists["list2"], 2)
	require.Len(t, lists["list3"], 2)
	for _, name := range names {
		last := lists[name][len(lists[name])-1]
		require.Equal(t, "shared", last.ID, "list %s misses the shared row", name)
	}
}
