package selenite

import "fmt"

// MatchRecordsByQueries runs ExactRecords for each query against dataset and
// concatenates the matches, query by query.
func MatchRecordsByQueries(dataset []Record, queries []map[string]string) []Record {
	var matched []Record
	for _, q := range queries {
		matched = append(matched, ExactRecords(dataset, q)...)
	}
	return matched
}

// MatchRowsByQueries runs ExactRows for each query against dataset and
// concatenates the matches, query by query.
func MatchRowsByQueries(dataset []Row, queries [][]string) []Row {
	var matched []Row
	for _, q := range queries {
		matched = append(matched, ExactRows(dataset, q)...)
	}
	return matched
}

// ShouldContainSubRecords matches every query against dataset and checks that
// the total number of matched records equals the number of queries.
//
// The check compares counts only. A query matching two records makes up for
// a query matching none.
//
// The matched records are returned in either case; on a count mismatch the
// error is an *AssertionError carrying both counts.
func ShouldContainSubRecords(dataset []Record, queries []map[string]string) ([]Record, error) {
	matched := MatchRecordsByQueries(dataset, queries)
	return matched, countMatched(len(queries), len(matched), matched)
}

// ShouldContainSubRows is the Row counterpart of ShouldContainSubRecords,
// matching with ExactRows.
func ShouldContainSubRows(dataset []Row, queries [][]string) ([]Row, error) {
	matched := MatchRowsByQueries(dataset, queries)
	return matched, countMatched(len(queries), len(matched), matched)
}

func countMatched(want, got int, matched interface{}) error {
	if err := IsEqual(got, want, fmt.Sprintf("matched %d rows, want %d", got, want)); err != nil {
		err.(*AssertionError).Matched = matched
		return err
	}
	return nil
}
