package selenite

import (
	"fmt"
	"regexp"
	"sync"
)

// patternCache caches compiled regular expressions by source text. Matching runs
// the same handful of patterns against every row of a dataset.
var patternCache sync.Map // map[string]*regexp.Regexp

func compile(pattern string) (*regexp.Regexp, error) {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	actual, _ := patternCache.LoadOrStore(pattern, re)
	return actual.(*regexp.Regexp), nil
}

// ExactRecords returns the records that hold query[column] in every column
// named by query. A record without one of those columns does not match.
// Records keep their original order.
func ExactRecords(records []Record, query map[string]string) []Record {
	var matched []Record
	for _, r := range records {
		if recordHas(r, query) {
			matched = append(matched, r)
		}
	}
	return matched
}

func recordHas(r Record, query map[string]string) bool {
	for column, want := range query {
		if got, ok := r[column]; !ok || got != want {
			return false
		}
	}
	return true
}

// PartialRecords returns the records in which, for every column named by
// query, the regular expression query[column] matches somewhere in the cell.
//
// A *MissingColumnError is returned as soon as a record lacks one of the
// queried columns. Every queried column is checked before any pattern runs,
// so a record is rejected for a missing column even when the pattern of
// another column would not have matched it.
func PartialRecords(records []Record, query map[string]string) ([]Record, error) {
	res := make(map[string]*regexp.Regexp, len(query))
	for column, pattern := range query {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}
		res[column] = re
	}

	var matched []Record
	for _, r := range records {
		for column := range res {
			if _, found := r[column]; !found {
				return nil, &MissingColumnError{Column: column}
			}
		}
		ok := true
		for column, re := range res {
			if !re.MatchString(r[column]) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

// ExactRows returns the rows that contain every item of query as a cell, at
// any position.
//
// Note that PartialRows pairs query items with cells by position instead.
func ExactRows(rows []Row, query []string) []Row {
	var matched []Row
	for _, row := range rows {
		if rowContains(row, query) {
			matched = append(matched, row)
		}
	}
	return matched
}

func rowContains(row Row, query []string) bool {
	for _, item := range query {
		found := false
		for _, cell := range row {
			if cell == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PartialRows returns the rows in which patterns[i] matches somewhere in
// row[i], for every i below both len(patterns) and len(row). Items beyond the
// shorter of the two are not checked.
func PartialRows(rows []Row, patterns []string) ([]Row, error) {
	res := make([]*regexp.Regexp, len(patterns))
	for i, pattern := range patterns {
		re, err := compile(pattern)
		if err != nil {
			return nil, err
		}
		res[i] = re
	}
	return PartialRowsRegexp(rows, res), nil
}

// PartialRowsRegexp is like PartialRows but takes compiled expressions.
func PartialRowsRegexp(rows []Row, res []*regexp.Regexp) []Row {
	var matched []Row
	for _, row := range rows {
		ok := true
		for i := 0; i < len(res) && i < len(row); i++ {
			if !res[i].MatchString(row[i]) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, row)
		}
	}
	return matched
}
