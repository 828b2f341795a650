package selenite

import (
	"fmt"
	"strings"
	"time"

	"github.com/tebeka/selenium"
	"github.com/wanmail/selenite/log"
)

// DefaultTimeout is how long the waiting Should* operations of a FormPage
// wait for their condition.
const DefaultTimeout = 5 * time.Second

// FormPage is a page object for a page showing a single table.
type FormPage struct {
	Table *WebTable
	// Timeout bounds the waiting Should* operations. If zero, DefaultTimeout
	// is used.
	Timeout time.Duration
	// Reporter logs the Should* operations as steps.
	Reporter log.Reporter
}

func (p *FormPage) timeout() time.Duration {
	if p.Timeout > 0 {
		return p.Timeout
	}
	return DefaultTimeout
}

// MatchingRecords returns the records of the current page that exactly match
// query.
func (p *FormPage) MatchingRecords(query map[string]string) ([]Record, error) {
	s, err := ReadSnapshot(p.Table)
	if err != nil {
		return nil, err
	}
	return ExactRecords(s.Records(), query), nil
}

// MatchingRows returns the rows of the current page containing every item of
// query.
func (p *FormPage) MatchingRows(query []string) ([]Row, error) {
	rows, err := p.Table.Rows()
	if err != nil {
		return nil, err
	}
	return ExactRows(rows, query), nil
}

func (p *FormPage) columnIndex(column string) (int, error) {
	headers, err := p.Table.Headers()
	if err != nil {
		return 0, err
	}
	for i, h := range headers {
		if h == column {
			return i, nil
		}
	}
	return 0, &MissingColumnError{Column: column}
}

func (p *FormPage) cellText(row selenium.WebElement, i int, column string) (string, error) {
	cells, err := p.Table.cells(row)
	if err != nil {
		return "", err
	}
	if i >= len(cells) {
		return "", &MissingColumnError{Column: column}
	}
	text, err := cells[i].Text()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// RowAttributeByIndex returns the text in column of the row at index.
func (p *FormPage) RowAttributeByIndex(index int, column string) (string, error) {
	i, err := p.columnIndex(column)
	if err != nil {
		return "", err
	}
	rows, err := p.Table.RowElements()
	if err != nil {
		return "", err
	}
	if index < 0 || index >= len(rows) {
		return "", fmt.Errorf("row %d out of range, table has %d rows", index, len(rows))
	}
	return p.cellText(rows[index], i, column)
}

// RowAttributeByText returns the text in column of the first displayed row
// whose text contains every keyword. ok is false if there is no such row.
func (p *FormPage) RowAttributeByText(keywords []string, column string) (text string, ok bool, err error) {
	i, err := p.columnIndex(column)
	if err != nil {
		return "", false, err
	}
	rows, err := p.Table.RowsByKeyword(keywords...)
	if err != nil {
		return "", false, err
	}
	for _, row := range rows {
		displayed, err := row.IsDisplayed()
		if err != nil {
			return "", false, err
		}
		if !displayed {
			continue
		}
		text, err := p.cellText(row, i, column)
		if err != nil {
			return "", false, err
		}
		return text, true, nil
	}
	return "", false, nil
}

// ShouldContainSubDictionary checks that some row of the current page
// exactly matches query.
func (p *FormPage) ShouldContainSubDictionary(query map[string]string) error {
	return p.Reporter.Step(fmt.Sprintf("table should contain %v", query), func() error {
		matched, err := p.MatchingRecords(query)
		if err != nil {
			return err
		}
		return IsTrue(len(matched) > 0, fmt.Sprintf("no row matches %v", query))
	})
}

// ShouldNotContainSubDictionary checks that no row of the current page
// exactly matches query.
func (p *FormPage) ShouldNotContainSubDictionary(query map[string]string) error {
	return p.Reporter.Step(fmt.Sprintf("table should not contain %v", query), func() error {
		matched, err := p.MatchingRecords(query)
		if err != nil {
			return err
		}
		return IsFalse(len(matched) > 0, fmt.Sprintf("%d rows match %v", len(matched), query))
	})
}

// ShouldContainSubList checks that some row of the current page contains
// every item of query.
func (p *FormPage) ShouldContainSubList(query []string) error {
	return p.Reporter.Step(fmt.Sprintf("table should contain %q", query), func() error {
		matched, err := p.MatchingRows(query)
		if err != nil {
			return err
		}
		return IsTrue(len(matched) > 0, fmt.Sprintf("no row contains %q", query))
	})
}

// ShouldHaveText waits until some row of the table contains text.
func (p *FormPage) ShouldHaveText(text string) error {
	return p.Reporter.Step(fmt.Sprintf("table should have text %q", text), func() error {
		cond := func(selenium.WebDriver) (bool, error) {
			rows, err := p.Table.RowsByKeyword(text)
			return len(rows) > 0, err
		}
		if err := p.Table.Driver.WaitWithTimeout(cond, p.timeout()); err != nil {
			return &AssertionError{Msg: fmt.Sprintf("no row has text %q: %v", text, err), Expected: text}
		}
		return nil
	})
}

// ShouldHaveTextByIndex waits until the row at index contains text.
func (p *FormPage) ShouldHaveTextByIndex(index int, text string) error {
	return p.Reporter.Step(fmt.Sprintf("row %d should have text %q", index, text), func() error {
		if index < 0 {
			n, err := p.Table.RowCount()
			if err != nil {
				return err
			}
			return fmt.Errorf("row %d out of range, table has %d rows", index, n)
		}
		has := Predicate{Kind: Includes, Expected: text}
		var last string
		cond := func(selenium.WebDriver) (bool, error) {
			rows, err := p.Table.RowElements()
			if err != nil || index >= len(rows) {
				return false, err
			}
			last, err = rows[index].Text()
			return has.Test(last), err
		}
		if err := p.Table.Driver.WaitWithTimeout(cond, p.timeout()); err != nil {
			return &AssertionError{
				Msg:      fmt.Sprintf("row %d has text %q, want it to contain %q: %v", index, last, text, err),
				Expected: text,
				Actual:   last,
			}
		}
		return nil
	})
}

// ShouldHaveRowAttribute checks that the row found by keywords holds value in
// column.
func (p *FormPage) ShouldHaveRowAttribute(keywords []string, column, value string) error {
	return p.Reporter.Step(fmt.Sprintf("row %q should have %s=%q", keywords, column, value), func() error {
		text, ok, err := p.RowAttributeByText(keywords, column)
		if err != nil {
			return err
		}
		if !ok {
			return &AssertionError{Msg: fmt.Sprintf("no row contains %q", keywords), Expected: value}
		}
		return IsEqual(text, value, "")
	})
}

// FormsPage is a page object for a table split over several pages.
type FormsPage struct {
	FormPage
	Pagination *WebPagination
	// Settle is the pause after each page turn.
	Settle time.Duration
	// StrictHeaders is passed on to the Pager; see Pager.StrictHeaders.
	StrictHeaders bool
}

// NewFormsPage returns a FormsPage reading table and turning pages with
// pagination, both through wd.
func NewFormsPage(wd selenium.WebDriver, table *WebTable, pagination *WebPagination) *FormsPage {
	table.Driver = wd
	pagination.Driver = wd
	return &FormsPage{
		FormPage:   FormPage{Table: table},
		Pagination: pagination,
		Settle:     DefaultSettle,
	}
}

// Pager returns a Pager over the page's table and pagination.
func (p *FormsPage) Pager() *Pager {
	return &Pager{
		Source:        p.Table,
		Control:       p.Pagination,
		Settle:        p.Settle,
		StrictHeaders: p.StrictHeaders,
	}
}

// BackToFirstPage returns the table to its first page.
func (p *FormsPage) BackToFirstPage() error {
	if err := p.Pagination.BackToFirstPage(); err != nil {
		return err
	}
	p.Pager().wait()
	return nil
}

// AllRows returns the rows of every page, starting at the current page.
func (p *FormsPage) AllRows() ([]Row, error) {
	return p.Pager().AggregateRows()
}

// AllRecords returns the rows of every page as records, starting at the
// current page.
func (p *FormsPage) AllRecords() ([]Record, error) {
	return p.Pager().AggregateRecords()
}

// RowsByKeywordAcrossPages turns pages until one has rows containing every
// keyword and returns those rows. The table is left on that page.
func (p *FormsPage) RowsByKeywordAcrossPages(keywords ...string) ([]selenium.WebElement, error) {
	return SearchPages(p.Pager(), func() ([]selenium.WebElement, error) {
		return p.Table.RowsByKeyword(keywords...)
	})
}

// MatchingRecordsByQueries collects every page and returns the records
// matching each query, query by query.
func (p *FormsPage) MatchingRecordsByQueries(queries []map[string]string) ([]Record, error) {
	all, err := p.AllRecords()
	if err != nil {
		return nil, err
	}
	return MatchRecordsByQueries(all, queries), nil
}

// MatchingRowsByQueries collects every page and returns the rows matching
// each query, query by query.
func (p *FormsPage) MatchingRowsByQueries(queries [][]string) ([]Row, error) {
	all, err := p.AllRows()
	if err != nil {
		return nil, err
	}
	return MatchRowsByQueries(all, queries), nil
}

// ShouldContainSubDictionaries collects every page and checks it with
// ShouldContainSubRecords.
func (p *FormsPage) ShouldContainSubDictionaries(queries []map[string]string) ([]Record, error) {
	var matched []Record
	err := p.Reporter.Step(fmt.Sprintf("tables should contain %v", queries), func() error {
		all, err := p.AllRecords()
		if err != nil {
			return err
		}
		matched, err = ShouldContainSubRecords(all, queries)
		return err
	})
	return matched, err
}

// ShouldContainSubLists collects every page and checks it with
// ShouldContainSubRows.
func (p *FormsPage) ShouldContainSubLists(queries [][]string) ([]Row, error) {
	var matched []Row
	err := p.Reporter.Step(fmt.Sprintf("tables should contain %q", queries), func() error {
		all, err := p.AllRows()
		if err != nil {
			return err
		}
		matched, err = ShouldContainSubRows(all, queries)
		return err
	})
	return matched, err
}
