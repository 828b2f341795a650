package selenite

import (
	"strings"

	"github.com/tebeka/selenium"
)

// WebTable is a TableSource that reads a table rendered in a browser.
type WebTable struct {
	Driver selenium.WebDriver
	// Head locates the header cells of the table.
	Head Locator
	// Body locates the row elements of the table.
	Body Locator
	// Child is the XPath, relative to a row element, of the row's cells. If
	// empty, DefaultChild is used.
	Child string
}

// Headers returns the text of each header cell.
func (t *WebTable) Headers() ([]string, error) {
	ths, err := t.Head.findAll(t.Driver)
	if err != nil {
		return nil, err
	}
	return texts(ths)
}

// RowElements returns the row elements of the table.
func (t *WebTable) RowElements() ([]selenium.WebElement, error) {
	return t.Body.findAll(t.Driver)
}

// RowCount returns the number of rows currently displayed.
func (t *WebTable) RowCount() (int, error) {
	rows, err := t.RowElements()
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Rows returns the cell texts of every row.
func (t *WebTable) Rows() ([]Row, error) {
	trs, err := t.RowElements()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, 0, len(trs))
	for _, tr := range trs {
		cells, err := t.cells(tr)
		if err != nil {
			return nil, err
		}
		row, err := texts(cells)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (t *WebTable) cells(row selenium.WebElement) ([]selenium.WebElement, error) {
	child := t.Child
	if child == "" {
		child = DefaultChild
	}
	return row.FindElements(selenium.ByXPATH, child)
}

// RowsByKeyword returns the row elements whose text contains every keyword.
// Rows are narrowed one keyword at a time; once no row is left the remaining
// keywords are not tried.
func (t *WebTable) RowsByKeyword(keywords ...string) ([]selenium.WebElement, error) {
	rows, err := t.RowElements()
	if err != nil {
		return nil, err
	}
	for _, kw := range keywords {
		has := Predicate{Kind: Includes, Expected: kw}
		var kept []selenium.WebElement
		for _, row := range rows {
			text, err := row.Text()
			if err != nil {
				return nil, err
			}
			if has.Test(text) {
				kept = append(kept, row)
			}
		}
		rows = kept
		if len(rows) == 0 {
			break
		}
	}
	return rows, nil
}

func texts(elems []selenium.WebElement) ([]string, error) {
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		text, err := e.Text()
		if err != nil {
			return nil, err
		}
		out = append(out, strings.TrimSpace(text))
	}
	return out, nil
}
