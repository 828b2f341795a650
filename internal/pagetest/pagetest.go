// Package pagetest provides an in-memory paginated table for exercising
// page traversal without a browser.
package pagetest

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/wanmail/selenite"
)

// ErrNoNextPage is returned by NextPage on the last page.
var ErrNoNextPage = errors.New("pagetest: no next page")

// Page is the content of one page of a Table.
type Page struct {
	Headers []string
	Rows    []selenite.Row
}

// Table is a selenite.TableSource and selenite.PaginationControl showing one
// of its Pages at a time. It counts every call so tests can check how a
// traversal drove it.
type Table struct {
	Pages []Page
	// Current is the index of the page shown.
	Current int
	// Forever makes HasNextPage always report a next page; NextPage then
	// wraps around to the first page.
	Forever bool

	// ReadErr, when set, is returned by Headers and Rows.
	ReadErr error
	// NextErr, when set, is returned by NextPage.
	NextErr error

	HeaderReads, RowReads, HasNextCalls, NextCalls int
}

// New returns a Table with one page per element of rows, all sharing
// headers.
func New(headers []string, rows ...[]selenite.Row) *Table {
	t := &Table{}
	for _, r := range rows {
		t.Pages = append(t.Pages, Page{Headers: headers, Rows: r})
	}
	return t
}

// Headers returns the headers of the current page.
func (t *Table) Headers() ([]string, error) {
	t.HeaderReads++
	if t.ReadErr != nil {
		return nil, t.ReadErr
	}
	return t.Pages[t.Current].Headers, nil
}

// Rows returns the rows of the current page.
func (t *Table) Rows() ([]selenite.Row, error) {
	t.RowReads++
	if t.ReadErr != nil {
		return nil, t.ReadErr
	}
	return t.Pages[t.Current].Rows, nil
}

// HasNextPage reports whether the current page is not the last one.
func (t *Table) HasNextPage() (bool, error) {
	t.HasNextCalls++
	return t.Forever || t.Current < len(t.Pages)-1, nil
}

// NextPage shows the next page.
func (t *Table) NextPage() error {
	t.NextCalls++
	if t.NextErr != nil {
		return t.NextErr
	}
	switch {
	case t.Current < len(t.Pages)-1:
		t.Current++
	case t.Forever:
		t.Current = 0
	default:
		return ErrNoNextPage
	}
	return nil
}

// Visited returns the number of pages shown so far, counting the first one.
func (t *Table) Visited() int {
	return t.NextCalls + 1
}

// HTML renders the current page as an HTML document holding one table.
func (t *Table) HTML() (string, error) {
	if t.ReadErr != nil {
		return "", t.ReadErr
	}
	p := t.Pages[t.Current]
	var b strings.Builder
	b.WriteString("<html><body><table>\n<thead><tr>")
	for _, h := range p.Headers {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for _, row := range p.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			fmt.Fprintf(&b, "<td> %s </td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody></table></body></html>")
	return b.String(), nil
}
