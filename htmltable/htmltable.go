// Package htmltable reads tables out of HTML documents, such as the page
// source of a browser session.
//
// Reading a whole table from one page source avoids a WebDriver round trip
// per cell. Both table types re-read their Source on every call, so they
// observe page turns like selenite.WebTable does.
package htmltable

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/tebeka/selenium"
	"github.com/wanmail/selenite"
	"golang.org/x/net/html"
)

// Source returns the HTML document to read.
type Source func() (string, error)

// Static returns a Source that always returns doc.
func Static(doc string) Source {
	return func() (string, error) { return doc, nil }
}

// PageSource returns a Source reading the current page of wd.
func PageSource(wd selenium.WebDriver) Source {
	return wd.PageSource
}

// normalize collapses whitespace the way browsers render text.
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// XPath is a selenite.TableSource whose parts are located by XPath
// expressions.
type XPath struct {
	Source Source
	// Head selects the header cells.
	Head string
	// Body selects the row elements.
	Body string
	// Child selects the cells relative to a row. If empty,
	// selenite.DefaultChild is used.
	Child string
}

func (t *XPath) parse() (*html.Node, error) {
	src, err := t.Source()
	if err != nil {
		return nil, err
	}
	return htmlquery.Parse(strings.NewReader(src))
}

// Headers returns the text of each header cell.
func (t *XPath) Headers() ([]string, error) {
	doc, err := t.parse()
	if err != nil {
		return nil, err
	}
	nodes, err := htmlquery.QueryAll(doc, t.Head)
	if err != nil {
		return nil, err
	}
	return innerTexts(nodes), nil
}

// Rows returns the cell texts of every row.
func (t *XPath) Rows() ([]selenite.Row, error) {
	doc, err := t.parse()
	if err != nil {
		return nil, err
	}
	trs, err := htmlquery.QueryAll(doc, t.Body)
	if err != nil {
		return nil, err
	}
	child := t.Child
	if child == "" {
		child = selenite.DefaultChild
	}
	rows := make([]selenite.Row, 0, len(trs))
	for _, tr := range trs {
		cells, err := htmlquery.QueryAll(tr, child)
		if err != nil {
			return nil, err
		}
		rows = append(rows, innerTexts(cells))
	}
	return rows, nil
}

func innerTexts(nodes []*html.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, normalize(htmlquery.InnerText(n)))
	}
	return out
}

// DefaultCSSChild selects the cells of a row in a CSS table.
const DefaultCSSChild = "td, th"

// CSS is a selenite.TableSource whose parts are located by CSS selectors.
type CSS struct {
	Source Source
	// Head selects the header cells.
	Head string
	// Body selects the row elements.
	Body string
	// Child filters the direct children of a row that are cells. If empty,
	// DefaultCSSChild is used.
	Child string
}

func (t *CSS) parse() (*goquery.Document, error) {
	src, err := t.Source()
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromReader(strings.NewReader(src))
}

// Headers returns the text of each header cell.
func (t *CSS) Headers() ([]string, error) {
	doc, err := t.parse()
	if err != nil {
		return nil, err
	}
	return selectionTexts(doc.Find(t.Head)), nil
}

// Rows returns the cell texts of every row.
func (t *CSS) Rows() ([]selenite.Row, error) {
	doc, err := t.parse()
	if err != nil {
		return nil, err
	}
	child := t.Child
	if child == "" {
		child = DefaultCSSChild
	}
	var rows []selenite.Row
	doc.Find(t.Body).Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, selectionTexts(tr.ChildrenFiltered(child)))
	})
	return rows, nil
}

func selectionTexts(sel *goquery.Selection) []string {
	out := make([]string, 0, sel.Length())
	sel.Each(func(_ int, s *goquery.Selection) {
		out = append(out, normalize(s.Text()))
	})
	return out
}
