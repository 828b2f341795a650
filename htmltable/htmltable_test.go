package htmltable

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wanmail/selenite"
	"github.com/wanmail/selenite/internal/pagetest"
)

const doc = `<html><body>
<table id="t">
  <thead><tr><th>Name</th><th> Size
  </th></tr></thead>
  <tbody>
    <tr><td>a.txt</td><td>1 KB</td></tr>
    <tr><td><b>b</b>.txt</td><td>  2   KB </td></tr>
  </tbody>
</table>
</body></html>`

var wantRows = []selenite.Row{{"a.txt", "1 KB"}, {"b.txt", "2 KB"}}

func TestXPath(t *testing.T) {
	tbl := &XPath{
		Source: Static(doc),
		Head:   `//table[@id="t"]/thead//th`,
		Body:   `//table[@id="t"]/tbody/tr`,
	}
	headers, err := tbl.Headers()
	if err != nil {
		t.Fatalf("Headers() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Name", "Size"}, headers); diff != "" {
		t.Errorf("Headers() returned diff (-want/+got):\n%s", diff)
	}
	rows, err := tbl.Rows()
	if err != nil {
		t.Fatalf("Rows() returned error: %v", err)
	}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Errorf("Rows() returned diff (-want/+got):\n%s", diff)
	}
}

func TestXPathInvalidExpression(t *testing.T) {
	tbl := &XPath{Source: Static(doc), Head: "//th[", Body: "//tr"}
	if _, err := tbl.Headers(); err == nil {
		t.Error("Headers() with an invalid expression returned no error")
	}
}

func TestCSS(t *testing.T) {
	tbl := &CSS{
		Source: Static(doc),
		Head:   "#t thead th",
		Body:   "#t tbody tr",
	}
	headers, err := tbl.Headers()
	if err != nil {
		t.Fatalf("Headers() returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"Name", "Size"}, headers); diff != "" {
		t.Errorf("Headers() returned diff (-want/+got):\n%s", diff)
	}
	rows, err := tbl.Rows()
	if err != nil {
		t.Fatalf("Rows() returned error: %v", err)
	}
	if diff := cmp.Diff(wantRows, rows); diff != "" {
		t.Errorf("Rows() returned diff (-want/+got):\n%s", diff)
	}
}

func TestSourceError(t *testing.T) {
	boom := errors.New("no session")
	src := func() (string, error) { return "", boom }
	if _, err := (&XPath{Source: src}).Rows(); !errors.Is(err, boom) {
		t.Errorf("XPath.Rows() returned error %v, want %v", err, boom)
	}
	if _, err := (&CSS{Source: src}).Headers(); !errors.Is(err, boom) {
		t.Errorf("CSS.Headers() returned error %v, want %v", err, boom)
	}
}

// Both table types re-read their source, so a Pager sees every page.
func TestPagerOverPageSource(t *testing.T) {
	pages := pagetest.New([]string{"id", "name"},
		[]selenite.Row{{"1", "ann"}, {"2", "bob"}},
		[]selenite.Row{{"3", "cat"}},
	)
	want := []selenite.Record{
		{"id": "1", "name": "ann"},
		{"id": "2", "name": "bob"},
		{"id": "3", "name": "cat"},
	}
	for _, tc := range []struct {
		name string
		src  selenite.TableSource
	}{
		{"xpath", &XPath{Source: pages.HTML, Head: "//thead//th", Body: "//tbody/tr"}},
		{"css", &CSS{Source: pages.HTML, Head: "thead th", Body: "tbody tr"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pages.Current = 0
			p := &selenite.Pager{Source: tc.src, Control: pages, Settle: time.Nanosecond}
			got, err := p.AggregateRecords()
			if err != nil {
				t.Fatalf("AggregateRecords() returned error: %v", err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("AggregateRecords() returned diff (-want/+got):\n%s", diff)
			}
		})
	}
}
