package selenite_test

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/wanmail/selenite"
	"github.com/wanmail/selenite/internal/pagetest"
)

var (
	page1 = []selenite.Row{{"a", "1"}, {"b", "2"}}
	page2 = []selenite.Row{{"c", "3"}}
	page3 = []selenite.Row{{"d", "4"}, {"a", "1"}}
)

func newPager(tbl *pagetest.Table) (*selenite.Pager, *[]time.Duration) {
	p := selenite.NewPager(tbl, tbl)
	var slept []time.Duration
	selenite.SetSleep(p, func(d time.Duration) { slept = append(slept, d) })
	return p, &slept
}

func TestAggregateRows(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2, page3)
	p, slept := newPager(tbl)

	got, err := p.AggregateRows()
	if err != nil {
		t.Fatalf("AggregateRows() returned error: %v", err)
	}
	want := []selenite.Row{{"a", "1"}, {"b", "2"}, {"c", "3"}, {"d", "4"}, {"a", "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AggregateRows() returned diff (-want/+got):\n%s", diff)
	}
	if tbl.HasNextCalls != 3 || tbl.NextCalls != 2 {
		t.Errorf("HasNextPage called %d times and NextPage %d times, want 3 and 2", tbl.HasNextCalls, tbl.NextCalls)
	}
	if diff := cmp.Diff([]time.Duration{selenite.DefaultSettle, selenite.DefaultSettle}, *slept); diff != "" {
		t.Errorf("settle pauses returned diff (-want/+got):\n%s", diff)
	}
}

func TestAggregateRowsSinglePage(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1)
	p, slept := newPager(tbl)

	got, err := p.AggregateRows()
	if err != nil {
		t.Fatalf("AggregateRows() returned error: %v", err)
	}
	if diff := cmp.Diff(page1, got); diff != "" {
		t.Errorf("AggregateRows() returned diff (-want/+got):\n%s", diff)
	}
	if tbl.NextCalls != 0 || len(*slept) != 0 {
		t.Errorf("single page: NextPage called %d times, slept %d times, want 0 and 0", tbl.NextCalls, len(*slept))
	}
}

func TestTraverse(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2, page3)
	p, _ := newPager(tbl)

	var sizes []int
	got, err := selenite.Traverse(p, func(s selenite.Snapshot) (int, error) {
		sizes = append(sizes, len(s.Rows))
		return len(s.Rows) * 10, nil
	})
	if err != nil {
		t.Fatalf("Traverse() returned error: %v", err)
	}
	if got != 20 {
		t.Errorf("Traverse() = %d, want the last page's result 20", got)
	}
	if diff := cmp.Diff([]int{2, 1, 2}, sizes); diff != "" {
		t.Errorf("visited pages returned diff (-want/+got):\n%s", diff)
	}
}

func TestTraverseVisitError(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2, page3)
	p, _ := newPager(tbl)
	boom := errors.New("boom")

	calls := 0
	_, err := selenite.Traverse(p, func(selenite.Snapshot) (struct{}, error) {
		calls++
		if calls == 2 {
			return struct{}{}, boom
		}
		return struct{}{}, nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("Traverse() returned error %v, want %v", err, boom)
	}
	if tbl.Visited() != 2 {
		t.Errorf("Traverse() visited %d pages, want 2", tbl.Visited())
	}
}

func TestFindFirstNonEmpty(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, nil, nil, []selenite.Row{{"x", "9"}}, page1)
	p, _ := newPager(tbl)

	got, err := selenite.FindFirstNonEmpty(p, func(s selenite.Snapshot) ([]selenite.Row, error) {
		return s.Rows, nil
	})
	if err != nil {
		t.Fatalf("FindFirstNonEmpty() returned error: %v", err)
	}
	if diff := cmp.Diff([]selenite.Row{{"x", "9"}}, got); diff != "" {
		t.Errorf("FindFirstNonEmpty() returned diff (-want/+got):\n%s", diff)
	}
	if tbl.NextCalls != 2 || tbl.Current != 2 {
		t.Errorf("NextPage called %d times, stopped on page %d, want 2 and 2", tbl.NextCalls, tbl.Current)
	}
}

func TestFindFirstNonEmptyNoMatch(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, nil, nil)
	p, _ := newPager(tbl)

	got, err := selenite.FindFirstNonEmpty(p, func(s selenite.Snapshot) ([]selenite.Row, error) {
		return s.Rows, nil
	})
	if err != nil || len(got) != 0 {
		t.Errorf("FindFirstNonEmpty() = %q, %v, want an empty result and no error", got, err)
	}
	if tbl.Visited() != 2 {
		t.Errorf("FindFirstNonEmpty() visited %d pages, want 2", tbl.Visited())
	}
}

func TestFindFirstNonEmptyForever(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, nil, page2)
	tbl.Forever = true
	p, _ := newPager(tbl)

	got, err := selenite.FindFirstNonEmpty(p, func(s selenite.Snapshot) ([]selenite.Row, error) {
		return s.Rows, nil
	})
	if err != nil {
		t.Fatalf("FindFirstNonEmpty() returned error: %v", err)
	}
	if diff := cmp.Diff(page2, got); diff != "" {
		t.Errorf("FindFirstNonEmpty() returned diff (-want/+got):\n%s", diff)
	}
}

func TestSearchPages(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, nil, []selenite.Row{{"x", "9"}}, page1)
	p, _ := newPager(tbl)

	got, err := selenite.SearchPages(p, func() ([]selenite.Row, error) {
		return tbl.Pages[tbl.Current].Rows, nil
	})
	if err != nil {
		t.Fatalf("SearchPages() returned error: %v", err)
	}
	if diff := cmp.Diff([]selenite.Row{{"x", "9"}}, got); diff != "" {
		t.Errorf("SearchPages() returned diff (-want/+got):\n%s", diff)
	}
	if tbl.Current != 1 || tbl.NextCalls != 1 {
		t.Errorf("SearchPages() stopped on page %d after %d page turns, want 1 and 1", tbl.Current, tbl.NextCalls)
	}
	if tbl.HeaderReads != 0 || tbl.RowReads != 0 {
		t.Errorf("SearchPages() read headers %d and rows %d times, want no reads", tbl.HeaderReads, tbl.RowReads)
	}
}

func TestAggregateRecords(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2)
	// Later headers are ignored unless StrictHeaders is set.
	tbl.Pages[1].Headers = []string{"key", "value"}
	p, _ := newPager(tbl)

	got, err := p.AggregateRecords()
	if err != nil {
		t.Fatalf("AggregateRecords() returned error: %v", err)
	}
	want := []selenite.Record{
		{"k": "a", "v": "1"},
		{"k": "b", "v": "2"},
		{"k": "c", "v": "3"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AggregateRecords() returned diff (-want/+got):\n%s", diff)
	}
}

func TestAggregateRecordsStrictHeaders(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2, page3)
	tbl.Pages[2].Headers = []string{"k"}
	p, _ := newPager(tbl)
	p.StrictHeaders = true

	_, err := p.AggregateRecords()
	var ce *selenite.ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("AggregateRecords() returned error %v, want a *ConfigurationError", err)
	}
	if ce.Page != 2 {
		t.Errorf("ConfigurationError.Page = %d, want 2", ce.Page)
	}
	if diff := cmp.Diff([]string{"k"}, ce.Got); diff != "" {
		t.Errorf("ConfigurationError.Got returned diff (-want/+got):\n%s", diff)
	}
}

func TestPagerErrors(t *testing.T) {
	readErr := errors.New("stale element")
	tbl := pagetest.New([]string{"k", "v"}, page1, page2)
	tbl.ReadErr = readErr
	p, _ := newPager(tbl)
	if _, err := p.AggregateRows(); !errors.Is(err, readErr) {
		t.Errorf("AggregateRows() returned error %v, want %v", err, readErr)
	}

	nextErr := errors.New("click intercepted")
	tbl = pagetest.New([]string{"k", "v"}, page1, page2)
	tbl.NextErr = nextErr
	p, _ = newPager(tbl)
	if _, err := p.AggregateRecords(); !errors.Is(err, nextErr) {
		t.Errorf("AggregateRecords() returned error %v, want %v", err, nextErr)
	}
}

func TestZeroSettle(t *testing.T) {
	tbl := pagetest.New([]string{"k", "v"}, page1, page2)
	p, slept := newPager(tbl)
	p.Settle = 0
	if _, err := p.AggregateRows(); err != nil {
		t.Fatalf("AggregateRows() returned error: %v", err)
	}
	if len(*slept) != 0 {
		t.Errorf("slept %v with a zero Settle, want no pause", *slept)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[selenite.State]string{
		selenite.OnPage:    "on page",
		selenite.Advancing: "advancing",
		selenite.Done:      "done",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
