package selenite

import (
	"time"

	"github.com/golang/glog"
)

// State is a position of a Pager in its walk over a paginated table.
type State int

// The states of a walk. A walk starts OnPage at whatever page is displayed.
const (
	OnPage State = iota
	Advancing
	Done
)

func (s State) String() string {
	switch s {
	case OnPage:
		return "on page"
	case Advancing:
		return "advancing"
	case Done:
		return "done"
	}
	return "unknown"
}

// Pager walks a paginated table page by page.
//
// A walk ends only when Control reports that there is no next page. A
// control that always reports one makes the walk run forever; callers that
// need a deadline must enforce it around the call.
//
// A Pager holds no state between walks, but a walk drives a live page, so two
// walks over the same page must not run at the same time.
type Pager struct {
	Source  TableSource
	Control PaginationControl
	// Settle is the pause after each page turn, giving the page time to
	// render the new rows.
	Settle time.Duration
	// StrictHeaders makes AggregateRecords fail with a *ConfigurationError
	// when a later page shows different headers than the first page. By
	// default the first page's headers are used for every page unchecked.
	StrictHeaders bool

	sleep func(time.Duration)
}

// NewPager returns a Pager over src and ctl that settles for DefaultSettle
// after each page turn.
func NewPager(src TableSource, ctl PaginationControl) *Pager {
	return &Pager{Source: src, Control: ctl, Settle: DefaultSettle}
}

func (p *Pager) wait() {
	if p.Settle <= 0 {
		return
	}
	sleep := p.sleep
	if sleep == nil {
		sleep = time.Sleep
	}
	sleep(p.Settle)
}

// walk reads the current page, hands it to visit and turns the page, until
// visit asks to stop or there is no next page.
func (p *Pager) walk(visit func(page int, s Snapshot) (stop bool, err error)) error {
	return p.turn(true, visit)
}

// turn drives the walk. Unless read is set, the table is not read and visit
// gets an empty Snapshot.
func (p *Pager) turn(read bool, visit func(page int, s Snapshot) (stop bool, err error)) error {
	state, page := OnPage, 0
	for {
		next := state
		switch state {
		case OnPage:
			var s Snapshot
			if read {
				var err error
				if s, err = ReadSnapshot(p.Source); err != nil {
					return err
				}
			}
			stop, err := visit(page, s)
			if err != nil {
				return err
			}
			if stop {
				next = Done
				break
			}
			more, err := p.Control.HasNextPage()
			if err != nil {
				return err
			}
			if more {
				next = Advancing
			} else {
				next = Done
			}
		case Advancing:
			if err := p.Control.NextPage(); err != nil {
				return err
			}
			p.wait()
			page++
			next = OnPage
		case Done:
			debugLog("pager visited %d pages", page+1)
			return nil
		}
		glog.V(2).Infof("pager: page %d: %s -> %s", page, state, next)
		state = next
	}
}

// Traverse calls visit with every page of p's table, in order, and returns
// the result of the last call. It stops at the first error.
func Traverse[R any](p *Pager, visit func(Snapshot) (R, error)) (R, error) {
	var res R
	err := p.walk(func(_ int, s Snapshot) (bool, error) {
		var err error
		res, err = visit(s)
		return false, err
	})
	return res, err
}

// FindFirstNonEmpty calls search with each page of p's table until it returns
// a non-empty result, and returns that result. Pages after the matching one
// are not visited. If no page matches, the last (empty) result is returned.
func FindFirstNonEmpty[T any](p *Pager, search func(Snapshot) ([]T, error)) ([]T, error) {
	var res []T
	err := p.walk(func(_ int, s Snapshot) (bool, error) {
		var err error
		res, err = search(s)
		return len(res) > 0, err
	})
	return res, err
}

// SearchPages is like FindFirstNonEmpty for searches that query the page
// themselves. The table is not read through p.Source, so only Control is
// used.
func SearchPages[T any](p *Pager, search func() ([]T, error)) ([]T, error) {
	var res []T
	err := p.turn(false, func(int, Snapshot) (bool, error) {
		var err error
		res, err = search()
		return len(res) > 0, err
	})
	return res, err
}

// AggregateRows returns the rows of every page of p's table, in page order
// and then row order. Duplicates are kept.
func (p *Pager) AggregateRows() ([]Row, error) {
	var all []Row
	if _, err := Traverse(p, func(s Snapshot) (int, error) {
		all = append(all, s.Rows...)
		return len(all), nil
	}); err != nil {
		return nil, err
	}
	return all, nil
}

// AggregateRecords returns the rows of every page of p's table as records,
// keyed by the headers read from the first page.
func (p *Pager) AggregateRecords() ([]Record, error) {
	var (
		headers []string
		all     []Row
	)
	err := p.walk(func(page int, s Snapshot) (bool, error) {
		if page == 0 {
			headers = s.Headers
		} else if p.StrictHeaders && !sameHeaders(headers, s.Headers) {
			return false, &ConfigurationError{Page: page, Want: headers, Got: s.Headers}
		}
		all = append(all, s.Rows...)
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return ZipRecords(headers, all...), nil
}

func sameHeaders(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
