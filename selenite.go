package selenite

import (
	"time"

	"github.com/tebeka/selenium"
)

// DefaultSettle is how long a Pager waits after turning a page before it
// reads the table again.
const DefaultSettle = 500 * time.Millisecond

// DefaultChild is the XPath, relative to a row element, that locates the cells
// of that row.
const DefaultChild = "*"

// Row is the text of one rendered table row, one string per cell.
type Row []string

// Record is a table row keyed by column name. It is built by pairing the
// header list with a Row positionally.
type Record map[string]string

// Snapshot is a point-in-time read of a table's headers and rows.
type Snapshot struct {
	Headers []string
	Rows    []Row
}

// Records pairs the snapshot's headers with each of its rows.
func (s Snapshot) Records() []Record {
	return ZipRecords(s.Headers, s.Rows...)
}

// TableSource reflects a table as it is currently rendered.
//
// Implementations must re-read the underlying table on every call; callers
// rely on this to observe a new page after navigation.
type TableSource interface {
	// Headers returns the column names, in column order.
	Headers() ([]string, error)
	// Rows returns the cell texts of every row, in display order.
	Rows() ([]Row, error)
}

// PaginationControl moves a paginated table forward.
type PaginationControl interface {
	// HasNextPage reports whether a next page exists and can be navigated to.
	HasNextPage() (bool, error)
	// NextPage navigates to the next page.
	NextPage() error
}

// Locator is a WebDriver element query.
type Locator struct {
	// By is one of the selenium.By* methods.
	By string
	// Value is the selector in the syntax of By.
	Value string
}

// XPath returns a Locator that finds elements by XPath.
func XPath(value string) Locator {
	return Locator{By: selenium.ByXPATH, Value: value}
}

// CSS returns a Locator that finds elements by CSS selector.
func CSS(value string) Locator {
	return Locator{By: selenium.ByCSSSelector, Value: value}
}

// String returns the locator as "by=value".
func (l Locator) String() string {
	return l.By + "=" + l.Value
}

// elementFinder is implemented by both selenium.WebDriver and
// selenium.WebElement.
type elementFinder interface {
	FindElements(by, value string) ([]selenium.WebElement, error)
}

func (l Locator) findAll(f elementFinder) ([]selenium.WebElement, error) {
	return f.FindElements(l.By, l.Value)
}
