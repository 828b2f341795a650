package selenite_test

import (
	"errors"
	"fmt"
	"time"

	"github.com/tebeka/selenium"
	"github.com/wanmail/selenite"
)

// fakeElement implements the parts of selenium.WebElement used by the page
// objects. Calling any other method panics.
type fakeElement struct {
	selenium.WebElement

	tag      string
	text     string
	attrs    map[string]string
	hidden   bool
	disabled bool
	selected bool
	// children maps Locator.String() keys to child elements.
	children map[string][]selenium.WebElement
	onClick  func()

	clicks  int
	cleared bool
	keys    string
}

func (e *fakeElement) Text() (string, error) { return e.text, nil }
func (e *fakeElement) TagName() (string, error) { return e.tag, nil }

func (e *fakeElement) GetAttribute(name string) (string, error) {
	v, ok := e.attrs[name]
	if !ok {
		return "", errors.New("nil return value")
	}
	return v, nil
}

func (e *fakeElement) IsDisplayed() (bool, error) { return !e.hidden, nil }
func (e *fakeElement) IsEnabled() (bool, error) { return !e.disabled, nil }
func (e *fakeElement) IsSelected() (bool, error) { return e.selected, nil }

func (e *fakeElement) FindElements(by, value string) ([]selenium.WebElement, error) {
	return e.children[by+"="+value], nil
}

func (e *fakeElement) Click() error {
	e.clicks++
	if e.onClick != nil {
		e.onClick()
	}
	return nil
}

func (e *fakeElement) Clear() error {
	e.cleared = true
	e.keys = ""
	return nil
}

func (e *fakeElement) SendKeys(keys string) error {
	e.keys += keys
	return nil
}

// fakeDriver implements the parts of selenium.WebDriver used by the page
// objects.
type fakeDriver struct {
	selenium.WebDriver

	// elements maps Locator.String() keys to elements.
	elements map[string][]selenium.WebElement
	cookies  []selenium.Cookie
	waits    []time.Duration
	// finds counts FindElements calls by locator.
	finds map[string]int
}

func (d *fakeDriver) FindElements(by, value string) ([]selenium.WebElement, error) {
	if d.finds == nil {
		d.finds = make(map[string]int)
	}
	d.finds[by+"="+value]++
	return d.elements[by+"="+value], nil
}

func (d *fakeDriver) FindElement(by, value string) (selenium.WebElement, error) {
	elems := d.elements[by+"="+value]
	if len(elems) == 0 {
		return nil, fmt.Errorf("no such element: %s=%s", by, value)
	}
	return elems[0], nil
}

func (d *fakeDriver) GetCookies() ([]selenium.Cookie, error) {
	return d.cookies, nil
}

// WaitWithTimeout checks the condition once; the fake page never changes
// on its own.
func (d *fakeDriver) WaitWithTimeout(cond selenium.Condition, timeout time.Duration) error {
	d.waits = append(d.waits, timeout)
	ok, err := cond(d)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("timeout after %v", timeout)
	}
	return nil
}

func (d *fakeDriver) set(l selenite.Locator, elems ...selenium.WebElement) {
	if d.elements == nil {
		d.elements = make(map[string][]selenium.WebElement)
	}
	d.elements[l.String()] = elems
}

var (
	headLocator  = selenite.XPath("//table//thead//th")
	bodyLocator  = selenite.XPath("//table//tbody//tr")
	nextLocator  = selenite.XPath(`//li[@class="next"]`)
	pagerLocator = selenite.XPath(`//li[contains(@class, "pager")]`)
	cellLocator  = selenite.XPath(selenite.DefaultChild)
)

func textElements(texts ...string) []selenium.WebElement {
	elems := make([]selenium.WebElement, 0, len(texts))
	for _, t := range texts {
		elems = append(elems, &fakeElement{text: t})
	}
	return elems
}

func rowElement(cells ...string) *fakeElement {
	text := ""
	for i, c := range cells {
		if i > 0 {
			text += " "
		}
		text += c
	}
	return &fakeElement{
		tag:      "tr",
		text:     text,
		children: map[string][]selenium.WebElement{cellLocator.String(): textElements(cells...)},
	}
}

// site is a fake browser showing a paginated table. Clicking the next-page
// button shows the next page; clicking page button "1" shows the first.
type site struct {
	*fakeDriver
	headers []string
	pages   [][][]string
	page    int
	next    *fakeElement
}

func newSite(headers []string, pages ...[][]string) *site {
	s := &site{
		fakeDriver: &fakeDriver{},
		headers:    headers,
		pages:      pages,
	}
	s.next = &fakeElement{tag: "li", text: ">", onClick: func() { s.show(s.page + 1) }}
	var buttons []selenium.WebElement
	for i := range pages {
		i := i
		buttons = append(buttons, &fakeElement{
			tag:     "li",
			text:    fmt.Sprint(i + 1),
			onClick: func() { s.show(i) },
		})
	}
	s.set(nextLocator, s.next)
	s.set(pagerLocator, buttons...)
	s.show(0)
	return s
}

func (s *site) show(page int) {
	s.page = page
	s.set(headLocator, textElements(s.headers...)...)
	var rows []selenium.WebElement
	for _, r := range s.pages[page] {
		rows = append(rows, rowElement(r...))
	}
	s.set(bodyLocator, rows...)
	class := "next"
	if page == len(s.pages)-1 {
		class = "next is-disabled"
	}
	s.next.attrs = map[string]string{"class": class}
}

func (s *site) formsPage() *selenite.FormsPage {
	p := selenite.NewFormsPage(s,
		&selenite.WebTable{Head: headLocator, Body: bodyLocator},
		&selenite.WebPagination{Next: nextLocator, PageIndex: pagerLocator})
	p.Settle = 0
	return p
}
