package selenite

import (
	"fmt"
	"strings"

	"github.com/tebeka/selenium"
)

// DefaultDisabled is the predicate a WebPagination applies to the class
// attribute of its next-page button when none is configured.
var DefaultDisabled = Predicate{Kind: Includes, Expected: "disabled"}

// WebPagination is a PaginationControl driven by a next-page button.
type WebPagination struct {
	Driver selenium.WebDriver
	// Next locates the next-page button.
	Next Locator
	// PageIndex locates the numbered page buttons.
	PageIndex Locator
	// Disabled is tested against the class attribute of the next-page button.
	// While it holds, there is no next page. If nil, DefaultDisabled is used.
	Disabled *Predicate
}

func (p *WebPagination) next() (selenium.WebElement, error) {
	return p.Driver.FindElement(p.Next.By, p.Next.Value)
}

// HasNextPage reports whether the next-page button is enabled.
func (p *WebPagination) HasNextPage() (bool, error) {
	btn, err := p.next()
	if err != nil {
		return false, err
	}
	class, err := btn.GetAttribute("class")
	if err != nil {
		return false, err
	}
	disabled := DefaultDisabled
	if p.Disabled != nil {
		disabled = *p.Disabled
	}
	return !disabled.Test(class), nil
}

// NextPage clicks the next-page button.
func (p *WebPagination) NextPage() error {
	btn, err := p.next()
	if err != nil {
		return err
	}
	debugLog("turning to next page via %s", p.Next)
	return btn.Click()
}

// BackToFirstPage clicks the displayed, enabled page button labelled "1".
func (p *WebPagination) BackToFirstPage() error {
	buttons, err := p.PageIndex.findAll(p.Driver)
	if err != nil {
		return err
	}
	for _, b := range buttons {
		text, err := b.Text()
		if err != nil {
			return err
		}
		if strings.TrimSpace(text) != "1" {
			continue
		}
		ok, err := clickable(b)
		if err != nil {
			return err
		}
		if ok {
			return b.Click()
		}
	}
	return fmt.Errorf("no clickable page button %q among %s", "1", p.PageIndex)
}

func clickable(e selenium.WebElement) (bool, error) {
	displayed, err := e.IsDisplayed()
	if err != nil || !displayed {
		return false, err
	}
	return e.IsEnabled()
}
