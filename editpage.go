package selenite

import (
	"fmt"

	"github.com/tebeka/selenium"
)

// LocateFunc builds the locator of the tag elements that follow the label
// text on a form.
type LocateFunc func(label, tag string) Locator

// FollowingLabel locates the tag elements following the element whose
// normalized text is label.
func FollowingLabel(label, tag string) Locator {
	return XPath(fmt.Sprintf(`//*[normalize-space(text()) = %s]/following::%s`, xpathLiteral(label), tag))
}

// EditPage is a page object for a form whose fields are found by their
// labels.
type EditPage struct {
	Driver selenium.WebDriver
	// Locate builds field locators. If nil, FollowingLabel is used.
	Locate LocateFunc
	// SelectOption locates the options of the pop-up lists opened by input
	// boxes.
	SelectOption Locator
}

func (p *EditPage) locate(label, tag string) Locator {
	if p.Locate == nil {
		return FollowingLabel(label, tag)
	}
	return p.Locate(label, tag)
}

// AllBehindLabel returns every tag element located behind label.
func (p *EditPage) AllBehindLabel(tag, label string) ([]selenium.WebElement, error) {
	return p.locate(label, tag).findAll(p.Driver)
}

// BehindLabel returns the first enabled tag element located behind label.
func (p *EditPage) BehindLabel(tag, label string) (selenium.WebElement, error) {
	elems, err := p.AllBehindLabel(tag, label)
	if err != nil {
		return nil, err
	}
	for _, e := range elems {
		enabled, err := e.IsEnabled()
		if err != nil {
			return nil, err
		}
		if enabled {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no enabled %s behind label %q", tag, label)
}

func (p *EditPage) typeInto(tag, label, text string) error {
	el, err := p.BehindLabel(tag, label)
	if err != nil {
		return err
	}
	if err := el.Click(); err != nil {
		return err
	}
	if err := el.Clear(); err != nil {
		return err
	}
	return el.SendKeys(text)
}

func (p *EditPage) click(tag, label string) error {
	el, err := p.BehindLabel(tag, label)
	if err != nil {
		return err
	}
	return el.Click()
}

// selectOption clicks the first clickable pop-up option whose text contains
// option.
func (p *EditPage) selectOption(option string) error {
	elems, err := p.SelectOption.findAll(p.Driver)
	if err != nil {
		return err
	}
	has := Predicate{Kind: Includes, Expected: option}
	for _, e := range elems {
		text, err := e.Text()
		if err != nil {
			return err
		}
		if !has.Test(text) {
			continue
		}
		ok, err := clickable(e)
		if err != nil {
			return err
		}
		if ok {
			return e.Click()
		}
	}
	return fmt.Errorf("no clickable option %q among %s", option, p.SelectOption)
}

// InputTextAfterLabel replaces the text of the input behind label.
func (p *EditPage) InputTextAfterLabel(label, text string) error {
	return p.typeInto("input", label, text)
}

// InputLongTextAfterLabel replaces the text of the textarea behind label.
func (p *EditPage) InputLongTextAfterLabel(label, text string) error {
	return p.typeInto("textarea", label, text)
}

// ClickCheckboxAfterLabel clicks the input behind label.
func (p *EditPage) ClickCheckboxAfterLabel(label string) error {
	return p.click("input", label)
}

// InputTextAfterLabelAndSelectSelf types text into the input behind label
// and picks the suggested option showing that same text.
func (p *EditPage) InputTextAfterLabelAndSelectSelf(label, text string) error {
	return p.InputTextAfterLabelAndSelectOption(label, text, text)
}

// InputTextAfterLabelAndSelectOption types text into the input behind label
// and picks the suggested option showing option.
func (p *EditPage) InputTextAfterLabelAndSelectOption(label, text, option string) error {
	if err := p.InputTextAfterLabel(label, text); err != nil {
		return err
	}
	return p.selectOption(option)
}

// ClickInputBoxAfterLabelAndSelectOption opens the input behind label and
// picks option from its pop-up list.
func (p *EditPage) ClickInputBoxAfterLabelAndSelectOption(label, option string) error {
	if err := p.click("input", label); err != nil {
		return err
	}
	return p.selectOption(option)
}

// ClickButtonAfterLabel clicks the button behind label.
func (p *EditPage) ClickButtonAfterLabel(label string) error {
	return p.click("button", label)
}

// SelectDropdownMenuAfterLabel selects option by its visible text in the
// native select element behind label.
func (p *EditPage) SelectDropdownMenuAfterLabel(label, option string) error {
	el, err := p.BehindLabel("select", label)
	if err != nil {
		return err
	}
	d, err := NewDropdown(el)
	if err != nil {
		return err
	}
	return d.SelectByVisibleText(option)
}

// TextAfterLabel returns the text of the span behind label.
func (p *EditPage) TextAfterLabel(label string) (string, error) {
	el, err := p.BehindLabel("span", label)
	if err != nil {
		return "", err
	}
	return el.Text()
}
