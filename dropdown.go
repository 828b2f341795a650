package selenite

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tebeka/selenium"
)

// Dropdown wraps a native <select> element.
type Dropdown struct {
	element  selenium.WebElement
	multiple bool
}

// NewDropdown returns a Dropdown for el, which must be a select element.
func NewDropdown(el selenium.WebElement) (*Dropdown, error) {
	tagName, err := el.TagName()
	if err != nil {
		return nil, err
	}
	if strings.ToLower(tagName) != "select" {
		return nil, fmt.Errorf(`element should have been "select" but was %q`, tagName)
	}
	d := &Dropdown{element: el}
	// A missing attribute is reported as an error by some drivers.
	if mult, err := el.GetAttribute("multiple"); err == nil {
		d.multiple = mult != "" && strings.ToLower(mult) != "false"
	}
	return d, nil
}

// Element returns the underlying select element.
func (d *Dropdown) Element() selenium.WebElement {
	return d.element
}

// IsMultiple reports whether the select element accepts several selected
// options.
func (d *Dropdown) IsMultiple() bool {
	return d.multiple
}

// Options returns all options of the select element.
func (d *Dropdown) Options() ([]selenium.WebElement, error) {
	return d.element.FindElements(selenium.ByTagName, "option")
}

// SelectByVisibleText selects the options displaying text, such as
//
//	<option value="foo">Bar</option>
//
// for "Bar". Options are first matched on their whitespace-normalized text;
// failing that, options whose trimmed text equals the trimmed text are
// selected.
func (d *Dropdown) SelectByVisibleText(text string) error {
	options, err := d.element.FindElements(selenium.ByXPATH, `.//option[normalize-space(.) = `+xpathLiteral(text)+`]`)
	if err != nil {
		return err
	}
	for _, option := range options {
		if err := setSelected(option, true); err != nil {
			return err
		}
		if !d.multiple {
			return nil
		}
	}

	matched := len(options) > 0
	if !matched && strings.Contains(text, " ") {
		var candidates []selenium.WebElement
		if word := longestWord(text); word == "" {
			// The text is only spaces; every option is a candidate.
			candidates, err = d.Options()
		} else {
			candidates, err = d.element.FindElements(selenium.ByXPATH, `.//option[contains(., `+xpathLiteral(word)+`)]`)
		}
		if err != nil {
			return err
		}

		trimmed := strings.TrimSpace(text)
		for _, option := range candidates {
			o, err := option.Text()
			if err != nil {
				return err
			}
			if trimmed != strings.TrimSpace(o) {
				continue
			}
			if err := setSelected(option, true); err != nil {
				return err
			}
			if !d.multiple {
				return nil
			}
			matched = true
		}
	}
	if !matched {
		return fmt.Errorf("cannot locate option with text: %s", text)
	}
	return nil
}

// SelectByValue selects the options whose value attribute is value.
func (d *Dropdown) SelectByValue(value string) error {
	options, err := d.element.FindElements(selenium.ByXPATH, `.//option[@value = `+xpathLiteral(value)+`]`)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("cannot locate option with value: %s", value)
	}
	for _, option := range options {
		if err := setSelected(option, true); err != nil {
			return err
		}
		if !d.multiple {
			return nil
		}
	}
	return nil
}

// SelectByIndex selects the option whose index attribute is index. This is
// not merely the option's position in the list.
func (d *Dropdown) SelectByIndex(index int) error {
	idx := strconv.Itoa(index)
	options, err := d.element.FindElements(selenium.ByXPATH, `.//option[@index = "`+idx+`"]`)
	if err != nil {
		return err
	}
	if len(options) == 0 {
		return fmt.Errorf("cannot locate option with index: %s", idx)
	}
	return setSelected(options[0], true)
}

func setSelected(option selenium.WebElement, selected bool) error {
	sel, err := option.IsSelected()
	if err != nil {
		return err
	}
	if sel != selected {
		return option.Click()
	}
	return nil
}

func longestWord(s string) string {
	result := ""
	for _, w := range strings.Split(s, " ") {
		if len(w) > len(result) {
			result = w
		}
	}
	return result
}

// xpathLiteral quotes s as an XPath string literal. XPath has no escape
// sequences, so text holding both quote kinds is built with concat().
func xpathLiteral(s string) string {
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	parts := strings.Split(s, `"`)
	quoted := make([]string, 0, 2*len(parts))
	for i, p := range parts {
		if i > 0 {
			quoted = append(quoted, `'"'`)
		}
		if p != "" {
			quoted = append(quoted, `"`+p+`"`)
		}
	}
	return "concat(" + strings.Join(quoted, ", ") + ")"
}
