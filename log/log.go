// Package log reports page-object operations as titled steps.
package log

import (
	"strings"
	"time"

	"github.com/golang/glog"
)

// Translation replaces Old with New in step titles.
type Translation struct {
	Old, New string
}

// Reporter logs steps through glog. The zero value is ready to use.
type Reporter struct {
	// Translations are applied to every title, in order.
	Translations []Translation
	// Quiet suppresses the log lines of successful steps.
	Quiet bool
}

// Title applies the reporter's translations to title.
func (r Reporter) Title(title string) string {
	for _, t := range r.Translations {
		title = strings.Replace(title, t.Old, t.New, -1)
	}
	return title
}

// Step runs fn as a step named title and returns its error. Failed steps are
// always logged.
func (r Reporter) Step(title string, fn func() error) error {
	title = r.Title(title)
	if !r.Quiet {
		glog.Infof("step: %s", title)
	}
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)
	switch {
	case err != nil:
		glog.Errorf("step failed after %v: %s: %v", elapsed, title, err)
	case !r.Quiet:
		glog.Infof("step done in %v: %s", elapsed, title)
	}
	return err
}
