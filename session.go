package selenite

import (
	"github.com/tebeka/selenium"
	"github.com/wanmail/selenite/settings"
)

// NewSession starts a WebDriver session configured by s and sizes its
// window.
func NewSession(s *settings.Settings) (selenium.WebDriver, error) {
	caps, err := s.Capabilities()
	if err != nil {
		return nil, err
	}
	wd, err := selenium.NewRemote(caps, s.RemoteURL)
	if err != nil {
		return nil, err
	}
	debugLog("started %s session %s", s.BrowserName, wd.SessionID())

	if s.MaximizeWindow {
		err = wd.MaximizeWindow("")
	} else if s.WindowWidth > 0 && s.WindowHeight > 0 {
		err = wd.ResizeWindow("", s.WindowWidth, s.WindowHeight)
	}
	if err != nil {
		wd.Quit()
		return nil, err
	}
	return wd, nil
}

// Configure applies the timeout and settle delay of s to the page.
func (p *FormsPage) Configure(s *settings.Settings) *FormsPage {
	p.Timeout = s.Timeout
	p.Settle = s.Settle
	return p
}
