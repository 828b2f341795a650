package selenite

import "time"

// SetSleep replaces the function p pauses with after turning a page.
func SetSleep(p *Pager, sleep func(time.Duration)) {
	p.sleep = sleep
}
