package selenite

import (
	"strings"

	"github.com/tebeka/selenium"
)

// CookieHeader returns the browser's cookies formatted as the value of a
// Cookie request header, such as "a=1; b=2". Cookies keep the order in which
// their names first appear; a repeated name keeps its last value.
func CookieHeader(wd selenium.WebDriver) (string, error) {
	cookies, err := wd.GetCookies()
	if err != nil {
		return "", err
	}
	var names []string
	values := make(map[string]string)
	for _, c := range cookies {
		if _, ok := values[c.Name]; !ok {
			names = append(names, c.Name)
		}
		values[c.Name] = c.Value
	}
	pairs := make([]string, 0, len(names))
	for _, n := range names {
		pairs = append(pairs, n+"="+values[n])
	}
	return strings.Join(pairs, "; "), nil
}
