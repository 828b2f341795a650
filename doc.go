/*
Package selenite provides page objects for browser-driven UI tests built on
top of a WebDriver client.

The heart of the package is table handling. A TableSource yields the header
cells and row cells of the table currently rendered on a page, a
PaginationControl turns to the next page, and a Pager walks every page to
collect or search the rows of a paginated table. Rows can be matched against
queries either as plain lists of cell texts or as records keyed by column
name.

Example usage:

	package main

	import (
		"fmt"

		"github.com/tebeka/selenium"
		"github.com/wanmail/selenite"
	)

	func main() {
		wd, err := selenium.NewRemote(selenium.Capabilities{"browserName": "chrome"}, "")
		if err != nil {
			panic(err)
		}
		defer wd.Quit()

		if err := wd.Get("https://example.com/orders"); err != nil {
			panic(err)
		}

		page := selenite.NewFormsPage(wd,
			&selenite.WebTable{
				Head: selenite.XPath("//table//thead//th"),
				Body: selenite.XPath("//table//tbody//tr"),
			},
			&selenite.WebPagination{
				Next:      selenite.XPath(`//li[contains(@class, "next")]`),
				PageIndex: selenite.XPath(`//li[contains(@class, "pager")]`),
			})

		matched, err := page.ShouldContainSubDictionaries([]map[string]string{
			{"Order": "1001"},
			{"Order": "1002", "Status": "Shipped"},
		})
		if err != nil {
			panic(err)
		}
		fmt.Println(matched)
	}
*/
package selenite
