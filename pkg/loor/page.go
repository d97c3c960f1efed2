package loor

import "github.com/Gagege/loor-automator/pkg/browser"

// Page is the subset of browser session behavior the driver needs.
// *browser.Session satisfies it; tests substitute a simulated page.
type Page interface {
	// Navigate loads the given URL.
	Navigate(url string, opts browser.NavigateOptions) error

	// Fill fills an input element.
	Fill(opts browser.FillOptions) error

	// Click clicks an element.
	Click(opts browser.ClickOptions) error

	// WaitFor waits for an element to appear and returns its text content.
	WaitFor(opts browser.WaitOptions) (string, error)

	// Text returns the text of the first matching element without waiting.
	Text(selector string) (string, error)

	// Content returns the full HTML of the current page.
	Content() (string, error)

	// Screenshot captures the current page to a file.
	Screenshot(path string) error

	// URL returns the current page URL.
	URL() string
}

var _ Page = (*browser.Session)(nil)
