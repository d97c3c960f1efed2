package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// Navigate navigates the session's page to the specified URL.
func (s *Session) Navigate(url string, opts NavigateOptions) error {
	// Build Playwright navigation options
	playwrightOpts := playwright.PageGotoOptions{}

	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		playwrightOpts.WaitUntil = &waitUntil
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	_, err := s.Page.Goto(url, playwrightOpts)
	if err != nil {
		if IsTimeout(err) {
			return fmt.Errorf("navigation to %s: %w: %v", url, ErrTimeout, err)
		}
		return fmt.Errorf("navigation failed: %w", err)
	}

	// Update current URL
	s.CurrentURL = s.Page.URL()
	return nil
}

// Fill fills an input element with the specified value.
func (s *Session) Fill(opts FillOptions) error {
	playwrightOpts := playwright.PageFillOptions{}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if err := s.Page.Fill(opts.Selector, opts.Value, playwrightOpts); err != nil {
		if IsTimeout(err) {
			return fmt.Errorf("fill %s: %w: %v", opts.Selector, ErrTimeout, err)
		}
		return fmt.Errorf("fill failed: %w", err)
	}

	return nil
}

// Click clicks an element matching the selector.
func (s *Session) Click(opts ClickOptions) error {
	playwrightOpts := playwright.PageClickOptions{}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	if err := s.Page.Click(opts.Selector, playwrightOpts); err != nil {
		if IsTimeout(err) {
			return fmt.Errorf("click %s: %w: %v", opts.Selector, ErrTimeout, err)
		}
		return fmt.Errorf("click failed: %w", err)
	}

	// Update current URL in case click caused navigation
	s.CurrentURL = s.Page.URL()
	return nil
}

// WaitFor waits for an element matching the selector to appear and returns
// its text content. A timeout surfaces as ErrTimeout.
func (s *Session) WaitFor(opts WaitOptions) (string, error) {
	if opts.Selector == "" {
		return "", fmt.Errorf("selector is required for wait")
	}

	playwrightOpts := playwright.PageWaitForSelectorOptions{}

	if opts.State != "" {
		state := playwright.WaitForSelectorState(opts.State)
		playwrightOpts.State = &state
	}

	if opts.Timeout > 0 {
		playwrightOpts.Timeout = &opts.Timeout
	}

	element, err := s.Page.WaitForSelector(opts.Selector, playwrightOpts)
	if err != nil {
		if IsTimeout(err) {
			return "", fmt.Errorf("wait for %s: %w: %v", opts.Selector, ErrTimeout, err)
		}
		return "", fmt.Errorf("wait failed: %w", err)
	}
	if element == nil {
		return "", fmt.Errorf("wait for %s: %w", opts.Selector, ErrNoElement)
	}

	text, err := element.TextContent()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return text, nil
}

// Text returns the text content of the first element matching the selector,
// without waiting. Returns ErrNoElement when nothing matches.
func (s *Session) Text(selector string) (string, error) {
	element, err := s.Page.QuerySelector(selector)
	if err != nil {
		return "", fmt.Errorf("selector query failed: %w", err)
	}
	if element == nil {
		return "", fmt.Errorf("%w: %s", ErrNoElement, selector)
	}

	text, err := element.TextContent()
	if err != nil {
		return "", fmt.Errorf("text extraction failed: %w", err)
	}
	return text, nil
}

// Content returns the full HTML of the current page.
func (s *Session) Content() (string, error) {
	html, err := s.Page.Content()
	if err != nil {
		return "", fmt.Errorf("content extraction failed: %w", err)
	}
	return html, nil
}

// Screenshot captures the current page to the given file path.
func (s *Session) Screenshot(path string) error {
	_, err := s.Page.Screenshot(playwright.PageScreenshotOptions{
		Path: &path,
	})
	if err != nil {
		return fmt.Errorf("screenshot failed: %w", err)
	}
	return nil
}

// URL returns the URL of the current page.
func (s *Session) URL() string {
	return s.Page.URL()
}
