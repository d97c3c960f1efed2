package browser

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

// Session represents the active browser session with its associated resources.
type Session struct {
	// Browser is the Playwright browser instance
	Browser playwright.Browser

	// Context is the browser context (isolated session)
	Context playwright.BrowserContext

	// Page is the current active page
	Page playwright.Page

	// Headless indicates if the browser is running without a visible window
	Headless bool

	// CreatedAt is the timestamp when the session was created
	CreatedAt time.Time

	// CurrentURL is the URL of the current page
	CurrentURL string
}

// SessionOptions configures a new browser session.
type SessionOptions struct {
	// Headless controls whether the browser runs without a visible window
	Headless bool

	// Viewport sets the initial viewport size
	Viewport *Viewport

	// Timeout sets the default timeout for page operations (in milliseconds)
	Timeout float64
}

// Viewport represents the browser viewport dimensions.
type Viewport struct {
	Width  int
	Height int
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful
	// Valid values: "load", "domcontentloaded", "networkidle"
	WaitUntil string

	// Timeout in milliseconds (0 means default)
	Timeout float64
}

// ClickOptions configures element clicking behavior.
type ClickOptions struct {
	// Selector identifies the element to click
	Selector string

	// Timeout in milliseconds
	Timeout float64
}

// FillOptions configures form input filling.
type FillOptions struct {
	// Selector identifies the input element
	Selector string

	// Value is the text to fill
	Value string

	// Timeout in milliseconds
	Timeout float64
}

// WaitOptions configures waiting behavior.
type WaitOptions struct {
	// Selector to wait for
	Selector string

	// State to wait for: "attached", "detached", "visible", "hidden"
	State string

	// Timeout in milliseconds
	Timeout float64
}

// Default values for various operations
const (
	DefaultTimeout        = 30000.0 // 30 seconds in milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)
