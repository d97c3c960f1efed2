package browser

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Manager owns the Playwright runtime and the single active browser session.
// The automator is strictly sequential, so at most one session exists at a time.
type Manager struct {
	mu          sync.Mutex
	playwright  *playwright.Playwright
	session     *Session
	initialized bool
}

// NewManager creates a new session manager.
func NewManager() *Manager {
	return &Manager{}
}

// Initialize installs and starts the Playwright runtime.
// This must be called before starting a session.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	// Keep driver install/start output away from our log stream
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return fmt.Errorf("failed to start playwright: %w", err)
	}

	m.playwright = pw
	m.initialized = true
	return nil
}

// Start launches a browser and creates the session with its context and page.
func (m *Manager) Start(opts SessionOptions) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return nil, fmt.Errorf("manager not initialized")
	}
	if m.session != nil {
		return nil, fmt.Errorf("session already active")
	}

	// Set defaults
	if opts.Viewport == nil {
		opts.Viewport = &Viewport{
			Width:  DefaultViewportWidth,
			Height: DefaultViewportHeight,
		}
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}

	// Launch browser
	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: &opts.Headless,
	}
	browser, err := m.playwright.Chromium.Launch(launchOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	// Create context
	contextOpts := playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{
			Width:  opts.Viewport.Width,
			Height: opts.Viewport.Height,
		},
	}
	context, err := browser.NewContext(contextOpts)
	if err != nil {
		browser.Close()
		return nil, fmt.Errorf("failed to create context: %w", err)
	}

	// Create page
	page, err := context.NewPage()
	if err != nil {
		context.Close()
		browser.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	page.SetDefaultTimeout(opts.Timeout)

	session := &Session{
		Browser:    browser,
		Context:    context,
		Page:       page,
		Headless:   opts.Headless,
		CreatedAt:  time.Now(),
		CurrentURL: "about:blank",
	}

	m.session = session
	return session, nil
}

// Session returns the active session, or an error if none exists.
func (m *Manager) Session() (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil, ErrNoSession
	}
	return m.session, nil
}

// Close closes the active session, leaving the Playwright runtime running.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}

	// Ignore individual close errors, continue cleanup
	_ = m.session.Page.Close()
	_ = m.session.Context.Close()
	_ = m.session.Browser.Close()

	m.session = nil
	return nil
}

// Shutdown closes the session and stops the Playwright runtime.
// Safe to call even when nothing was started.
func (m *Manager) Shutdown() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != nil {
		m.session.Page.Close()
		m.session.Context.Close()
		m.session.Browser.Close()
		m.session = nil
	}

	if m.initialized && m.playwright != nil {
		if err := m.playwright.Stop(); err != nil {
			return fmt.Errorf("failed to stop playwright: %w", err)
		}
		m.initialized = false
	}

	return nil
}
