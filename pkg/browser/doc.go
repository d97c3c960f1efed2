// Package browser provides the Playwright session layer for the automator.
//
// The package is built around two core concepts:
//
//  1. Session: Encapsulates a Playwright browser instance with its context and page
//  2. Manager: Owns the Playwright runtime and the single active session
//
// # Session Lifecycle
//
// The automator drives exactly one browser session per run:
//
//  1. Initialize: the Manager installs and starts the Playwright runtime
//  2. Start: a Session is created (headless unless debug mode is on)
//  3. Use: navigation, form filling, clicking, and waiting operate on the session
//  4. Shutdown: the session and the Playwright runtime are torn down,
//     guaranteed via defer on all exit paths
//
// All waits are fixed-timeout polls against the rendered page; timeouts
// surface as ErrTimeout so callers can classify them.
//
// # Example Usage
//
//	manager := browser.NewManager()
//	if err := manager.Initialize(); err != nil { ... }
//	defer manager.Shutdown()
//
//	session, err := manager.Start(browser.SessionOptions{Headless: true})
//	if err != nil { ... }
//
//	err = session.Navigate("https://www.loor.tv/login", browser.NavigateOptions{
//	    WaitUntil: "networkidle",
//	})
package browser
