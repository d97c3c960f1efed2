package browser

import (
	"errors"
	"strings"
)

var (
	// ErrTimeout is returned when a page operation exceeds its wait budget.
	ErrTimeout = errors.New("page operation timed out")

	// ErrNoElement is returned when a selector matches nothing on the page.
	ErrNoElement = errors.New("no element matches selector")

	// ErrNoSession is returned when an operation needs a session but none is active.
	ErrNoSession = errors.New("no active browser session")
)

// IsTimeout reports whether err represents a page-level timeout, either
// our own sentinel or a timeout surfaced by the Playwright driver.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTimeout) {
		return true
	}
	return strings.Contains(err.Error(), "Timeout") ||
		strings.Contains(err.Error(), "timeout")
}
