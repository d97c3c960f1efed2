package loor

import (
	"errors"

	"github.com/Gagege/loor-automator/pkg/browser"
)

var (
	// ErrAuth indicates login verification failed: the post-login marker
	// never appeared within the wait budget.
	ErrAuth = errors.New("login verification failed")

	// ErrNotFound indicates an expected page element was absent, e.g. a show
	// page without a fund button or a balance that could not be located.
	ErrNotFound = errors.New("expected page element not found")

	// ErrInsufficientBalance indicates the requested funding total exceeds
	// the current LOOT balance.
	ErrInsufficientBalance = errors.New("requested total exceeds balance")
)

// IsTimeout reports whether err is a page-level timeout from the browser layer.
func IsTimeout(err error) bool {
	return browser.IsTimeout(err)
}
