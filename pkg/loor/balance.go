package loor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ParseBalance extracts the integer LOOT balance from rendered page text.
// The site renders balances like "1,234 LOOT" or a bare "850"; everything
// that is not a digit is stripped before parsing.
func ParseBalance(text string) (int, error) {
	var digits strings.Builder
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return 0, fmt.Errorf("%w: no digits in balance text %q", ErrNotFound, text)
	}

	balance, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0, fmt.Errorf("parsing balance from %q: %w", text, err)
	}
	return balance, nil
}

// Slug derives the URL slug for a show from its display name:
// lowercase, spaces replaced with hyphens.
func Slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}
