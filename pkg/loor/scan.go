package loor

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Helpers for inspecting captured page HTML. The LiveView markup changes
// without notice, so these lean on loose structural cues rather than exact
// selectors.

// fundingOptions returns the LOOT amounts offered by the funding modal in
// the given HTML, in document order. An empty result means the modal did
// not expose discrete options (free-entry input only).
func fundingOptions(html string) []int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil
	}

	var amounts []int
	seen := map[int]bool{}

	add := func(n int) {
		if n > 0 && !seen[n] {
			seen[n] = true
			amounts = append(amounts, n)
		}
	}

	// LiveView buttons carry the amount as a phx-value attribute
	doc.Find("[phx-value-amount]").Each(func(_ int, sel *goquery.Selection) {
		raw, ok := sel.Attr("phx-value-amount")
		if !ok {
			return
		}
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			add(n)
		}
	})

	// Fallback: option buttons or labels whose text is an amount, e.g. "400 LOOT"
	doc.Find("button, label").Each(func(_ int, sel *goquery.Selection) {
		text := strings.TrimSpace(sel.Text())
		if !strings.Contains(strings.ToUpper(text), "LOOT") {
			return
		}
		if n, err := ParseBalance(text); err == nil {
			add(n)
		}
	})

	return amounts
}

// alreadyClaimed reports whether the quests page HTML indicates the daily
// LOOT reward was already collected.
func alreadyClaimed(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}

	text := strings.ToLower(doc.Text())
	for _, marker := range []string{
		"already claimed",
		"claimed today",
		"come back tomorrow",
	} {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// hasClaimForm reports whether the quests page HTML contains a submittable
// claim form.
func hasClaimForm(html string) bool {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return false
	}
	return doc.Find(`form button[type="submit"], form input[type="submit"]`).Length() > 0
}
