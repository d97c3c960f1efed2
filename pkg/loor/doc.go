// Package loor drives a Loor.tv account through a browser session.
//
// The driver is a thin, strictly sequential workflow: log in, read the
// LOOT balance, fund shows from the configured target list, claim the
// daily reward. Every operation is a navigate/wait/click/read sequence
// against rendered pages; success is detected by waiting for marker
// elements and matching substrings in alert banners.
//
// Client operates against the Page interface rather than a concrete
// Playwright page, so tests substitute a simulated page. Per-item
// failures inside batch operations are logged and skipped; only
// authentication and balance-read failures abort a run.
package loor
