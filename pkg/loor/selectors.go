package loor

// CSS selectors used across the driver. The site is not ours, so every
// lookup that has shown variability keeps its observed fallbacks as an
// ordered list, walked in order until one matches.
const (
	// Login page
	emailSelector    = `input[name="user[email]"]`
	passwordSelector = `input[name="user[password]"]`
	submitSelector   = `button[type="submit"]`

	// Any of these indicates a logged-in user
	loggedInSelector = `.user-menu, .profile-menu, nav a[href*="user"]`

	// Show page
	fundButtonSelector  = `button[phx-click="fund_project"]`
	amountInputSelector = `input[type="number"]`

	// Outcome banner shown after funding or claiming
	alertSelector = `div[role="alert"]`

	// Quests page
	claimFormSelector = `form`
)

// balanceSelectors are tried in order until one yields text containing a digit.
var balanceSelectors = []string{
	`[data-role="loot-balance"]`,
	`.loot-balance`,
	`.user-menu .balance`,
	`header .balance`,
	`nav [class*="loot"]`,
}
