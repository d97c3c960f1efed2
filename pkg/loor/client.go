package loor

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Gagege/loor-automator/pkg/browser"
	"github.com/Gagege/loor-automator/pkg/config"
	"github.com/Gagege/loor-automator/pkg/logging"
)

const (
	// DefaultBaseURL is the production site.
	DefaultBaseURL = "https://www.loor.tv"

	// DefaultScreenshotDir is where debug screenshots land.
	DefaultScreenshotDir = "debug/screenshots"

	// loginTimeout is the wait budget for post-login verification (ms).
	loginTimeout = 10000.0

	// actionTimeout is the wait budget for everything else (ms).
	actionTimeout = 5000.0
)

// Credentials holds the account login.
type Credentials struct {
	Email    string
	Password string
}

// Options configures the driver.
type Options struct {
	// BaseURL overrides the site root (tests, staging)
	BaseURL string

	// Debug enables screenshots of key steps
	Debug bool

	// DryRun simulates funding and claiming without committing actions
	DryRun bool

	// ScreenshotDir overrides where debug screenshots are written
	ScreenshotDir string

	// Timeout overrides the per-action wait budget in milliseconds
	Timeout float64
}

// Client is the session driver: it owns one browser page and sequences
// the login/balance/fund/claim operations against it.
type Client struct {
	page     Page
	log      *logging.Logger
	opts     Options
	loggedIn bool
}

// NewClient creates a driver over the given page. The logger is required;
// pass one writing to io.Discard to silence it.
func NewClient(page Page, log *logging.Logger, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = DefaultScreenshotDir
	}
	return &Client{
		page: page,
		log:  log,
		opts: opts,
	}
}

// LoggedIn reports whether a login has been verified on this session.
func (c *Client) LoggedIn() bool {
	return c.loggedIn
}

func (c *Client) url(path string) string {
	return strings.TrimSuffix(c.opts.BaseURL, "/") + path
}

func (c *Client) actionBudget() float64 {
	if c.opts.Timeout > 0 {
		return c.opts.Timeout
	}
	return actionTimeout
}

func (c *Client) loginBudget() float64 {
	if c.opts.Timeout > 0 {
		return 2 * c.opts.Timeout
	}
	return loginTimeout
}

// Login navigates to the login page, submits the credentials, and verifies
// the login by waiting for a logged-in marker element. Returns ErrAuth when
// the marker never appears within the wait budget.
func (c *Client) Login(creds Credentials) error {
	if creds.Email == "" || creds.Password == "" {
		return fmt.Errorf("%w: missing email or password", ErrAuth)
	}

	c.log.Infof("logging in to %s as %s", c.opts.BaseURL, creds.Email)

	if err := c.page.Navigate(c.url("/login"), browser.NavigateOptions{
		WaitUntil: "load",
		Timeout:   c.loginBudget(),
	}); err != nil {
		return fmt.Errorf("opening login page: %w", err)
	}

	if err := c.page.Fill(browser.FillOptions{
		Selector: emailSelector,
		Value:    creds.Email,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("filling email: %w", err)
	}
	if err := c.page.Fill(browser.FillOptions{
		Selector: passwordSelector,
		Value:    creds.Password,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("filling password: %w", err)
	}

	c.debugShot("before_login")

	if err := c.page.Click(browser.ClickOptions{
		Selector: submitSelector,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("submitting login form: %w", err)
	}

	if _, err := c.page.WaitFor(browser.WaitOptions{
		Selector: loggedInSelector,
		State:    "visible",
		Timeout:  c.loginBudget(),
	}); err != nil {
		c.debugShot("login_failed")
		return fmt.Errorf("%w: %v", ErrAuth, err)
	}

	c.debugShot("after_login")
	c.loggedIn = true
	c.log.Infof("successfully logged in")
	return nil
}

// Balance navigates to the account page and reads the current LOOT balance.
// Selector fallbacks are walked in order; the first one whose text contains
// a digit wins. Returns ErrNotFound when no selector yields a balance.
func (c *Client) Balance() (int, error) {
	if err := c.page.Navigate(c.url("/user"), browser.NavigateOptions{
		WaitUntil: "load",
		Timeout:   c.actionBudget(),
	}); err != nil {
		return 0, fmt.Errorf("opening account page: %w", err)
	}

	for _, selector := range balanceSelectors {
		text, err := c.page.Text(selector)
		if err != nil {
			continue
		}
		balance, err := ParseBalance(text)
		if err != nil {
			continue
		}
		c.log.Infof("current balance: %d LOOT", balance)
		return balance, nil
	}

	c.debugShot("balance_not_found")
	return 0, fmt.Errorf("%w: balance not readable on %s", ErrNotFound, c.page.URL())
}

// FundShow navigates to the show's page and funds it with each of the given
// amounts. Per-amount failures are logged and skipped; the call fails only
// when the show page itself is missing or not open for funding.
func (c *Client) FundShow(name string, amounts []int) error {
	showURL := c.url("/project/" + Slug(name))
	c.log.Infof("funding %q (%s)", name, showURL)

	if err := c.page.Navigate(showURL, browser.NavigateOptions{
		WaitUntil: "load",
		Timeout:   c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("opening show page: %w", err)
	}

	// The fund button doubles as the "show exists and is fundable" marker
	if _, err := c.page.WaitFor(browser.WaitOptions{
		Selector: fundButtonSelector,
		State:    "visible",
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("%w: show %q not found or not available for funding: %v", ErrNotFound, name, err)
	}

	funded := 0
	for _, amount := range amounts {
		if err := c.fundAmount(name, amount); err != nil {
			c.log.Errorf("funding %q with %d LOOT: %v", name, amount, err)
			continue
		}
		funded++
	}

	c.log.Infof("%q: %d of %d amounts processed", name, funded, len(amounts))
	return nil
}

// fundAmount performs one funding action on the currently open show page.
func (c *Client) fundAmount(name string, amount int) error {
	if !config.AllowedAmount(amount) {
		return fmt.Errorf("amount %d is not an offered tier %v", amount, config.AllowedAmounts)
	}

	if err := c.page.Click(browser.ClickOptions{
		Selector: fundButtonSelector,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("opening funding modal: %w", err)
	}

	// When the modal exposes discrete amount options, refuse amounts it
	// does not offer instead of typing them blind.
	if html, err := c.page.Content(); err == nil {
		if options := fundingOptions(html); len(options) > 0 && !containsInt(options, amount) {
			return fmt.Errorf("modal offers %v LOOT, not %d", options, amount)
		}
	}

	if err := c.page.Fill(browser.FillOptions{
		Selector: amountInputSelector,
		Value:    strconv.Itoa(amount),
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("filling amount: %w", err)
	}

	if c.opts.DryRun {
		c.log.Infof("dry-run: would fund %q with %d LOOT", name, amount)
		return nil
	}

	c.debugShot("funding_" + Slug(name))

	if err := c.page.Click(browser.ClickOptions{
		Selector: submitSelector,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("submitting funding form: %w", err)
	}

	alert, err := c.page.WaitFor(browser.WaitOptions{
		Selector: alertSelector,
		State:    "visible",
		Timeout:  c.actionBudget(),
	})
	if err != nil {
		return fmt.Errorf("no funding confirmation: %w", err)
	}
	if !strings.Contains(strings.ToLower(alert), "success") {
		return fmt.Errorf("funding not confirmed: %q", strings.TrimSpace(alert))
	}

	c.log.Infof("successfully funded %q with %d LOOT", name, amount)
	return nil
}

// ClaimLoot claims the daily LOOT reward from the quests page. It is
// idempotent: when the reward was already claimed, or no claim form is
// rendered, it logs and returns nil.
func (c *Client) ClaimLoot() error {
	c.log.Infof("claiming daily LOOT")

	if err := c.page.Navigate(c.url("/user/quests"), browser.NavigateOptions{
		WaitUntil: "load",
		Timeout:   c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("opening quests page: %w", err)
	}

	if html, err := c.page.Content(); err == nil && alreadyClaimed(html) {
		c.log.Infof("daily LOOT already claimed")
		return nil
	}

	if _, err := c.page.WaitFor(browser.WaitOptions{
		Selector: claimFormSelector,
		State:    "visible",
		Timeout:  c.actionBudget(),
	}); err != nil {
		if IsTimeout(err) {
			c.log.Infof("no claim form found - might have already claimed today")
			return nil
		}
		return fmt.Errorf("locating claim form: %w", err)
	}

	if c.opts.DryRun {
		c.log.Infof("dry-run: would claim daily LOOT")
		return nil
	}

	if err := c.page.Click(browser.ClickOptions{
		Selector: submitSelector,
		Timeout:  c.actionBudget(),
	}); err != nil {
		return fmt.Errorf("submitting claim form: %w", err)
	}

	alert, err := c.page.WaitFor(browser.WaitOptions{
		Selector: alertSelector,
		State:    "visible",
		Timeout:  c.actionBudget(),
	})
	if err != nil {
		return fmt.Errorf("no claim confirmation: %w", err)
	}
	if !strings.Contains(strings.ToLower(alert), "success") {
		return fmt.Errorf("claim not confirmed: %q", strings.TrimSpace(alert))
	}

	c.log.Infof("successfully claimed LOOT")
	return nil
}

// FundAll funds every configured target, continuing past per-target
// failures. It refuses to start when the total requested amount exceeds
// the current balance, and aborts when the balance cannot be read.
func (c *Client) FundAll(media []config.MediaItem) error {
	total := 0
	for _, item := range media {
		for _, amount := range item.Amounts {
			total += amount
		}
	}

	balance, err := c.Balance()
	if err != nil {
		return fmt.Errorf("reading balance before funding: %w", err)
	}
	if total > balance {
		return fmt.Errorf("%w: requested %d LOOT, balance is %d", ErrInsufficientBalance, total, balance)
	}

	processed, failed := 0, 0
	for _, item := range media {
		if err := c.FundShow(item.Name, item.Amounts); err != nil {
			c.log.Errorf("failed to fund %s %q: %v", item.Type, item.Name, err)
			failed++
			continue
		}
		c.log.Infof("successfully processed %s: %s", item.Type, item.Name)
		processed++
	}

	c.log.Infof("funding run complete: %d targets processed, %d failed", processed, failed)
	return nil
}

// debugShot captures a screenshot when debug mode is enabled.
// Screenshot failures are logged, never fatal.
func (c *Client) debugShot(name string) {
	if !c.opts.Debug {
		return
	}

	if err := os.MkdirAll(c.opts.ScreenshotDir, 0750); err != nil {
		c.log.Warnf("creating screenshot directory: %v", err)
		return
	}

	path := filepath.Join(c.opts.ScreenshotDir, name+".png")
	if err := c.page.Screenshot(path); err != nil {
		c.log.Warnf("screenshot %s: %v", name, err)
		return
	}
	c.log.Debugf("saved screenshot %s", path)
}

func containsInt(haystack []int, needle int) bool {
	for _, n := range haystack {
		if n == needle {
			return true
		}
	}
	return false
}
