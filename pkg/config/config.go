// Package config loads and validates the YAML target list for funding runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfig indicates a bad or missing configuration file.
var ErrConfig = errors.New("invalid configuration")

// AllowedAmounts are the LOOT funding tiers the site offers.
var AllowedAmounts = []int{100, 400, 800}

// AllowedAmount reports whether amount is one of the offered funding tiers.
func AllowedAmount(amount int) bool {
	for _, a := range AllowedAmounts {
		if a == amount {
			return true
		}
	}
	return false
}

// MediaItem is a single funding target from the config file.
type MediaItem struct {
	// Name is the display name of the show; its URL slug is derived from it
	Name string `yaml:"name"`

	// Type is a free-form label used only for log messages (e.g. "show", "film")
	Type string `yaml:"type"`

	// Amounts are the LOOT amounts to fund, each from the allowed tiers
	Amounts []int `yaml:"amounts"`

	// Amount is the legacy single-amount form, folded into Amounts on load
	Amount int `yaml:"amount,omitempty"`
}

// Config is the funding target list. Loaded once at startup and
// immutable for the run.
type Config struct {
	Media []MediaItem `yaml:"media"`
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrConfig, path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrConfig, path, err)
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize folds the legacy scalar amount field into the amounts list.
func (c *Config) normalize() {
	for i := range c.Media {
		item := &c.Media[i]
		if item.Amount != 0 {
			item.Amounts = append(item.Amounts, item.Amount)
			item.Amount = 0
		}
	}
}

// Validate checks the target list for structural problems.
func (c *Config) Validate() error {
	if len(c.Media) == 0 {
		return fmt.Errorf("%w: media list is empty", ErrConfig)
	}

	for i, item := range c.Media {
		if item.Name == "" {
			return fmt.Errorf("%w: media[%d] has no name", ErrConfig, i)
		}
		if len(item.Amounts) == 0 {
			return fmt.Errorf("%w: media[%d] (%s) has no amounts", ErrConfig, i, item.Name)
		}
		for _, amount := range item.Amounts {
			if !AllowedAmount(amount) {
				return fmt.Errorf("%w: media[%d] (%s) amount %d is not an offered tier %v",
					ErrConfig, i, item.Name, amount, AllowedAmounts)
			}
		}
	}
	return nil
}

// TotalRequested returns the sum of all requested funding amounts.
func (c *Config) TotalRequested() int {
	total := 0
	for _, item := range c.Media {
		for _, amount := range item.Amounts {
			total += amount
		}
	}
	return total
}
