package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const numberMatchFile = "numbermatch.yaml"

// LoadNumberMatch loads number match configuration.
// Search order: customPath -> ~/.numbermatch/configs/numbermatch.yaml -> ./configs/numbermatch.yaml -> embedded default
//
// Files are decoded over the built-in defaults, so a partial file only
// overrides the keys it sets. A custom path must exist and validate;
// other locations that are missing, malformed or invalid are skipped.
func LoadNumberMatch(customPath string) (NumberMatchConfig, error) {
	if customPath != "" {
		cfg, err := decodeFile(customPath)
		if err != nil {
			return DefaultNumberMatchConfig(), err
		}
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := decodeFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultNumberMatchConfig()
	if err := yaml.Unmarshal(defaultNumberMatchYAML, &cfg); err != nil {
		return DefaultNumberMatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the optional config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".numbermatch", "configs", numberMatchFile))
	}
	return append(paths, filepath.Join("configs", numberMatchFile))
}

func decodeFile(path string) (NumberMatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NumberMatchConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg := DefaultNumberMatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return NumberMatchConfig{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return NumberMatchConfig{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every setting the game cannot run with.
func (c NumberMatchConfig) Validate() error {
	var errs []error
	for _, p := range Presets {
		b, ok := c.Presets[p]
		if !ok {
			continue
		}
		if !b.valid() {
			errs = append(errs, fmt.Errorf("preset %s: need rows and cols in 1..%d and target in %d..%d, got %dx%d target %d",
				p, MaxBoardSide, MinTarget, MaxTarget, b.Rows, b.Cols, b.Target))
		}
	}
	if c.Scoring.CellPoints < 0 || c.Scoring.ComboBonus < 0 {
		errs = append(errs, errors.New("scoring: points must not be negative"))
	}
	if c.Timed.DurationSec < 1 {
		errs = append(errs, fmt.Errorf("timed: duration_sec must be positive, got %d", c.Timed.DurationSec))
	}
	if c.Timed.FreezeSec < 0 {
		errs = append(errs, fmt.Errorf("timed: freeze_sec must not be negative, got %d", c.Timed.FreezeSec))
	}
	for _, item := range []string{"hint", "shuffle", "bomb", "freeze"} {
		if price, _ := c.Shop.Price(item); price < 1 {
			errs = append(errs, fmt.Errorf("shop: %s price must be positive, got %d", item, price))
		}
	}
	return errors.Join(errs...)
}
