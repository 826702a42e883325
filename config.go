package gesture

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrInvalidTapMode is returned for a tap mode other than "movement" or "count".
var ErrInvalidTapMode = errors.New("invalid tap mode")

// Config holds user-configurable recognizer settings. It implements Settings.
type Config struct {
	// ZoomGestures enables two-finger pinch zoom. When false, two-finger
	// motion pans.
	ZoomGestures bool `yaml:"zoom_gestures"`
	// ZoomStartThreshold is the pinch distance change, in percent, a zoom
	// must exceed before scale changes are reported. 0 reports immediately.
	ZoomStartThreshold float64 `yaml:"zoom_start_threshold"`
	// TapMode is "movement" (taps must stay within TapMaxMovement) or
	// "count" (finger count only).
	TapMode        string  `yaml:"tap_mode"`
	TapMaxMovement float64 `yaml:"tap_max_movement"`
	// Debug enables reentrancy checks and state tracing on the recognizer.
	Debug bool `yaml:"debug"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		ZoomGestures:   true,
		TapMode:        TapMovementGated.String(),
		TapMaxMovement: DefaultTapMaxMovement,
	}
}

// LoadConfig reads configuration and validates it.
//
// Precedence (highest to lowest):
//  1. Environment variables (GESTURE_*)
//  2. Config file at path, if path is non-empty
//  3. Built-in defaults
func LoadConfig(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
	}

	if err := mergeEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) error {
	if v := os.Getenv("GESTURE_ZOOM_GESTURES"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid GESTURE_ZOOM_GESTURES %q: %w", v, err)
		}
		cfg.ZoomGestures = b
	}
	if v := os.Getenv("GESTURE_ZOOM_START_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid GESTURE_ZOOM_START_THRESHOLD %q: %w", v, err)
		}
		cfg.ZoomStartThreshold = f
	}
	if v := os.Getenv("GESTURE_TAP_MODE"); v != "" {
		cfg.TapMode = v
	}
	if v := os.Getenv("GESTURE_TAP_MAX_MOVEMENT"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid GESTURE_TAP_MAX_MOVEMENT %q: %w", v, err)
		}
		cfg.TapMaxMovement = f
	}
	if v := os.Getenv("GESTURE_DEBUG"); v == "true" || v == "1" {
		cfg.Debug = true
	}
	return nil
}

// Validate checks that every value is in range.
func (c *Config) Validate() error {
	if c.ZoomStartThreshold < 0 {
		return fmt.Errorf("zoom_start_threshold must not be negative, got %g", c.ZoomStartThreshold)
	}
	if c.TapMaxMovement < 0 {
		return fmt.Errorf("tap_max_movement must not be negative, got %g", c.TapMaxMovement)
	}
	if _, err := ParseTapMode(c.TapMode); err != nil {
		return fmt.Errorf("tap_mode %q: %w", c.TapMode, err)
	}
	return nil
}

// ZoomGesturesEnabled implements Settings.
func (c *Config) ZoomGesturesEnabled() bool { return c.ZoomGestures }

// TouchZoomStartThreshold implements Settings.
func (c *Config) TouchZoomStartThreshold() float64 { return c.ZoomStartThreshold }

// TapPolicy returns the configured tap policy. An invalid mode falls back to
// movement gating.
func (c *Config) TapPolicy() TapPolicy {
	mode, err := ParseTapMode(c.TapMode)
	if err != nil {
		mode = TapMovementGated
	}
	return TapPolicy{Mode: mode, MaxMovement: c.TapMaxMovement}
}

// Apply configures r with c: tap policy and debug mode. Settings are read
// from the Settings passed to NewRecognizer, usually c itself.
func (c *Config) Apply(r *Recognizer) {
	r.SetTapPolicy(c.TapPolicy())
	r.SetDebugMode(c.Debug)
}
