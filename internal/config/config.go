// Package config is the single source of truth for simulation, resource, and
// observability settings, following the Default()/FromEnv() sectioning
// pattern used throughout this codebase's ambient configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

// ErrInvalidConfig is wrapped by every SimulationConfig validation failure,
// so callers can errors.Is-match the "configuration invalid" error kind
// regardless of which field tripped it.
var ErrInvalidConfig = errors.New("invalid simulation config")

// SimulationConfig holds every option enumerated for the core simulation.
type SimulationConfig struct {
	TicksPerSecond          int
	PeriodsPerMatch         int
	SecondsPerPeriod        int
	BallChargeIncreasePerTick float64
	BallChargeMaximum       float64
	GameConclusionScore     int

	// Scoring constants, not part of the enumerated config table but needed
	// to compute the scoring pass; exposed so tests can tune them.
	PlatePointsPerTick       int
	OwnedPlateMultiplier     int
}

// DefaultSimulation returns the default simulation configuration.
func DefaultSimulation() SimulationConfig {
	return SimulationConfig{
		TicksPerSecond:            10,
		PeriodsPerMatch:           2,
		SecondsPerPeriod:          240,
		BallChargeIncreasePerTick: 1.0,
		BallChargeMaximum:         100.0,
		GameConclusionScore:       0,
		PlatePointsPerTick:        1,
		OwnedPlateMultiplier:      2,
	}
}

// Validate enforces the one hard invariant on these settings: ticks_per_second
// must be nonzero, and at least one of game_conclusion_score or
// periods_per_match must be nonzero (a match with neither a period count nor
// a score cap never ends).
func (c SimulationConfig) Validate() error {
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("%w: ticks_per_second must be >= 1, got %d", ErrInvalidConfig, c.TicksPerSecond)
	}
	if c.GameConclusionScore == 0 && c.PeriodsPerMatch == 0 {
		return fmt.Errorf("%w: game_conclusion_score and periods_per_match cannot both be 0", ErrInvalidConfig)
	}
	if c.PeriodsPerMatch < 0 {
		return fmt.Errorf("%w: periods_per_match must be >= 0, got %d", ErrInvalidConfig, c.PeriodsPerMatch)
	}
	if c.SecondsPerPeriod < 0 {
		return fmt.Errorf("%w: seconds_per_period must be >= 0, got %d", ErrInvalidConfig, c.SecondsPerPeriod)
	}
	if c.BallChargeMaximum < 0 {
		return fmt.Errorf("%w: ball_charge_maximum must be >= 0, got %f", ErrInvalidConfig, c.BallChargeMaximum)
	}
	if c.GameConclusionScore < 0 {
		return fmt.Errorf("%w: game_conclusion_score must be >= 0, got %d", ErrInvalidConfig, c.GameConclusionScore)
	}
	return nil
}

// TicksPerMatch returns the total tick budget of the match, or 0 if the
// match is unbounded by period count (score-cap only).
func (c SimulationConfig) TicksPerMatch() int {
	if c.PeriodsPerMatch == 0 {
		return 0
	}
	return c.PeriodsPerMatch * c.SecondsPerPeriod * c.TicksPerSecond
}

// SimulationConfigFromEnv overlays environment variable overrides onto the
// default simulation config, matching VideoFromEnv's override idiom.
func SimulationConfigFromEnv() SimulationConfig {
	cfg := DefaultSimulation()
	if v := getEnvInt("SIM_TICKS_PER_SECOND", 0); v > 0 {
		cfg.TicksPerSecond = v
	}
	if v := getEnvInt("SIM_PERIODS_PER_MATCH", -1); v >= 0 {
		cfg.PeriodsPerMatch = v
	}
	if v := getEnvInt("SIM_SECONDS_PER_PERIOD", 0); v > 0 {
		cfg.SecondsPerPeriod = v
	}
	if v := getEnvFloat("SIM_BALL_CHARGE_INCREASE", -1); v >= 0 {
		cfg.BallChargeIncreasePerTick = v
	}
	if v := getEnvFloat("SIM_BALL_CHARGE_MAX", -1); v >= 0 {
		cfg.BallChargeMaximum = v
	}
	if v := getEnvInt("SIM_GAME_CONCLUSION_SCORE", -1); v >= 0 {
		cfg.GameConclusionScore = v
	}
	return cfg
}

// ResourceLimits bounds construction-time entity counts. Unlike the
// teacher's network-facing ResourceLimits (a DoS defense against untrusted
// connections), nothing here defends against untrusted input — MatchState
// construction is only ever called with test/fixture data. They are plain
// configuration values: nothing in the repository checks entity counts
// against them.
type ResourceLimits struct {
	MaxCombatants int
	MaxBalls      int
	MaxPlates     int
}

// DefaultLimits returns generous defaults.
func DefaultLimits() ResourceLimits {
	return ResourceLimits{
		MaxCombatants: 64,
		MaxBalls:      16,
		MaxPlates:     16,
	}
}

// ObservabilityConfig configures the ambient metrics/debug server that wraps
// the match driver from the outside.
type ObservabilityConfig struct {
	Enabled    bool
	ListenAddr string
}

// DefaultObservability mirrors the usual localhost-only debug server
// default.
func DefaultObservability() ObservabilityConfig {
	return ObservabilityConfig{
		Enabled:    true,
		ListenAddr: "127.0.0.1:6061",
	}
}

// AppConfig is the complete application configuration for cmd/matchrunner.
type AppConfig struct {
	Simulation    SimulationConfig
	Limits        ResourceLimits
	Observability ObservabilityConfig
}

// Load returns the complete configuration with environment overrides
// applied, the SSOT entry point mirroring config.Load in the ambient stack.
func Load() AppConfig {
	obs := DefaultObservability()
	if os.Getenv("DISABLE_DEBUG_SERVER") == "true" {
		obs.Enabled = false
	}
	if addr := os.Getenv("OBSERVABILITY_ADDR"); addr != "" {
		obs.ListenAddr = addr
	}
	return AppConfig{
		Simulation:    SimulationConfigFromEnv(),
		Limits:        DefaultLimits(),
		Observability: obs,
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
