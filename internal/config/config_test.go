package config

import (
	"errors"
	"testing"
)

func TestDefaultSimulationIsValid(t *testing.T) {
	if err := DefaultSimulation().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsZeroTicksPerSecond(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.TicksPerSecond = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidateRejectsNoTerminationCondition(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.GameConclusionScore = 0
	cfg.PeriodsPerMatch = 0
	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig when both termination conditions disabled, got %v", err)
	}
}

func TestValidateAllowsScoreCapOnlyMatch(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.PeriodsPerMatch = 0
	cfg.GameConclusionScore = 10
	if err := cfg.Validate(); err != nil {
		t.Fatalf("score-cap-only config should validate, got %v", err)
	}
	if got := cfg.TicksPerMatch(); got != 0 {
		t.Fatalf("expected unbounded tick budget (0), got %d", got)
	}
}

func TestTicksPerMatch(t *testing.T) {
	cfg := DefaultSimulation()
	cfg.TicksPerSecond = 10
	cfg.SecondsPerPeriod = 1
	cfg.PeriodsPerMatch = 2
	if got, want := cfg.TicksPerMatch(), 20; got != want {
		t.Fatalf("TicksPerMatch() = %d, want %d", got, want)
	}
}
