package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty accepts a preset name or its level number.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return DifficultyEasy, nil
	case "medium", "normal", "2":
		return DifficultyMedium, nil
	case "hard", "3":
		return DifficultyHard, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, medium or hard)", s)
}

// Level returns the level-load difficulty for a preset. Actors behind a
// difficulty marker only spawn at or above the marker's level.
func (p DifficultyPreset) Level() int {
	switch p {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// ApplyDifficultyPreset sets the difficulty of cfg from a preset name.
func ApplyDifficultyPreset(cfg *EngineConfig, name string) error {
	p, err := ParseDifficulty(name)
	if err != nil {
		return err
	}
	cfg.Simulation.Difficulty = p
	return nil
}
