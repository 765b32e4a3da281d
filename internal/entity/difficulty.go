package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-solo/internal/apperror"
)

type Difficulty string

const (
	DifficultyEasy Difficulty = "easy"
	DifficultyHard Difficulty = "hard"
)

// ParseDifficulty - accepts "easy" or "hard", case-insensitive.
func ParseDifficulty(value string) (Difficulty, error) {
	switch difficulty := Difficulty(strings.ToLower(strings.TrimSpace(value))); difficulty {
	case DifficultyEasy, DifficultyHard:
		return difficulty, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

// Toggle - switches between the two tiers.
func (that Difficulty) Toggle() Difficulty {
	if that == DifficultyEasy {
		return DifficultyHard
	}
	return DifficultyEasy
}
