package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for the game.
func GenerateGameID() string {
	return uuid.NewString()
}
