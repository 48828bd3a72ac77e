package pkg

import "github.com/google/uuid"

// GenerateGameID returns a fresh identifier for a started game.
func GenerateGameID() string {
	return uuid.NewString()
}
