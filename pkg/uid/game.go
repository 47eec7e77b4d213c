package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// GenerateGameID returns a short random hex ID for tagging a game in logs.
// Falls back to a timestamp if the random source fails.
func GenerateGameID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("g%x", time.Now().UnixNano())
	}
	return hex.EncodeToString(bytes)
}
