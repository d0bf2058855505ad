package logging

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const shortIDLen = 8

// GenerateSessionID creates a unique session identifier.
// Format: YYYYMMDD_HHMMSS_xxxxxxxx (timestamp + 8 hex chars of a random UUID)
// Example: 20261018_205106_a7b3c91e
func GenerateSessionID() string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return time.Now().Format("20060102_150405") + "_" + random[:shortIDLen]
}

// ShortSessionID extracts the random suffix from a full session ID.
// Example: "20261018_205106_a7b3c91e" -> "a7b3c91e"
func ShortSessionID(sessionID string) string {
	if len(sessionID) < shortIDLen {
		return sessionID
	}
	return sessionID[len(sessionID)-shortIDLen:]
}

// ParseSessionFilename extracts session info from a log filename.
// Example: "session_20261018_205106_a7b3c91e.log" -> "20261018_205106_a7b3c91e", true
func ParseSessionFilename(filename string) (sessionID string, ok bool) {
	const prefix = "session_"
	const suffix = ".log"

	if !strings.HasPrefix(filename, prefix) || !strings.HasSuffix(filename, suffix) {
		return "", false
	}
	id := filename[len(prefix) : len(filename)-len(suffix)]
	if id == "" {
		return "", false
	}
	return id, true
}

// SessionFilename generates the log filename for a session ID.
func SessionFilename(sessionID string) string {
	return "session_" + sessionID + ".log"
}
