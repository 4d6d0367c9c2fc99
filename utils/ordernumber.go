package utils

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateOrderNumber builds a human-facing order identifier: the current UTC
// time as YYYYMMDDHHMMSS followed by 6 random lowercase hex characters.
// Uniqueness is probabilistic, not guaranteed; the orders table carries a
// unique index as the backstop.
func GenerateOrderNumber(now time.Time) string {
	suffix := make([]byte, 3)
	if _, err := rand.Read(suffix); err != nil {
		panic(err)
	}
	return now.UTC().Format("20060102150405") + hex.EncodeToString(suffix)
}
