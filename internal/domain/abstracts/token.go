package abstracts

import (
	"crypto/rand"
	"encoding/hex"
)

// NewAccessToken returns the per-submission bearer secret: 32 random bytes
// (256 bits) hex encoded. Treat the result like a password; it must never
// appear in logs or listing responses.
func NewAccessToken() string {
	bytes := make([]byte, 32)
	rand.Read(bytes)
	return hex.EncodeToString(bytes)
}
