package abstracts

import (
	"encoding/hex"
	"testing"
)

func TestNewAccessToken(t *testing.T) {
	token := NewAccessToken()

	if len(token) != 64 {
		t.Fatalf("token length = %d, want 64 hex chars (256 bits)", len(token))
	}
	if _, err := hex.DecodeString(token); err != nil {
		t.Fatalf("token is not hex: %v", err)
	}
}

func TestNewAccessTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := NewAccessToken()
		if seen[token] {
			t.Fatalf("duplicate token after %d draws", i)
		}
		seen[token] = true
	}
}
