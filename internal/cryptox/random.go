// Package cryptox has cryptographic helpers.
package cryptox

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// RandomHex returns size random bytes, hex encoded.
func RandomHex(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("invalid size %d", size)
	}
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
