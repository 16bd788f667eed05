// Package solana holds the small amount of Solana address handling the API needs.
package solana

import "github.com/mr-tron/base58"

// PublicKeyLength is the size of an ed25519 public key in bytes.
const PublicKeyLength = 32

// IsPublicKey reports whether s is a base58 string that decodes to a 32-byte public key.
func IsPublicKey(s string) bool {
	if s == "" {
		return false
	}
	b, err := base58.Decode(s)
	if err != nil {
		return false
	}
	return len(b) == PublicKeyLength
}
