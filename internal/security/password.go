package security

import (
	"crypto/rand"
	"fmt"
)

// Ambiguous glyphs (0/O, 1/l/I) are left out because these passwords get
// read over the phone or typed from a note.
const temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

const minTemporaryPasswordLength = 8

// TemporaryPassword returns a cryptographically random password of at least
// eight characters, unbiased via rejection sampling.
func TemporaryPassword(length int) (string, error) {
	if length < minTemporaryPasswordLength {
		length = minTemporaryPasswordLength
	}

	alphabetSize := len(temporaryPasswordAlphabet)
	limit := 256 - (256 % alphabetSize)

	password := make([]byte, 0, length)
	buffer := make([]byte, 2*length)
	for len(password) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, randomByte := range buffer {
			if int(randomByte) >= limit {
				continue
			}
			password = append(password, temporaryPasswordAlphabet[int(randomByte)%alphabetSize])
			if len(password) == length {
				break
			}
		}
	}

	return string(password), nil
}
