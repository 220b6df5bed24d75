package random

import (
	"crypto/rand"
)

// Random generates identifiers. It exists so game ids can be fixed in tests.
type Random interface {
	// String returns length characters drawn uniformly from alphabet
	String(length int, alphabet string) string
}

// Crypto draws from crypto/rand
type Crypto struct{}

// New returns a crypto/rand backed Random
func New() Crypto {
	return Crypto{}
}

// String returns length characters drawn uniformly from the ASCII alphabet.
// Bytes at or above the largest multiple of len(alphabet) are rejected so no
// character is favoured.
func (Crypto) String(length int, alphabet string) string {
	if length <= 0 || len(alphabet) == 0 || len(alphabet) > 256 {
		return ""
	}

	limit := 256 - 256%len(alphabet)
	result := make([]byte, 0, length)
	buf := make([]byte, length*2)
	for len(result) < length {
		// crypto/rand.Read never returns an error
		_, _ = rand.Read(buf)
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			result = append(result, alphabet[int(b)%len(alphabet)])
			if len(result) == length {
				break
			}
		}
	}
	return string(result)
}
