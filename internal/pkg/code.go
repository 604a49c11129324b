package pkg

import "crypto/rand"

// RandDigits returns an n-digit verification code from crypto/rand.
// Bytes >= 250 are discarded to avoid modulo bias.
func RandDigits(n int) (string, error) {
	out := make([]byte, 0, n)
	buf := make([]byte, n)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			out = append(out, '0'+b%10)
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
