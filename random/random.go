// Package random generates opaque tokens, such as receipt identifiers.
package random

import (
	crand "crypto/rand"
	"math/big"
)

const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// String returns a crypto-random token of the given length. Tokens are not
// sequential, so one receipt id gives no hint of another.
func String(length int) string {
	b := make([]byte, length)
	l := big.NewInt(int64(len(charset)))
	for i := range b {
		num, err := crand.Int(crand.Reader, l)
		if err != nil {
			// crypto/rand only fails when the platform source is
			// broken, at which point serving requests is hopeless.
			panic(err)
		}
		b[i] = charset[num.Int64()]
	}
	return string(b)
}
