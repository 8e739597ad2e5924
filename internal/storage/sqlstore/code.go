package sqlstore

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeAlphabet is the base36 alphabet, upper-cased.
const codeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// CodeLength is the length of a bill share code.
const CodeLength = 7

// generateCode returns a random share code such as "K3Z9Q0B".
func generateCode() (string, error) {
	max := big.NewInt(int64(len(codeAlphabet)))
	code := make([]byte, CodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate bill code: %w", err)
		}
		code[i] = codeAlphabet[n.Int64()]
	}
	return string(code), nil
}
