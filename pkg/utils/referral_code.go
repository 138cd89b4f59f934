package utils

import (
	"crypto/rand"
	"math/big"
)

// No 0/O or 1/I, codes get read aloud and typed by hand.
const referralAlphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"

// GenerateReferralCode returns a random uppercase invite code.
func GenerateReferralCode(length int) (string, error) {
	if length <= 0 {
		length = 8
	}

	code := make([]byte, length)
	max := big.NewInt(int64(len(referralAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = referralAlphabet[n.Int64()]
	}

	return string(code), nil
}
