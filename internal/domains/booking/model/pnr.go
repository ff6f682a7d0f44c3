package model

import (
	"math/rand/v2"
	"strings"
)

const (
	pnrAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	pnrLength   = 6
)

// GeneratePNR returns a random 6-character uppercase alphanumeric booking
// reference. Uniqueness is the caller's concern; regenerate on collision.
func GeneratePNR() string {
	var sb strings.Builder
	sb.Grow(pnrLength)

	for range pnrLength {
		sb.WriteByte(pnrAlphabet[rand.IntN(len(pnrAlphabet))])
	}

	return sb.String()
}
