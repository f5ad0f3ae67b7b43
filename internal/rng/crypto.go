package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand, so shuffle seeds are not
// guessable from the process start time
type Crypto struct{}

// Intn returns a uniform random number in [0, n)
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
