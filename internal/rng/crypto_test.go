package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrypto_Intn(t *testing.T) {
	a := assert.New(t)

	c := Crypto{}
	found := make(map[int]bool)
	// astronomically unlikely to miss a bucket in a thousand draws
	for i := 0; i < 1000; i++ {
		v := c.Intn(5)
		a.True(v >= 0 && v < 5)
		found[v] = true
	}

	a.Len(found, 5)
}
