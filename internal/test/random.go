package test

import (
	"math/rand"
	"sync"
	"time"
)

const credentialAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	randMu     sync.Mutex
	randSource = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a pseudo-random alphanumeric string with a
// length between minLen and maxLen inclusive. Useful for generating login
// and password material in tests.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	randMu.Lock()
	defer randMu.Unlock()

	length := minLen + randSource.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = credentialAlphabet[randSource.Intn(len(credentialAlphabet))]
	}
	return string(buf)
}
