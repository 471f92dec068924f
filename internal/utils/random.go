package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

const RefNumberPrefix = "AP"

// RandomIntn returns a uniform random int in [0, n).
func RandomIntn(n int64) int64 {
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		panic(err)
	}
	return v.Int64()
}

// NewRefNumber builds AP-<unix millis>-<0..9999>.
func NewRefNumber(now time.Time) string {
	return fmt.Sprintf("%s-%d-%d", RefNumberPrefix, now.UnixMilli(), RandomIntn(10000))
}
