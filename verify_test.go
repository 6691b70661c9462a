package arith_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/calcutil/arith"
)

func TestVerify(t *testing.T) {
	var reported []string
	n := arith.Verify(func(input string, want, got float64, err error) {
		reported = append(reported, input)
	})
	assert.Zero(t, n, "fixed cases failed: %v", reported)
	assert.Empty(t, reported)
}

func TestVerifyNilReport(t *testing.T) {
	assert.NotPanics(t, func() { arith.Verify(nil) })
}
