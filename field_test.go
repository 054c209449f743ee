package aes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestXtime(t *testing.T) {
	// FIPS-197 Appendix A.1 style spot checks: xtime(0x57) == 0xae,
	// and xtime must reduce mod the AES polynomial on overflow.
	require.Equal(t, byte(0xae), xtime(0x57))
	require.Equal(t, byte(0x47), xtime(0xae))
	require.Equal(t, byte(0x00), xtime(0x00))
}

func TestMultiply(t *testing.T) {
	// FIPS-197 Appendix A.1: 0x57 * 0x13 == 0xfe.
	require.Equal(t, byte(0xfe), multiply(0x57, 0x13))
	require.Equal(t, byte(0x00), multiply(0x57, 0x00))
	require.Equal(t, byte(0x01), multiply(0x01, 0x01))

	// multiplication in GF(2^8) is commutative.
	for a := 0; a < 256; a += 37 {
		for b := 0; b < 256; b += 53 {
			require.Equal(t, multiply(byte(a), byte(b)), multiply(byte(b), byte(a)))
		}
	}
}
