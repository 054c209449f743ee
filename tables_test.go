package aes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitTables_SboxKnownValues(t *testing.T) {
	initTables()

	// FIPS-197 Figure 7: sbox[0x00] = 0x63, sbox[0x01] = 0x7c, sbox[0x53] = 0xed.
	require.Equal(t, byte(0x63), sbox[0x00])
	require.Equal(t, byte(0x7c), sbox[0x01])
	require.Equal(t, byte(0xed), sbox[0x53])

	// FIPS-197 Figure 14: the inverse S-box undoes the forward one.
	for i := 0; i < 256; i++ {
		require.Equal(t, byte(i), invSbox[sbox[byte(i)]])
	}
}

func TestInitTables_Idempotent(t *testing.T) {
	initTables()
	first := sbox
	initTables()
	require.Equal(t, first, sbox)
}

func TestRcon(t *testing.T) {
	// FIPS-197 Section 5.2: Rcon[1] = 0x01000000, doubling (in GF(2^8)) each step.
	require.Equal(t, uint32(0x01000000), rcon[1])
	require.Equal(t, uint32(0x02000000), rcon[2])
	require.Equal(t, uint32(0x04000000), rcon[3])
	require.Equal(t, uint32(0x36000000), rcon[10])
}
