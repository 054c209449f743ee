package aes

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewStateBlockOf_RoundTrip(t *testing.T) {
	var block Block
	for i := range block {
		block[i] = byte(i)
	}

	state := newState(block)
	require.Equal(t, block, blockOf(state))
}

func TestSubBytes_InvSubBytes_RoundTrip(t *testing.T) {
	initTables()

	var block Block
	for i := range block {
		block[i] = byte(i * 17)
	}
	state := newState(block)

	subBytes(state)
	require.NotEqual(t, block, blockOf(state))

	invSubBytes(state)
	require.Equal(t, block, blockOf(state))
}

func TestShiftRows_InvShiftRows_RoundTrip(t *testing.T) {
	var block Block
	for i := range block {
		block[i] = byte(i)
	}
	state := newState(block)

	shiftRows(state)
	invShiftRows(state)
	require.Equal(t, block, blockOf(state))
}

func TestMixColumns_InvMixColumns_RoundTrip(t *testing.T) {
	var block Block
	for i := range block {
		block[i] = byte(i * 3)
	}
	state := newState(block)

	mixColumns(state)
	invMixColumns(state)
	require.Equal(t, block, blockOf(state))
}

// FIPS-197 Appendix C.1's key and plaintext, round-tripping through
// encryptBlock/decryptBlock directly (below the Cipher wrapper).
func TestEncryptDecryptBlock_RoundTrip(t *testing.T) {
	initTables()

	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	schedule := expandKey(key, 4, 10)

	var block Block
	copy(block[:], mustDecode(t, "00112233445566778899aabbccddeeff"))

	ciphertext := encryptBlock(block, schedule, 10, nil)
	plaintext := decryptBlock(ciphertext, schedule, 10, nil)
	require.Equal(t, block, plaintext)
}

func TestEncryptBlock_ObserverSeesEveryStage(t *testing.T) {
	initTables()

	key, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)
	schedule := expandKey(key, 4, 10)

	var block Block
	copy(block[:], mustDecode(t, "00112233445566778899aabbccddeeff"))

	var rounds []int
	obs := ObserverFunc(func(stage string, round int, state Block) {
		rounds = append(rounds, round)
	})

	encryptBlock(block, schedule, 10, obs)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, rounds)
}

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
