package aes

import "github.com/oxcrypt/aescore/matrix"

// Block is a single 128-bit AES block.
type Block [16]byte

// mixColumnMatrix and invMixColumnMatrix are the fixed MDS matrix and its
// inverse used by mixColumns/invMixColumns, FIPS-197 Section 5.1.3/5.3.3.
var mixColumnMatrix = [4][4]byte{
	{0x02, 0x03, 0x01, 0x01},
	{0x01, 0x02, 0x03, 0x01},
	{0x01, 0x01, 0x02, 0x03},
	{0x03, 0x01, 0x01, 0x02},
}

var invMixColumnMatrix = [4][4]byte{
	{0x0e, 0x0b, 0x0d, 0x09},
	{0x09, 0x0e, 0x0b, 0x0d},
	{0x0d, 0x09, 0x0e, 0x0b},
	{0x0b, 0x0d, 0x09, 0x0e},
}

// newState parses a Block into the column-major 4x4 state matrix described
// by FIPS-197 Section 3.4: byte at row r, column c sits at offset 4c+r.
func newState(block Block) matrix.Matrix {
	state := matrix.EmptyMatrix(4, 4)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			state[r][c] = block[4*c+r]
		}
	}
	return state
}

// blockOf reassembles a state matrix back into a Block, inverting newState.
func blockOf(state matrix.Matrix) Block {
	var block Block
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			block[4*c+r] = state[r][c]
		}
	}
	return block
}

// subBytes replaces every byte of state with its S-box substitution,
// mutating state in place.
func subBytes(state matrix.Matrix) {
	for r := range state {
		for c := range state[r] {
			state[r][c] = sbox[state[r][c]]
		}
	}
}

// invSubBytes is the inverse of subBytes, using the inverse S-box.
func invSubBytes(state matrix.Matrix) {
	for r := range state {
		for c := range state[r] {
			state[r][c] = invSbox[state[r][c]]
		}
	}
}

// shiftRows cyclically rotates row r left by r positions, in place.
func shiftRows(state matrix.Matrix) {
	for r := 1; r < 4; r++ {
		row := state[r]
		rotated := append(append(matrix.Vector{}, row[r:]...), row[:r]...)
		copy(state[r], rotated)
	}
}

// invShiftRows is the inverse of shiftRows: row r rotated right by r.
func invShiftRows(state matrix.Matrix) {
	for r := 1; r < 4; r++ {
		row := state[r]
		pivot := 4 - r
		rotated := append(append(matrix.Vector{}, row[pivot:]...), row[:pivot]...)
		copy(state[r], rotated)
	}
}

// mixColumns replaces each column with its GF(2^8) matrix product against
// the fixed MDS matrix, in place.
func mixColumns(state matrix.Matrix) {
	mixColumnsWith(state, mixColumnMatrix)
}

// invMixColumns is the inverse of mixColumns, using the inverse MDS matrix.
func invMixColumns(state matrix.Matrix) {
	mixColumnsWith(state, invMixColumnMatrix)
}

func mixColumnsWith(state matrix.Matrix, coeffs [4][4]byte) {
	for c := 0; c < 4; c++ {
		col := matrix.ColumnVector(state, c)
		var mixed matrix.Vector = make(matrix.Vector, 4)
		for r := 0; r < 4; r++ {
			var v byte
			for k := 0; k < 4; k++ {
				v ^= multiply(coeffs[r][k], col[k])
			}
			mixed[r] = v
		}
		state.SetColumn(mixed, c)
	}
}

// addRoundKey XORs state with the four schedule words belonging to round,
// in place. schedule must hold at least numColumns*(round+1) words.
func addRoundKey(state matrix.Matrix, schedule []uint32, round int) {
	for c := 0; c < 4; c++ {
		w := schedule[round*numColumns+c]
		state[0][c] ^= byte(w >> 24)
		state[1][c] ^= byte(w >> 16)
		state[2][c] ^= byte(w >> 8)
		state[3][c] ^= byte(w)
	}
}

// encryptBlock runs the forward cipher (FIPS-197 Section 5.1) on block
// using schedule, over numRounds rounds. obs may be nil; when nil, every
// notify call below is a single nil check.
func encryptBlock(block Block, schedule []uint32, numRounds int, obs Observer) Block {
	state := newState(block)

	addRoundKey(state, schedule, 0)
	if obs != nil {
		obs.Observe("addRoundKey", 0, blockOf(state))
	}

	for round := 1; round < numRounds; round++ {
		subBytes(state)
		shiftRows(state)
		mixColumns(state)
		addRoundKey(state, schedule, round)
		if obs != nil {
			obs.Observe("addRoundKey", round, blockOf(state))
		}
	}

	subBytes(state)
	shiftRows(state)
	addRoundKey(state, schedule, numRounds)
	if obs != nil {
		obs.Observe("addRoundKey", numRounds, blockOf(state))
	}

	return blockOf(state)
}

// decryptBlock runs the inverse cipher (FIPS-197 Section 5.3) on block
// using schedule, over numRounds rounds. obs may be nil.
func decryptBlock(block Block, schedule []uint32, numRounds int, obs Observer) Block {
	state := newState(block)

	addRoundKey(state, schedule, numRounds)
	if obs != nil {
		obs.Observe("invAddRoundKey", numRounds, blockOf(state))
	}

	for round := numRounds - 1; round >= 1; round-- {
		invShiftRows(state)
		invSubBytes(state)
		addRoundKey(state, schedule, round)
		invMixColumns(state)
		if obs != nil {
			obs.Observe("invMixColumns", round, blockOf(state))
		}
	}

	invShiftRows(state)
	invSubBytes(state)
	addRoundKey(state, schedule, 0)
	if obs != nil {
		obs.Observe("invAddRoundKey", 0, blockOf(state))
	}

	return blockOf(state)
}
