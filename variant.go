package aes

import "errors"

// ErrInvalidArgument is returned by every entry point in this package and in
// the blockcipher subpackage when the caller's inputs fail validation: a
// zero-length or oversize buffer, a key of the wrong length, or an unknown
// Variant. The algorithm itself cannot fail on valid inputs; the only other
// error the blockcipher entry points return is their context's error when
// that context is already done.
var ErrInvalidArgument = errors.New("aes: invalid argument")

// Variant selects a key size, and therefore the number of round keys and
// rounds that the cipher runs. See FIPS-197 Section 2.2 for Nk/Nb/Nr.
type Variant int

const (
	AES128 Variant = iota
	AES192
	AES256
)

// numColumns is Nb in FIPS-197: the number of 32-bit words in the state.
// Rijndael supports a variable block size, but AES always fixes this at 4.
const numColumns = 4

// params holds the (Nk, Nb, Nr) triple for a Variant.
type params struct {
	numKeyWords int // Nk
	numColumns  int // Nb
	numRounds   int // Nr
}

// Params returns the (Nk, Nb, Nr) triple for v, and reports whether v is a
// recognized variant.
func (v Variant) Params() (p params, ok bool) {
	switch v {
	case AES128:
		return params{numKeyWords: 4, numColumns: numColumns, numRounds: 10}, true
	case AES192:
		return params{numKeyWords: 6, numColumns: numColumns, numRounds: 12}, true
	case AES256:
		return params{numKeyWords: 8, numColumns: numColumns, numRounds: 14}, true
	default:
		return params{}, false
	}
}

// KeySize returns the expected key length in bytes for v, or 0 if v is not
// a recognized variant.
func (v Variant) KeySize() int {
	p, ok := v.Params()
	if !ok {
		return 0
	}
	return 4 * p.numKeyWords
}

// String renders a Variant as "AES-128", "AES-192" or "AES-256".
func (v Variant) String() string {
	switch v {
	case AES128:
		return "AES-128"
	case AES192:
		return "AES-192"
	case AES256:
		return "AES-256"
	default:
		return "unknown AES variant"
	}
}
