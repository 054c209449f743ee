// Package aes implements the Rijndael encryption algorithm as standardized
// by FIPS 197, supporting the AES-128, AES-192 and AES-256 key sizes.
// See https://nvlpubs.nist.gov/nistpubs/fips/nist.fips.197.pdf
//
// Although the public API of this package adheres to common Go patterns,
// the internals strive to closely implement the details of the FIPS paper,
// so you should be able to easily use this package and the paper alongside one another.
//
// This package operates in place on caller-supplied buffers and performs no
// padding, key derivation, IV generation, or authentication of its own; see
// the blockcipher subpackage for ECB/CBC composition over multi-block data.
//
// This package aims to be clear and easy to read, rather than efficient,
// and may contain bugs. Do not use this package for real cryptography.
package aes
