// Package blockcipher composes a single-block cipher (the aes package) into
// whole-buffer operations: ECB and CBC over buffers up to MaxBufferSize
// bytes. It keeps things simple by only allowing a 128-bit block size,
// irrespective of key size.
package blockcipher

import "github.com/oxcrypt/aescore"

// Block is an alias for aes.Block: the mode driver speaks the same 128-bit
// block type as the cipher it composes, so no conversion is needed at the
// boundary between this package and aes.
type Block = aes.Block
