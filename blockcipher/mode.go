package blockcipher

import (
	"context"
	"sync"

	"github.com/oxcrypt/aescore"
)

// MaxBufferSize is the reference surface's cap on any buffer passed to the
// mode driver. It is a configurable constant, not an algorithmic limit: the
// key schedule is already bounded (60 words) regardless of buffer size.
const MaxBufferSize = 64

// ErrInvalidArgument is returned whenever a mode-driver entry point rejects
// its inputs: nil key/buffer/IV, a buffer of zero length, over
// MaxBufferSize, not a multiple of 16, or an unrecognized aes.Variant. It
// is the same sentinel the aes package returns, so callers can check
// errors.Is(err, blockcipher.ErrInvalidArgument) regardless of which layer
// rejected the call.
var ErrInvalidArgument = aes.ErrInvalidArgument

// blockWalk holds everything a validated call needs to walk buf block by
// block: the schedule-bearing cipher and the block count.
type blockWalk struct {
	cipher    Cipher
	numBlocks int
}

// validate implements the common validation shared by every entry point in
// this package: non-nil key/buf, buffer size in (0, MaxBufferSize], a
// multiple of 16 (unaligned sizes are rejected outright rather than
// silently processed with uninitialized trailing padding), and a recognized
// Variant. No mutation happens before validation succeeds.
func validate(v aes.Variant, key, buf []byte) (blockWalk, error) {
	if key == nil || buf == nil {
		return blockWalk{}, ErrInvalidArgument
	}
	if len(buf) == 0 || len(buf) > MaxBufferSize || len(buf)%16 != 0 {
		return blockWalk{}, ErrInvalidArgument
	}

	c, err := aes.NewCipher(v, key)
	if err != nil {
		return blockWalk{}, err
	}

	return blockWalk{cipher: c, numBlocks: len(buf) / 16}, nil
}

func blockAt(buf []byte, idx int) Block {
	var b Block
	copy(b[:], buf[idx*16:idx*16+16])
	return b
}

func putBlock(buf []byte, idx int, b Block) {
	copy(buf[idx*16:idx*16+16], b[:])
}

func xorBlock(a, b Block) Block {
	var out Block
	for i := range out {
		out[i] = a[i] ^ b[i]
	}
	return out
}

// ECBEncrypt walks buf block by block, independently encrypting each block
// in place with the shared key schedule. ECB is retained for compatibility;
// it leaks repeated plaintext structure and should not be used for anything
// that matters.
func ECBEncrypt(ctx context.Context, v aes.Variant, key, buf []byte) error {
	return ecbWalk(ctx, v, key, buf, Cipher.EncryptBlock)
}

// ECBDecrypt is the inverse of ECBEncrypt.
func ECBDecrypt(ctx context.Context, v aes.Variant, key, buf []byte) error {
	return ecbWalk(ctx, v, key, buf, Cipher.DecryptBlock)
}

func ecbWalk(ctx context.Context, v aes.Variant, key, buf []byte, transform func(Cipher, Block) Block) error {
	w, err := validate(v, key, buf)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// ECB blocks are independent, so each goroutine only ever touches its
	// own 16-byte slice of buf; no synchronization is needed between them.
	var wg sync.WaitGroup
	wg.Add(w.numBlocks)
	for idx := 0; idx < w.numBlocks; idx++ {
		idx := idx
		go func() {
			defer wg.Done()
			putBlock(buf, idx, transform(w.cipher, blockAt(buf, idx)))
		}()
	}
	wg.Wait()

	return nil
}

// CBCEncrypt chains each block's encryption to the previous ciphertext, per
// NIST SP 800-38A Section 6.2: block 0 is XORed with iv before encryption,
// every subsequent block is XORed with the just-produced ciphertext of the
// previous block. iv must be exactly 16 bytes.
func CBCEncrypt(ctx context.Context, v aes.Variant, key, iv, buf []byte) error {
	w, err := validate(v, key, buf)
	if err != nil {
		return err
	}
	if iv == nil || len(iv) != 16 {
		return ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var chain Block
	copy(chain[:], iv)

	for idx := 0; idx < w.numBlocks; idx++ {
		ciphertext := w.cipher.EncryptBlock(xorBlock(blockAt(buf, idx), chain))
		putBlock(buf, idx, ciphertext)
		chain = ciphertext
	}

	return nil
}

// CBCDecrypt is the inverse of CBCEncrypt. It must walk buf in reverse:
// decrypting block i needs the original ciphertext of block i-1, which an
// in-place forward walk would have already overwritten with plaintext.
func CBCDecrypt(ctx context.Context, v aes.Variant, key, iv, buf []byte) error {
	w, err := validate(v, key, buf)
	if err != nil {
		return err
	}
	if iv == nil || len(iv) != 16 {
		return ErrInvalidArgument
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	for idx := w.numBlocks - 1; idx > 0; idx-- {
		prevCiphertext := blockAt(buf, idx-1)
		plaintext := xorBlock(w.cipher.DecryptBlock(blockAt(buf, idx)), prevCiphertext)
		putBlock(buf, idx, plaintext)
	}

	if w.numBlocks > 0 {
		var ivBlock Block
		copy(ivBlock[:], iv)
		plaintext := xorBlock(w.cipher.DecryptBlock(blockAt(buf, 0)), ivBlock)
		putBlock(buf, 0, plaintext)
	}

	return nil
}
