package aes

// Cipher is a parsed key and its derived round-key schedule for one
// Variant. Building a Cipher runs the key schedule once; encrypting or
// decrypting any number of blocks afterwards reuses it.
//
// A Cipher is a call-local artifact: it holds the expanded schedule in
// memory for as long as it's reachable, and carries no state between
// Encrypt/Decrypt calls beyond that schedule.
type Cipher struct {
	variant   Variant
	schedule  []uint32
	numRounds int
	observer  Observer
}

// NewCipher builds a Cipher for v from key. key must be exactly
// v.KeySize() bytes (16/24/32 for AES-128/192/256); any other length, or
// an unrecognized Variant, returns ErrInvalidArgument.
func NewCipher(v Variant, key []byte) (*Cipher, error) {
	p, ok := v.Params()
	if !ok {
		return nil, ErrInvalidArgument
	}
	if key == nil || len(key) != 4*p.numKeyWords {
		return nil, ErrInvalidArgument
	}

	initTables()

	return &Cipher{
		variant:   v,
		schedule:  expandKey(key, p.numKeyWords, p.numRounds),
		numRounds: p.numRounds,
	}, nil
}

// Variant reports which AES variant c was built for.
func (c *Cipher) Variant() Variant {
	return c.variant
}

// EncryptBlock runs the forward cipher on a single 128-bit block.
func (c *Cipher) EncryptBlock(block Block) Block {
	return encryptBlock(block, c.schedule, c.numRounds, c.observer)
}

// DecryptBlock runs the inverse cipher on a single 128-bit block.
func (c *Cipher) DecryptBlock(block Block) Block {
	return decryptBlock(block, c.schedule, c.numRounds, c.observer)
}

// EncodeBlock implements the single-block encode entry point: buf must be
// 1..16 bytes. A short buffer is zero padded internally to one block, and
// only the first len(buf) bytes of the resulting ciphertext block are
// written back to buf; the rest of the block is discarded. Any other
// length, a nil key/buf, or an unrecognized Variant returns
// ErrInvalidArgument and leaves buf untouched.
func EncodeBlock(v Variant, key, buf []byte) error {
	c, block, err := prepareSingleBlock(v, key, buf)
	if err != nil {
		return err
	}
	out := c.EncryptBlock(block)
	copy(buf, out[:])
	return nil
}

// DecodeBlock implements the single-block decode entry point, handling buf
// the same way as EncodeBlock. It inverts EncodeBlock only for a full
// 16-byte buffer: a shorter buffer no longer holds the whole ciphertext
// block.
func DecodeBlock(v Variant, key, buf []byte) error {
	c, block, err := prepareSingleBlock(v, key, buf)
	if err != nil {
		return err
	}
	out := c.DecryptBlock(block)
	copy(buf, out[:])
	return nil
}

func prepareSingleBlock(v Variant, key, buf []byte) (*Cipher, Block, error) {
	if buf == nil || len(buf) == 0 || len(buf) > 16 {
		return nil, Block{}, ErrInvalidArgument
	}
	c, err := NewCipher(v, key)
	if err != nil {
		return nil, Block{}, err
	}
	var block Block
	copy(block[:], buf)
	return c, block, nil
}
