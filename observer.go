package aes

// Observer is a diagnostic hook invoked once per round of
// EncryptBlock/DecryptBlock. It mirrors the debug trace-mask of lower-level
// AES references, but as a pluggable interface rather than a global flag:
// disabled by default (nil observer, zero overhead beyond a nil check), and
// never part of the cryptographic contract: an Observer cannot alter the
// computation, only watch it.
type Observer interface {
	// Observe is called with the stage name ("addRoundKey", "subBytes",
	// "shiftRows", "mixColumns", or their inv* counterparts), the round
	// number it just ran (0 for the initial AddRoundKey), and the state
	// block as it stands immediately after that stage.
	Observe(stage string, round int, state Block)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(stage string, round int, state Block)

// Observe calls f.
func (f ObserverFunc) Observe(stage string, round int, state Block) {
	f(stage, round, state)
}

// SetObserver attaches o to c; pass nil to detach. Intended for tests and
// debugging tools, never for production request paths: the observer sees
// every intermediate state of the cipher, including values derived from
// the key.
func (c *Cipher) SetObserver(o Observer) {
	c.observer = o
}
