package vigenere

import "fmt"

// Cipher is a Vigenère cipher holding a single key, stored in uppercase.
// The zero value has no key.
//
// Cipher is not safe for concurrent use. EncryptWithKey and DecryptWithKey
// swap the stored key for the duration of the call, so callers sharing a
// Cipher must serialize access.
type Cipher struct {
	key []rune
}

// Compile-time interface check.
var _ Kernel = (*Cipher)(nil)

// New returns a Cipher with no key.
func New() *Cipher {
	return &Cipher{}
}

// NewInstance returns a new Cipher with no key.
func (c *Cipher) NewInstance() *Cipher {
	return New()
}

// SetKey replaces the stored key with an uppercase copy of key.
func (c *Cipher) SetKey(key []rune) error {
	k, err := normalizeKey(key)
	if err != nil {
		return err
	}
	c.key = k
	return nil
}

// Key returns a copy of the stored key.
func (c *Cipher) Key() []rune {
	k := make([]rune, len(c.key))
	copy(k, c.key)
	return k
}

// Clear removes the stored key.
func (c *Cipher) Clear() {
	c.key = nil
}

// Encrypt returns a new sequence with every letter of text shifted forward by the key.
// Non-letters are copied unchanged and do not consume a key position.
func (c *Cipher) Encrypt(text []rune) ([]rune, error) {
	if len(c.key) == 0 {
		return nil, ErrEmptyKey
	}
	return transform(text, c.key, forward), nil
}

// Decrypt reverses Encrypt.
func (c *Cipher) Decrypt(text []rune) ([]rune, error) {
	if len(c.key) == 0 {
		return nil, ErrEmptyKey
	}
	return transform(text, c.key, backward), nil
}

// TransferFrom moves the key of src into c and leaves src with no key.
// It panics if src is nil or is c.
func (c *Cipher) TransferFrom(src *Cipher) {
	if src == nil {
		panic("vigenere: TransferFrom source is nil")
	}
	if src == c {
		panic("vigenere: TransferFrom source is the receiver")
	}
	c.key = src.key
	src.key = nil
}

// Equal reports whether c and other hold the same key.
func (c *Cipher) Equal(other *Cipher) bool {
	if c == nil || other == nil {
		return c == other
	}
	return string(c.key) == string(other.key)
}

// String describes the cipher without revealing its key.
func (c *Cipher) String() string {
	if c == nil {
		return "<nil>"
	}
	return fmt.Sprintf("vigenere.Cipher{keyed:%t, len:%d}", len(c.key) > 0, len(c.key))
}
