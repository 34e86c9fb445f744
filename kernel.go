package vigenere

// Kernel is the minimal set of operations a Vigenère cipher must provide.
// The secondary operations in this package (EncryptWithKey, KeyToString, ...)
// are written only in terms of Kernel and work with any implementation.
type Kernel interface {
	// SetKey replaces the stored key with an uppercase copy of key.
	// Returns ErrInvalidKey if key is empty or contains a non-letter.
	// The argument is not modified.
	SetKey(key []rune) error

	// Key returns a copy of the stored key. It is empty when no key is set.
	Key() []rune

	// Clear removes the stored key.
	Clear()

	// Encrypt returns text encrypted with the stored key.
	// Returns ErrEmptyKey if no key is set.
	Encrypt(text []rune) ([]rune, error)

	// Decrypt returns text decrypted with the stored key.
	// Returns ErrEmptyKey if no key is set.
	Decrypt(text []rune) ([]rune, error)
}
