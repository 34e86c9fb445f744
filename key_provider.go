package vigenere

// Key represents a named Vigenère key.
type Key struct {
	// ID is a unique identifier for the key (e.g., "key-2024-01").
	ID string

	// Letters is the key material as uppercase ASCII letters.
	Letters []byte
}

// KeyProvider abstracts key retrieval for encoding and decoding.
// Implementations must be safe for concurrent use and must return keys the
// caller may modify or wipe.
type KeyProvider interface {
	// CurrentKey returns the key to use for new encodings.
	CurrentKey() (Key, error)

	// KeyByID returns the key with the given ID, used for decoding.
	// Returns ErrKeyNotFound if the key ID is not known.
	KeyByID(id string) (Key, error)
}

// KeyMaterial is unwrapped key material obtained from an external key manager.
type KeyMaterial struct {
	ID      string
	Letters []byte
}
