package vigenere

import "errors"

var (
	// ErrInvalidKey is returned when a key is empty or contains a character that is not an ASCII letter.
	ErrInvalidKey = errors.New("vigenere: invalid key, must be a non-empty sequence of letters")

	// ErrEmptyKey is returned when Encrypt or Decrypt is called on a cipher with no key set.
	ErrEmptyKey = errors.New("vigenere: no key set")

	// ErrKeyNotFound is returned when a key ID is not found in the provider.
	ErrKeyNotFound = errors.New("vigenere: key not found")

	// ErrInvalidKeyID is returned when a key ID is empty or invalid.
	ErrInvalidKeyID = errors.New("vigenere: invalid key ID")

	// ErrInvalidFormat is returned when encoded data has an invalid header.
	ErrInvalidFormat = errors.New("vigenere: invalid encoded data format")

	// ErrProviderDestroyed is returned when a destroyed StaticKeyProvider is used.
	ErrProviderDestroyed = errors.New("vigenere: key provider destroyed")
)

// IsInvalidKey returns true if the error is or wraps ErrInvalidKey.
func IsInvalidKey(err error) bool {
	return errors.Is(err, ErrInvalidKey)
}

// IsEmptyKey returns true if the error is or wraps ErrEmptyKey.
func IsEmptyKey(err error) bool {
	return errors.Is(err, ErrEmptyKey)
}

// IsKeyNotFound returns true if the error is or wraps ErrKeyNotFound.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// IsInvalidKeyID returns true if the error is or wraps ErrInvalidKeyID.
func IsInvalidKeyID(err error) bool {
	return errors.Is(err, ErrInvalidKeyID)
}

// IsInvalidFormat returns true if the error is or wraps ErrInvalidFormat.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, ErrInvalidFormat)
}

// IsProviderDestroyed returns true if the error is or wraps ErrProviderDestroyed.
func IsProviderDestroyed(err error) bool {
	return errors.Is(err, ErrProviderDestroyed)
}
