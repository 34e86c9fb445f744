package vigenere

import "fmt"

// EncryptWithKey encrypts text with key instead of the key stored in k.
// The key stored in k, text and key are all unchanged when it returns.
// Returns ErrInvalidKey if key is empty or contains a non-letter.
func EncryptWithKey(k Kernel, text, key []rune) ([]rune, error) {
	return withKey(k, key, func() ([]rune, error) {
		return k.Encrypt(text)
	})
}

// DecryptWithKey decrypts text with key instead of the key stored in k.
// The key stored in k, text and key are all unchanged when it returns.
// Returns ErrInvalidKey if key is empty or contains a non-letter.
func DecryptWithKey(k Kernel, text, key []rune) ([]rune, error) {
	return withKey(k, key, func() ([]rune, error) {
		return k.Decrypt(text)
	})
}

// withKey runs fn with key temporarily installed in k, then puts the previous
// key back. A previously empty key is restored with Clear, since SetKey
// rejects empty keys.
func withKey(k Kernel, key []rune, fn func() ([]rune, error)) (result []rune, err error) {
	if _, err := normalizeKey(key); err != nil {
		return nil, err
	}

	saved := k.Key()
	tmp := make([]rune, len(key))
	copy(tmp, key)
	if err := k.SetKey(tmp); err != nil {
		return nil, err
	}
	defer func() {
		if len(saved) == 0 {
			k.Clear()
			return
		}
		if rerr := k.SetKey(saved); rerr != nil && err == nil {
			result, err = nil, fmt.Errorf("vigenere: failed to restore key: %w", rerr)
		}
	}()

	return fn()
}

// IsValidKey reports whether the key stored in k is non-empty and made only of letters.
func IsValidKey(k Kernel) bool {
	return validKey(k.Key())
}

// SetKeyFromString sets the key stored in k from s.
// Returns ErrInvalidKey if s is empty or contains a non-letter.
func SetKeyFromString(k Kernel, s string) error {
	if s == "" {
		return fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	return k.SetKey(StringToSequence(s))
}

// KeyToString returns the key stored in k as a string.
func KeyToString(k Kernel) string {
	return SequenceToString(k.Key())
}

// StringToSequence converts s to a sequence of characters.
// The empty string yields an empty, non-nil sequence.
func StringToSequence(s string) []rune {
	seq := []rune(s)
	if seq == nil {
		seq = []rune{}
	}
	return seq
}

// SequenceToString converts seq to a string, preserving order.
func SequenceToString(seq []rune) string {
	return string(seq)
}
