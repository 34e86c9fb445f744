// Package vigenere implements the classical Vigenère cipher over text and a
// codec for github.com/rbaliyan/config that applies it to stored values.
//
// Vigenère is historically broken. It hides text from a casual reader and
// nothing more; do not use it where confidentiality matters.
//
// # Cipher
//
// A Cipher holds one key, stored in uppercase. Encrypt and Decrypt shift
// every ASCII letter of the text by the key letter at the current
// letter-count index, keep the letter's case, and copy every other
// character through unchanged. Only letters advance the index, so with key
// "AB" the text "A B" uses key position 0 for 'A' and key position 1 for 'B'.
//
//	c := vigenere.New()
//	_ = vigenere.SetKeyFromString(c, "KEY")
//	enc, _ := c.Encrypt([]rune("HELLO"))     // RIJVS
//
// The Kernel interface holds the primitive operations. EncryptWithKey,
// DecryptWithKey, IsValidKey, SetKeyFromString and KeyToString are built on
// Kernel alone and work with any implementation.
//
// # Codec
//
// Codec wraps an inner codec. Encoded values start with a short header
// ("VG", version, algorithm, key ID) followed by the serialized value with
// its ASCII letters shifted. The key ID selects the key on decode, so a
// StaticKeyProvider configured with WithOldKey can read values written
// before a key rotation. Encode and Decode emit OpenTelemetry spans and
// increment an operation counter.
package vigenere
