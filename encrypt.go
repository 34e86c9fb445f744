package vigenere

import (
	"bytes"
	"fmt"
)

// encrypt shifts every ASCII letter byte of plaintext with key and prepends a header
// naming the key. Other bytes, including multi-byte UTF-8 sequences, are copied unchanged.
func encrypt(plaintext []byte, key Key) ([]byte, error) {
	letters, err := normalizeKey(key.Letters)
	if err != nil {
		return nil, err
	}
	defer clear(letters)

	ciphertext := transform(plaintext, letters, forward)

	h := &header{
		version:   formatVersion,
		algorithm: algClassic,
		keyID:     key.ID,
	}

	var buf bytes.Buffer
	buf.Grow(headerSize(key.ID) + len(ciphertext))
	if err := writeHeader(&buf, h); err != nil {
		return nil, fmt.Errorf("vigenere: failed to write header: %w", err)
	}
	buf.Write(ciphertext)

	return buf.Bytes(), nil
}
