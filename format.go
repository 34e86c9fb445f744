package vigenere

import (
	"fmt"
	"io"
)

// Binary format constants.
const (
	// magic is the 2-byte signature "VG" (Vigenère).
	magic = "VG"

	// formatVersion is the current binary format version.
	formatVersion = 0x01

	// algClassic identifies the classic 26-letter Vigenère transform.
	algClassic = 0x01

	// maxKeyIDLen is the longest key ID the one-byte length field can hold.
	maxKeyIDLen = 255

	// minHeaderSize is the minimum header size: magic(2) + version(1) + alg(1) + keyIDLen(1).
	minHeaderSize = 5
)

// header represents the parsed header of an encoded payload.
type header struct {
	version   byte
	algorithm byte
	keyID     string
}

// headerSize returns the total header size in bytes for the given key ID.
func headerSize(keyID string) int {
	return minHeaderSize + len(keyID)
}

// writeHeader writes the binary header to w.
// The key ID must be 1 to maxKeyIDLen bytes; nothing is written otherwise.
func writeHeader(w io.Writer, h *header) error {
	keyIDBytes := []byte(h.keyID)
	if len(keyIDBytes) == 0 {
		return fmt.Errorf("%w: empty key ID", ErrInvalidKeyID)
	}
	if len(keyIDBytes) > maxKeyIDLen {
		return fmt.Errorf("%w: key ID too long", ErrInvalidFormat)
	}

	if _, err := w.Write([]byte(magic)); err != nil {
		return err
	}
	meta := []byte{h.version, h.algorithm, byte(len(keyIDBytes))}
	if _, err := w.Write(meta); err != nil {
		return err
	}

	_, err := w.Write(keyIDBytes)
	return err
}

// readHeader parses the binary header from data, returning the header and the remaining payload.
// The payload aliases data; callers must not modify it.
func readHeader(data []byte) (*header, []byte, error) {
	if len(data) < minHeaderSize {
		return nil, nil, fmt.Errorf("%w: data too short", ErrInvalidFormat)
	}

	if string(data[0:2]) != magic {
		return nil, nil, fmt.Errorf("%w: invalid magic bytes", ErrInvalidFormat)
	}

	h := &header{
		version:   data[2],
		algorithm: data[3],
	}

	if h.version != formatVersion {
		return nil, nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidFormat, h.version)
	}

	if h.algorithm != algClassic {
		return nil, nil, fmt.Errorf("%w: unsupported algorithm %d", ErrInvalidFormat, h.algorithm)
	}

	keyIDLen := int(data[4])
	offset := minHeaderSize
	if len(data) < offset+keyIDLen {
		return nil, nil, fmt.Errorf("%w: data too short for header", ErrInvalidFormat)
	}
	if keyIDLen == 0 {
		return nil, nil, fmt.Errorf("%w: empty key ID", ErrInvalidFormat)
	}

	h.keyID = string(data[offset : offset+keyIDLen])
	offset += keyIDLen

	return h, data[offset:], nil
}
