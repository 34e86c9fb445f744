package vigenere

import "fmt"

// alphabetSize is the number of letters a key character can shift by.
const alphabetSize = 26

// char is an element of text the cipher can transform. Runes carry decoded text;
// bytes carry serialized payloads, where every UTF-8 continuation byte is a non-letter.
type char interface {
	~rune | ~byte
}

// isLetter reports whether c is an ASCII letter.
func isLetter[T char](c T) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isLower[T char](c T) bool {
	return c >= 'a' && c <= 'z'
}

func toUpper[T char](c T) T {
	if isLower(c) {
		return c - 'a' + 'A'
	}
	return c
}

// letterToIndex maps a letter of either case to its zero-based alphabet position.
func letterToIndex[T char](c T) int {
	return int(toUpper(c) - 'A')
}

// indexToLetter maps an alphabet position back to a letter, lowercase if lower is set.
func indexToLetter[T char](i int, lower bool) T {
	if lower {
		return T('a' + i)
	}
	return T('A' + i)
}

// normalizeKey validates key and returns an uppercase copy of it.
// The argument is never modified.
func normalizeKey[T char](key []T) ([]T, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: key is empty", ErrInvalidKey)
	}
	out := make([]T, len(key))
	for i, c := range key {
		if !isLetter(c) {
			return nil, fmt.Errorf("%w: %q at position %d is not a letter", ErrInvalidKey, rune(c), i)
		}
		out[i] = toUpper(c)
	}
	return out, nil
}

// validKey reports whether key is non-empty and made only of letters.
func validKey[T char](key []T) bool {
	if len(key) == 0 {
		return false
	}
	for _, c := range key {
		if !isLetter(c) {
			return false
		}
	}
	return true
}
