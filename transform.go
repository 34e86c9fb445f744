package vigenere

// direction selects whether a key letter shifts text forward or backward.
type direction int

const (
	forward  direction = 1
	backward direction = -1
)

// transform shifts every letter of text by the key letter at the current
// letter-count index and copies non-letters through. Only letters advance the
// index. key must be non-empty and canonical; text is not modified.
func transform[T, K char](text []T, key []K, dir direction) []T {
	out := make([]T, len(text))
	n := 0
	for i, c := range text {
		if !isLetter(c) {
			out[i] = c
			continue
		}
		out[i] = shift(c, letterToIndex(key[n%len(key)]), dir)
		n++
	}
	return out
}

// shift moves the letter c by keyPos positions, keeping its case.
func shift[T char](c T, keyPos int, dir direction) T {
	pos := (letterToIndex(c) + int(dir)*keyPos + alphabetSize) % alphabetSize
	return indexToLetter[T](pos, isLower(c))
}
