package vigenere

// decrypt reverses encrypt. The key ID from the header is used to look up the key from the provider.
func decrypt(data []byte, provider KeyProvider) ([]byte, error) {
	h, ciphertext, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	key, err := provider.KeyByID(h.keyID)
	if err != nil {
		return nil, err
	}
	defer clear(key.Letters)

	letters, err := normalizeKey(key.Letters)
	if err != nil {
		return nil, err
	}
	defer clear(letters)

	return transform(ciphertext, letters, backward), nil
}
