package vigenere

import (
	"fmt"
	"sync"

	"github.com/awnumar/memguard"
)

// StaticKeyProvider is a KeyProvider backed by in-memory keys.
// Key material is held in memguard enclaves and only decrypted into locked
// memory while a key is being copied out.
// It is safe for concurrent use.
type StaticKeyProvider struct {
	mu      sync.RWMutex
	current string
	keys    map[string]*memguard.Enclave
	err     error // deferred validation error from options
}

// StaticOption configures a StaticKeyProvider.
type StaticOption func(*StaticKeyProvider)

// WithOldKey adds a previous key for decoding during key rotation.
// The letters must be a non-empty sequence of ASCII letters and id must not be empty.
func WithOldKey(letters []byte, id string) StaticOption {
	return func(p *StaticKeyProvider) {
		if p.err != nil {
			return
		}
		if id == "" {
			p.err = fmt.Errorf("%w: old key ID must not be empty", ErrInvalidKeyID)
			return
		}
		e, err := sealKey(letters)
		if err != nil {
			p.err = fmt.Errorf("old key %q: %w", id, err)
			return
		}
		p.keys[id] = e
	}
}

// NewStaticKeyProvider creates a KeyProvider with the given current key.
// The letters must be a non-empty sequence of ASCII letters; they are stored
// in uppercase. The id identifies this key.
// Old keys can be added with WithOldKey for rotation support.
// Key letters are copied internally; the caller may safely wipe the original after construction.
func NewStaticKeyProvider(letters []byte, id string, opts ...StaticOption) (*StaticKeyProvider, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: key ID must not be empty", ErrInvalidKeyID)
	}
	e, err := sealKey(letters)
	if err != nil {
		return nil, err
	}

	p := &StaticKeyProvider{
		current: id,
		keys:    map[string]*memguard.Enclave{id: e},
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.err != nil {
		return nil, p.err
	}

	return p, nil
}

// NewKeyProviderFromMaterial creates a StaticKeyProvider from unwrapped key material.
// The first key becomes the current key; the rest are kept for decoding.
// The Letters of every entry are wiped before it returns, whether or not it succeeds.
func NewKeyProviderFromMaterial(keys ...KeyMaterial) (*StaticKeyProvider, error) {
	defer func() {
		for _, k := range keys {
			clear(k.Letters)
		}
	}()

	if len(keys) == 0 {
		return nil, fmt.Errorf("%w: at least one key is required", ErrInvalidKey)
	}

	opts := make([]StaticOption, 0, len(keys)-1)
	for _, k := range keys[1:] {
		opts = append(opts, WithOldKey(k.Letters, k.ID))
	}
	return NewStaticKeyProvider(keys[0].Letters, keys[0].ID, opts...)
}

// CurrentKey returns the current key for new encodings.
func (p *StaticKeyProvider) CurrentKey() (Key, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open(p.current)
}

// KeyByID returns the key with the given ID.
func (p *StaticKeyProvider) KeyByID(id string) (Key, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.open(id)
}

// Destroy drops all key material. Later lookups return ErrProviderDestroyed.
// It is safe to call more than once.
func (p *StaticKeyProvider) Destroy() {
	p.mu.Lock()
	defer p.mu.Unlock()
	clear(p.keys)
	p.keys = nil
}

// open decrypts the enclave for id into a fresh Key. Callers hold p.mu.
func (p *StaticKeyProvider) open(id string) (Key, error) {
	if p.keys == nil {
		return Key{}, ErrProviderDestroyed
	}
	e, ok := p.keys[id]
	if !ok {
		return Key{}, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}

	buf, err := e.Open()
	if err != nil {
		return Key{}, fmt.Errorf("vigenere: failed to open key %q: %w", id, err)
	}
	defer buf.Destroy()

	letters := make([]byte, buf.Size())
	copy(letters, buf.Bytes())
	return Key{ID: id, Letters: letters}, nil
}

// sealKey validates and uppercases letters and seals the result in an enclave.
// The argument is not modified.
func sealKey(letters []byte) (*memguard.Enclave, error) {
	norm, err := normalizeKey(letters)
	if err != nil {
		return nil, err
	}
	// NewEnclave wipes norm after copying it.
	return memguard.NewEnclave(norm), nil
}

// Compile-time interface check.
var _ KeyProvider = (*StaticKeyProvider)(nil)
