// Package vault provides a KeyProvider whose Vigenère keys are stored wrapped
// by the HashiCorp Vault Transit secrets engine.
//
// Keys are unwrapped via the Transit decrypt endpoint at construction time
// and sealed in memory by a vigenere.StaticKeyProvider.
//
// Usage:
//
//	provider, err := vault.New(ctx, client,
//	    vault.WithEncryptedKey(ciphertext, "key-1", "my-transit-key"),
//	)
package vault

import (
	"context"
	"fmt"

	vigenere "github.com/rbaliyan/config-vigenere"
)

// Client abstracts the Vault Transit decrypt operation.
// This allows injecting a mock for testing or wrapping any Vault client library.
type Client interface {
	// TransitDecrypt decrypts ciphertext using the named Transit key.
	// The ciphertext should be in Vault's format (e.g., "vault:v1:base64data").
	// Returns the plaintext bytes.
	TransitDecrypt(ctx context.Context, keyName string, ciphertext string) ([]byte, error)
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	encryptedKeys []encryptedKeyEntry
}

type encryptedKeyEntry struct {
	ciphertext     string
	id             string
	transitKeyName string
}

// WithEncryptedKey adds a Transit-encrypted key to be decrypted at construction time.
// The decrypted plaintext must be the key letters (e.g. "LEMON").
// The first key added becomes the current key for new encodings.
func WithEncryptedKey(ciphertext string, id, transitKeyName string) Option {
	return func(o *options) {
		o.encryptedKeys = append(o.encryptedKeys, encryptedKeyEntry{
			ciphertext:     ciphertext,
			id:             id,
			transitKeyName: transitKeyName,
		})
	}
}

// New creates a KeyProvider that decrypts keys using the Vault Transit engine.
//
// At least one key must be provided via WithEncryptedKey. The Vault client is
// not retained after construction, and decrypted plaintext is wiped once sealed.
func New(ctx context.Context, client Client, opts ...Option) (*vigenere.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.encryptedKeys) == 0 {
		return nil, fmt.Errorf("vault: at least one encrypted key is required")
	}

	material := make([]vigenere.KeyMaterial, 0, len(o.encryptedKeys))
	for _, ek := range o.encryptedKeys {
		plaintext, err := client.TransitDecrypt(ctx, ek.transitKeyName, ek.ciphertext)
		if err != nil {
			for _, m := range material {
				clear(m.Letters)
			}
			return nil, fmt.Errorf("vault: failed to decrypt key %q: %w", ek.id, err)
		}
		material = append(material, vigenere.KeyMaterial{ID: ek.id, Letters: plaintext})
	}

	provider, err := vigenere.NewKeyProviderFromMaterial(material...)
	if err != nil {
		return nil, fmt.Errorf("vault: %w", err)
	}
	return provider, nil
}
