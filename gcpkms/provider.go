// Package gcpkms provides a KeyProvider whose Vigenère keys are stored
// encrypted under a Google Cloud KMS CryptoKey.
//
// Usage:
//
//	client, err := kms.NewKeyManagementClient(ctx)
//	provider, err := gcpkms.New(ctx, client,
//	    gcpkms.WithEncryptedKey(ciphertext, "key-1", resourceName),
//	)
package gcpkms

import (
	"context"
	"fmt"
	"hash/crc32"

	kmspb "cloud.google.com/go/kms/apiv1/kmspb"
	vigenere "github.com/rbaliyan/config-vigenere"
)

// Client is the subset of the GCP Cloud KMS API used by this provider.
type Client interface {
	Decrypt(ctx context.Context, req *kmspb.DecryptRequest) (*kmspb.DecryptResponse, error)
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	encryptedKeys []encryptedKeyEntry
}

type encryptedKeyEntry struct {
	ciphertext   []byte
	id           string
	resourceName string // projects/*/locations/*/keyRings/*/cryptoKeys/*
	aad          []byte
}

// WithEncryptedKey adds an encrypted key to be unwrapped via Cloud KMS Decrypt.
// The resourceName is the full Cloud KMS CryptoKey resource name.
// The first key added becomes the current key for new encodings.
func WithEncryptedKey(ciphertext []byte, id, resourceName string) Option {
	return WithEncryptedKeyAAD(ciphertext, id, resourceName, nil)
}

// WithEncryptedKeyAAD is like WithEncryptedKey for keys encrypted with additional authenticated data.
func WithEncryptedKeyAAD(ciphertext []byte, id, resourceName string, aad []byte) Option {
	return func(o *options) {
		o.encryptedKeys = append(o.encryptedKeys, encryptedKeyEntry{
			ciphertext:   ciphertext,
			id:           id,
			resourceName: resourceName,
			aad:          aad,
		})
	}
}

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// New creates a KeyProvider that unwraps encrypted keys using Google Cloud KMS.
//
// At least one key must be provided via WithEncryptedKey. The first key is
// current; the rest are kept for decoding. When KMS returns a plaintext
// CRC32C the plaintext is verified against it.
func New(ctx context.Context, client Client, opts ...Option) (*vigenere.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.encryptedKeys) == 0 {
		return nil, fmt.Errorf("gcpkms: at least one encrypted key is required")
	}

	material := make([]vigenere.KeyMaterial, 0, len(o.encryptedKeys))
	wipe := func() {
		for _, m := range material {
			clear(m.Letters)
		}
	}
	for _, ek := range o.encryptedKeys {
		resp, err := client.Decrypt(ctx, &kmspb.DecryptRequest{
			Name:                        ek.resourceName,
			Ciphertext:                  ek.ciphertext,
			AdditionalAuthenticatedData: ek.aad,
		})
		if err != nil {
			wipe()
			return nil, fmt.Errorf("gcpkms: failed to decrypt key %q: %w", ek.id, err)
		}
		material = append(material, vigenere.KeyMaterial{ID: ek.id, Letters: resp.Plaintext})

		if sum := resp.PlaintextCrc32C; sum != nil && int64(crc32.Checksum(resp.Plaintext, castagnoli)) != sum.GetValue() {
			wipe()
			return nil, fmt.Errorf("gcpkms: plaintext checksum mismatch for key %q", ek.id)
		}
	}

	provider, err := vigenere.NewKeyProviderFromMaterial(material...)
	if err != nil {
		return nil, fmt.Errorf("gcpkms: %w", err)
	}
	return provider, nil
}
