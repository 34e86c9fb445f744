// Package azurekv provides a KeyProvider whose Vigenère keys are wrapped
// with an Azure Key Vault key.
//
// Keys are unwrapped once at construction time and sealed in memory.
//
// Usage:
//
//	cred, err := azidentity.NewDefaultAzureCredential(nil)
//	client, err := azkeys.NewClient("https://my-vault.vault.azure.net/", cred, nil)
//
//	provider, err := azurekv.New(ctx, client,
//	    azurekv.WithWrappedKey(wrapped, "key-1", "my-key-name", "key-version"),
//	)
package azurekv

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/security/keyvault/azkeys"
	vigenere "github.com/rbaliyan/config-vigenere"
)

// Client is the subset of the Azure Key Vault API used by this provider.
type Client interface {
	UnwrapKey(ctx context.Context, keyName string, keyVersion string, parameters azkeys.KeyOperationParameters, options *azkeys.UnwrapKeyOptions) (azkeys.UnwrapKeyResponse, error)
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	wrappedKeys []wrappedKeyEntry
}

type wrappedKeyEntry struct {
	ciphertext []byte
	id         string
	keyName    string
	keyVersion string
	algorithm  azkeys.EncryptionAlgorithm
}

// WithWrappedKey adds a wrapped key to be unwrapped with RSA-OAEP-256.
// The keyName and keyVersion identify the Key Vault key used for wrapping;
// id is the key ID written into encoded values.
// The first key added becomes the current key for new encodings.
func WithWrappedKey(ciphertext []byte, id, keyName, keyVersion string) Option {
	return WithWrappedKeyAlgorithm(ciphertext, id, keyName, keyVersion, azkeys.EncryptionAlgorithmRSAOAEP256)
}

// WithWrappedKeyAlgorithm is like WithWrappedKey with an explicit unwrap algorithm.
func WithWrappedKeyAlgorithm(ciphertext []byte, id, keyName, keyVersion string, alg azkeys.EncryptionAlgorithm) Option {
	return func(o *options) {
		o.wrappedKeys = append(o.wrappedKeys, wrappedKeyEntry{
			ciphertext: ciphertext,
			id:         id,
			keyName:    keyName,
			keyVersion: keyVersion,
			algorithm:  alg,
		})
	}
}

// New creates a KeyProvider that unwraps keys using Azure Key Vault.
//
// At least one key must be provided via WithWrappedKey. The first key is
// current; the rest are kept for decoding. The Key Vault client is not
// retained after construction.
func New(ctx context.Context, client Client, opts ...Option) (*vigenere.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.wrappedKeys) == 0 {
		return nil, fmt.Errorf("azurekv: at least one wrapped key is required")
	}

	material := make([]vigenere.KeyMaterial, 0, len(o.wrappedKeys))
	for _, wk := range o.wrappedKeys {
		resp, err := client.UnwrapKey(ctx, wk.keyName, wk.keyVersion, azkeys.KeyOperationParameters{
			Algorithm: &wk.algorithm,
			Value:     wk.ciphertext,
		}, nil)
		if err != nil {
			for _, m := range material {
				clear(m.Letters)
			}
			return nil, fmt.Errorf("azurekv: failed to unwrap key %q: %w", wk.id, err)
		}
		material = append(material, vigenere.KeyMaterial{ID: wk.id, Letters: resp.Result})
	}

	provider, err := vigenere.NewKeyProviderFromMaterial(material...)
	if err != nil {
		return nil, fmt.Errorf("azurekv: %w", err)
	}
	return provider, nil
}
