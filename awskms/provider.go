// Package awskms provides a KeyProvider whose Vigenère keys are stored
// encrypted under an AWS KMS key.
//
// Keys are decrypted with KMS Decrypt at construction time and sealed in
// memory by a vigenere.StaticKeyProvider.
//
// Usage:
//
//	cfg, err := awsconfig.LoadDefaultConfig(ctx)
//	kmsClient := kms.NewFromConfig(cfg)
//
//	provider, err := awskms.New(ctx, kmsClient,
//	    awskms.WithEncryptedKey(encryptedKeyBytes, "key-1"),
//	)
package awskms

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/kms"
	vigenere "github.com/rbaliyan/config-vigenere"
)

// Client is the subset of the AWS KMS API used by this provider.
type Client interface {
	Decrypt(ctx context.Context, params *kms.DecryptInput, optFns ...func(*kms.Options)) (*kms.DecryptOutput, error)
}

// Option configures a Provider.
type Option func(*options)

type options struct {
	encryptedKeys     []encryptedKeyEntry
	encryptionContext map[string]string
}

type encryptedKeyEntry struct {
	ciphertext []byte
	id         string
	kmsKeyID   string // KMS key ARN or alias; empty = let KMS determine
}

// WithEncryptedKey adds a key encrypted with KMS Encrypt.
// The plaintext must be the key letters. The first key added becomes the
// current key for new encodings.
func WithEncryptedKey(ciphertext []byte, id string) Option {
	return WithEncryptedKeyForKMSKey(ciphertext, id, "")
}

// WithEncryptedKeyForKMSKey is like WithEncryptedKey but names the KMS key ARN
// or alias to decrypt with.
func WithEncryptedKeyForKMSKey(ciphertext []byte, id, kmsKeyID string) Option {
	return func(o *options) {
		o.encryptedKeys = append(o.encryptedKeys, encryptedKeyEntry{
			ciphertext: ciphertext,
			id:         id,
			kmsKeyID:   kmsKeyID,
		})
	}
}

// WithEncryptionContext sets the encryption context passed to every Decrypt call.
// It must match the context used when the keys were encrypted.
func WithEncryptionContext(ec map[string]string) Option {
	return func(o *options) {
		o.encryptionContext = ec
	}
}

// New creates a KeyProvider that decrypts keys using AWS KMS.
//
// At least one key must be provided. The first key added is current; the rest
// are kept for decoding values written before a rotation. The KMS client is not
// retained, and decrypted plaintext is wiped once sealed.
func New(ctx context.Context, client Client, opts ...Option) (*vigenere.StaticKeyProvider, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if len(o.encryptedKeys) == 0 {
		return nil, fmt.Errorf("awskms: at least one encrypted key is required")
	}

	material := make([]vigenere.KeyMaterial, 0, len(o.encryptedKeys))
	for _, ek := range o.encryptedKeys {
		input := &kms.DecryptInput{
			CiphertextBlob:    ek.ciphertext,
			EncryptionContext: o.encryptionContext,
		}
		if ek.kmsKeyID != "" {
			input.KeyId = &ek.kmsKeyID
		}

		out, err := client.Decrypt(ctx, input)
		if err != nil {
			for _, m := range material {
				clear(m.Letters)
			}
			return nil, fmt.Errorf("awskms: failed to decrypt key %q: %w", ek.id, err)
		}
		material = append(material, vigenere.KeyMaterial{ID: ek.id, Letters: out.Plaintext})
	}

	provider, err := vigenere.NewKeyProviderFromMaterial(material...)
	if err != nil {
		return nil, fmt.Errorf("awskms: %w", err)
	}
	return provider, nil
}
