package vigenere

import (
	"context"
	"fmt"

	"github.com/rbaliyan/config/codec"
)

// Codec wraps an inner codec with a Vigenère transform.
// On Encode, the inner codec serializes the value, then every ASCII letter of the
// result is shifted with the provider's current key and a header naming the key is prepended.
// On Decode, the header selects the key, the letters are shifted back, and the inner
// codec deserializes the plaintext.
//
// The transform only obscures text; it provides no confidentiality against an attacker.
//
// Codec is safe for concurrent use if the underlying KeyProvider and inner codec are safe
// for concurrent use. StaticKeyProvider satisfies this requirement.
type Codec struct {
	inner    codec.Codec
	provider KeyProvider
	name     string
	tel      *telemetry
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// CodecOption configures a Codec.
type CodecOption func(*codecOptions)

// NewCodec creates a Vigenère codec that wraps the given inner codec.
// The codec name is "vigenere:<inner>", e.g. "vigenere:json".
// Returns an error if inner or provider is nil, or if the metric instruments cannot be created.
func NewCodec(inner codec.Codec, provider KeyProvider, opts ...CodecOption) (*Codec, error) {
	if inner == nil {
		return nil, fmt.Errorf("vigenere: NewCodec inner codec is nil")
	}
	if provider == nil {
		return nil, fmt.Errorf("vigenere: NewCodec provider is nil")
	}

	o := defaultCodecOptions()
	for _, opt := range opts {
		opt(&o)
	}

	name := "vigenere:" + inner.Name()
	tel, err := newTelemetry(o, name)
	if err != nil {
		return nil, fmt.Errorf("vigenere: NewCodec telemetry: %w", err)
	}

	return &Codec{
		inner:    inner,
		provider: provider,
		name:     name,
		tel:      tel,
	}, nil
}

// Name returns the codec name, e.g. "vigenere:json".
func (c *Codec) Name() string {
	return c.name
}

// Encode serializes the value using the inner codec, then encrypts the result.
func (c *Codec) Encode(ctx context.Context, v any) (data []byte, err error) {
	ctx, span := c.tel.start(ctx, opEncode)
	defer func() { c.tel.finish(ctx, span, opEncode, len(data), err) }()

	plaintext, err := c.inner.Encode(ctx, v)
	if err != nil {
		return nil, fmt.Errorf("vigenere: inner encode failed: %w", err)
	}

	key, err := c.provider.CurrentKey()
	if err != nil {
		return nil, fmt.Errorf("vigenere: failed to get current key: %w", err)
	}
	defer clear(key.Letters)

	return encrypt(plaintext, key)
}

// Decode decrypts the data, then deserializes the plaintext using the inner codec.
func (c *Codec) Decode(ctx context.Context, data []byte, v any) (err error) {
	ctx, span := c.tel.start(ctx, opDecode)
	defer func() { c.tel.finish(ctx, span, opDecode, len(data), err) }()

	plaintext, err := decrypt(data, c.provider)
	if err != nil {
		return fmt.Errorf("vigenere: decrypt failed: %w", err)
	}

	if err := c.inner.Decode(ctx, plaintext, v); err != nil {
		return fmt.Errorf("vigenere: inner decode failed: %w", err)
	}
	return nil
}
