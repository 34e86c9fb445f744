package vault

import (
	"context"
	"fmt"
	"testing"

	vigenere "github.com/rbaliyan/config-vigenere"
)

type mockClient struct {
	keys   map[string]string // "keyName:ciphertext" -> plaintext
	failOn string
}

func (m *mockClient) TransitDecrypt(ctx context.Context, keyName string, ciphertext string) ([]byte, error) {
	lookup := keyName + ":" + ciphertext
	if lookup == m.failOn {
		return nil, fmt.Errorf("vault: permission denied")
	}
	plaintext, ok := m.keys[lookup]
	if !ok {
		return nil, fmt.Errorf("vault: decryption failed")
	}
	return []byte(plaintext), nil
}

func TestNew(t *testing.T) {
	client := &mockClient{
		keys: map[string]string{
			"transit-key:vault:v1:abc123": "lemon",
		},
	}

	provider, err := New(context.Background(), client,
		WithEncryptedKey("vault:v1:abc123", "key-1", "transit-key"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	key, err := provider.CurrentKey()
	if err != nil {
		t.Fatalf("CurrentKey: %v", err)
	}
	if key.ID != "key-1" {
		t.Errorf("CurrentKey().ID: got %q, want %q", key.ID, "key-1")
	}
	if string(key.Letters) != "LEMON" {
		t.Errorf("CurrentKey().Letters: got %q, want %q", key.Letters, "LEMON")
	}
}

func TestNewWithRotation(t *testing.T) {
	client := &mockClient{
		keys: map[string]string{
			"transit-key:vault:v2:new": "NEWKEY",
			"transit-key:vault:v1:old": "OLDKEY",
		},
	}

	provider, err := New(context.Background(), client,
		WithEncryptedKey("vault:v2:new", "key-v2", "transit-key"),
		WithEncryptedKey("vault:v1:old", "key-v1", "transit-key"),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	current, err := provider.CurrentKey()
	if err != nil {
		t.Fatal(err)
	}
	if current.ID != "key-v2" {
		t.Errorf("CurrentKey().ID: got %q, want %q", current.ID, "key-v2")
	}

	old, err := provider.KeyByID("key-v1")
	if err != nil {
		t.Fatal(err)
	}
	if string(old.Letters) != "OLDKEY" {
		t.Errorf("KeyByID().Letters: got %q, want %q", old.Letters, "OLDKEY")
	}
}

func TestNewNoKeys(t *testing.T) {
	_, err := New(context.Background(), &mockClient{})
	if err == nil {
		t.Error("expected error for no keys")
	}
}

func TestNewDecryptFailure(t *testing.T) {
	client := &mockClient{failOn: "transit-key:vault:v1:abc123"}

	_, err := New(context.Background(), client,
		WithEncryptedKey("vault:v1:abc123", "key-1", "transit-key"),
	)
	if err == nil {
		t.Error("expected error for decrypt failure")
	}
}

func TestNewRejectsNonLetterPlaintext(t *testing.T) {
	client := &mockClient{
		keys: map[string]string{
			"transit-key:vault:v1:bin": "\x00\x01\x02",
		},
	}

	_, err := New(context.Background(), client,
		WithEncryptedKey("vault:v1:bin", "key-1", "transit-key"),
	)
	if !vigenere.IsInvalidKey(err) {
		t.Errorf("expected ErrInvalidKey, got %v", err)
	}
}

func TestNewReturnsKeyProvider(t *testing.T) {
	client := &mockClient{
		keys: map[string]string{
			"transit-key:vault:v1:data": "KEY",
		},
	}

	provider, err := New(context.Background(), client,
		WithEncryptedKey("vault:v1:data", "key-1", "transit-key"),
	)
	if err != nil {
		t.Fatal(err)
	}

	var _ vigenere.KeyProvider = provider
}
