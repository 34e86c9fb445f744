package main

import (
	"fmt"
	"io"
	"strings"

	vigenere "github.com/rbaliyan/config-vigenere"
	"github.com/rbaliyan/config-vigenere/internal/config"
)

// readInput returns the arguments joined by spaces, or all of r without its
// trailing newline when there are no arguments.
func readInput(args []string, r io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// run applies the configured mode and key to text.
func run(cfg config.CipherConfig, text string) (string, error) {
	c := vigenere.New()
	if err := vigenere.SetKeyFromString(c, cfg.Key); err != nil {
		return "", err
	}
	defer c.Clear()

	var (
		out []rune
		err error
	)
	switch cfg.Mode {
	case config.ModeEncrypt:
		out, err = c.Encrypt(vigenere.StringToSequence(text))
	case config.ModeDecrypt:
		out, err = c.Decrypt(vigenere.StringToSequence(text))
	default:
		return "", fmt.Errorf("unknown mode %q", cfg.Mode)
	}
	if err != nil {
		return "", err
	}
	return vigenere.SequenceToString(out), nil
}
