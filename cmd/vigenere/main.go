// Command vigenere encrypts or decrypts text with a Vigenère key.
//
// The key and mode come from the environment:
//
//	VIGENERE_KEY=lemon VIGENERE_MODE=encrypt vigenere "attack at dawn"
//	echo "lxfopv ef rnhr" | VIGENERE_KEY=lemon VIGENERE_MODE=decrypt vigenere
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rbaliyan/config-vigenere/internal/config"
	"github.com/rbaliyan/config-vigenere/internal/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(2)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	defer func() { _ = logger.Sync() }()

	ctx := logger.WithFields(context.Background(), "mode", cfg.Cipher.Mode)

	text, err := readInput(os.Args[1:], os.Stdin)
	if err != nil {
		logger.Error(ctx, "Failed to read input: ", err)
		os.Exit(1)
	}

	out, err := run(cfg.Cipher, text)
	if err != nil {
		logger.Error(ctx, "Failed to process text: ", err)
		os.Exit(1)
	}
	logger.Debugf(ctx, "processed %d characters", len([]rune(text)))

	fmt.Fprintln(os.Stdout, out)
}
