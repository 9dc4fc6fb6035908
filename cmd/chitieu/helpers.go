package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chitieu-app/chitieu/internal/ai"
	"github.com/chitieu-app/chitieu/internal/common"
	"github.com/chitieu-app/chitieu/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// openStore opens the shared database handle. It is not closed on the
// happy path; the handle lives for the process.
func openStore(cmd *cobra.Command) (*storage.Store, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".local", "share", "chitieu", "chitieu.db")
	}

	store, err := storage.NewStore(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(cmd.Context()); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// requireUser rejects operations against an unregistered owner. The
// command flags are not a login session, so the check keeps mistyped
// usernames from silently creating orphan rows.
func requireUser(cmd *cobra.Command, store *storage.Store, username string) error {
	_, err := store.GetUser(cmd.Context(), username)
	if errors.Is(err, common.ErrNotFound) {
		return common.NewUserError(fmt.Sprintf("unknown account %q, register it first", username), nil)
	}
	return err
}

// newAIClient builds the Gemini bridge from config.
func newAIClient(cmd *cobra.Command) (ai.Client, error) {
	apiKey := viper.GetString("gemini.api_key")
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("%w: set gemini.api_key or GEMINI_API_KEY", common.ErrMissingConfig)
	}

	return ai.NewGeminiClient(cmd.Context(), ai.Config{
		APIKey:     apiKey,
		ParseModel: viper.GetString("gemini.parse_model"),
		WordsModel: viper.GetString("gemini.words_model"),
	})
}

// readPassword prompts for a password without echo, falling back to a
// plain line read when stdin is not a terminal.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// confirm asks a y/N question on stderr and reads the answer from stdin.
func confirm(question string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", question)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
