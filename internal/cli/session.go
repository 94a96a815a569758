package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

const _sessionEnv = "NEXUS_SESSION_FILE"

type session struct {
	AccessToken string `json:"access_token"`
}

func sessionPath() (string, error) {
	if path := os.Getenv(_sessionEnv); path != "" {
		return path, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cli.sessionPath: %w", err)
	}
	return filepath.Join(dir, "nexus", "session.json"), nil
}

func loadSession() (string, error) {
	path, err := sessionPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("cli.loadSession: %w", err)
	}

	var s session
	if err := json.Unmarshal(data, &s); err != nil {
		return "", fmt.Errorf("cli.loadSession: decode session: %w", err)
	}
	return s.AccessToken, nil
}

func saveSession(token string) error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("cli.saveSession: %w", err)
	}

	data, err := json.Marshal(session{AccessToken: token})
	if err != nil {
		return fmt.Errorf("cli.saveSession: encode session: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cli.saveSession: %w", err)
	}
	return nil
}

func clearSession() error {
	path, err := sessionPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("cli.clearSession: %w", err)
	}
	return nil
}
