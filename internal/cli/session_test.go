package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nexus", "session.json")
	t.Setenv(_sessionEnv, path)

	token, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession() error = %v", err)
	}
	if token != "" {
		t.Errorf("loadSession() = %q; want empty before first save", token)
	}

	if err := saveSession("tok-123"); err != nil {
		t.Fatalf("saveSession() error = %v", err)
	}

	token, err = loadSession()
	if err != nil {
		t.Fatalf("loadSession() error = %v", err)
	}
	if token != "tok-123" {
		t.Errorf("loadSession() = %q; want tok-123", token)
	}

	if err := saveSession("tok-456"); err != nil {
		t.Fatalf("saveSession() error = %v", err)
	}

	token, err = loadSession()
	if err != nil {
		t.Fatalf("loadSession() error = %v", err)
	}
	if token != "tok-456" {
		t.Errorf("loadSession() = %q; want tok-456 after overwrite", token)
	}
}

func TestSessionClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	t.Setenv(_sessionEnv, path)

	if err := saveSession("tok-123"); err != nil {
		t.Fatalf("saveSession() error = %v", err)
	}
	if err := clearSession(); err != nil {
		t.Fatalf("clearSession() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("session file still exists after clear")
	}

	if err := clearSession(); err != nil {
		t.Errorf("clearSession() on missing file error = %v", err)
	}

	token, err := loadSession()
	if err != nil {
		t.Fatalf("loadSession() error = %v", err)
	}
	if token != "" {
		t.Errorf("loadSession() = %q; want empty after clear", token)
	}
}

func TestSessionCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	t.Setenv(_sessionEnv, path)

	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if _, err := loadSession(); err == nil {
		t.Fatal("expected error for corrupt session file")
	}
}
