package settings

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "config.json"))
	if err != nil {
		t.Fatal(err)
	}
	if s.HasAPIKey() {
		t.Fatal("fresh store must not have a key")
	}
}

func TestUpdateAPIKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.UpdateAPIKey("sk-test"); err != nil {
		t.Fatal(err)
	}
	if !s.HasAPIKey() {
		t.Fatal("key not set in memory")
	}

	reloaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := reloaded.Snapshot().APIKey; got != "sk-test" {
		t.Fatalf("reloaded key = %q", got)
	}

	if err := s.UpdateAPIKey(""); err != nil {
		t.Fatal(err)
	}
	reloaded, err = Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.HasAPIKey() {
		t.Fatal("removed key still present after reload")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := writeFile(path, "{not json"); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("malformed config must fail to load")
	}
}
