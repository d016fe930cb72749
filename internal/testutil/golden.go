package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// UpdateEnv names the variable that rewrites golden files instead of
// comparing against them.
const UpdateEnv = "TASKZORD_GOLDEN_UPDATE"

// GoldenString compares got against testdata/<name>.golden.
// Line endings are normalised to \n before comparing.
func GoldenString(t *testing.T, name, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")
	got = strings.ReplaceAll(got, "\r\n", "\n")

	if os.Getenv(UpdateEnv) != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("update golden file: %v", err)
		}
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if want := strings.ReplaceAll(string(raw), "\r\n", "\n"); got != want {
		t.Errorf("output mismatch for %s\nWant:\n%s\nGot:\n%s", name, want, got)
	}
}
