// Package testsupport holds fixtures and golden-file helpers for tests.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-depselect/components/boxes"
)

// MustLoadInventory reads a YAML inventory fixture into a MemoryStore.
func MustLoadInventory(t *testing.T, path string) *boxes.MemoryStore {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open inventory: %v", err)
	}
	defer f.Close()

	store, err := boxes.LoadInventory(f)
	if err != nil {
		t.Fatalf("load inventory: %v", err)
	}
	return store
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareJSON decodes both payloads and returns a cmp diff, so formatting
// and key order do not matter.
func CompareJSON(want, got []byte) (string, error) {
	var wantValue, gotValue any
	if err := json.Unmarshal(want, &wantValue); err != nil {
		return "", fmt.Errorf("testsupport: decode want: %w", err)
	}
	if err := json.Unmarshal(got, &gotValue); err != nil {
		return "", fmt.Errorf("testsupport: decode got: %w", err)
	}
	return cmp.Diff(wantValue, gotValue), nil
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an io.Writer,
// returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
