package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// UpdateEnv is the environment variable that switches Golden into
// update mode.
const UpdateEnv = "LOOM_UPDATE_GOLDEN"

// Diff returns a unified diff between want and got, empty when equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return "diff failed: " + err.Error()
	}
	return text
}

// Golden compares got against the golden file at path. A missing file,
// or UpdateEnv set, writes got as the new golden content. On mismatch
// the test fails with a diff and got is written next to the golden file
// with a ".new" suffix for inspection.
func Golden(t *testing.T, path, got string) {
	t.Helper()

	update := os.Getenv(UpdateEnv) != ""
	want, err := os.ReadFile(path)
	if update || os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("golden: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("golden: %v", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("golden: %v", err)
	}

	if string(want) == got {
		// stale artifact from an earlier failure
		os.Remove(path + ".new")
		return
	}

	if err := os.WriteFile(path+".new", []byte(got), 0o644); err != nil {
		t.Errorf("golden: writing %s.new: %v", path, err)
	}
	t.Errorf("golden mismatch for %s (got written to %s.new):\n%s",
		path, path, Diff(string(want), got))
}
