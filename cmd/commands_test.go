package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	lerrors "github.com/leet-tools/leet/internal/leet/errors"
	"github.com/leet-tools/leet/internal/leet/leetcode"
)

func TestShowTemplates(t *testing.T) {
	confPath, _ := setupLeetTestDir(t)

	out, err := executeCommand(t, "--config", confPath, "show-templates")
	if err != nil {
		t.Fatalf("show-templates failed: %v", err)
	}

	want := "Config: " + confPath + "\npy\nrs\n"
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("show-templates output mismatch (-want +got):\n%s", diff)
	}
	if exitCode(err) != ExitOK {
		t.Errorf("exit code = %d, want 0", exitCode(err))
	}
}

func TestShowTemplates_ConfigNotFound(t *testing.T) {
	setupLeetTestDir(t)

	_, err := executeCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "show-templates")
	if !lerrors.Is(err, lerrors.ErrFileOpen) {
		t.Fatalf("show-templates = %v, want ErrFileOpen", err)
	}
}

func TestNew_HappyPath(t *testing.T) {
	confPath, work := setupLeetTestDir(t)
	stubNetwork(t, stubFetcher{question: twoSum()})

	out, err := executeCommand(t, "-c", confPath, "new", "py", "https://leetcode.com/problems/two-sum/")
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	dir := filepath.Join(work, "TwoSum")
	if !strings.Contains(out, "TwoSum") {
		t.Errorf("output %q should mention the created directory", out)
	}

	//nolint:gosec // G304: Test reads files it created
	solution, err := os.ReadFile(filepath.Join(dir, "solution.py"))
	if err != nil {
		t.Fatalf("solution.py missing: %v", err)
	}
	if string(solution) != "# 1. Two Sum\nclass Solution:\n    pass\n" {
		t.Errorf("solution.py = %q", solution)
	}
	if _, err := os.Stat(filepath.Join(dir, "README.md")); err != nil {
		t.Errorf("README.md missing: %v", err)
	}
}

func TestNew_ExplicitName(t *testing.T) {
	confPath, work := setupLeetTestDir(t)
	stubNetwork(t, stubFetcher{question: twoSum()})

	if _, err := executeCommand(t, "-c", confPath, "new", "py", "https://leetcode.com/problems/two-sum/", "my_dir"); err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(work, "my_dir", "solution.py")); err != nil {
		t.Errorf("my_dir/solution.py missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(work, "TwoSum")); !os.IsNotExist(err) {
		t.Errorf("TwoSum should not be created when a name is given")
	}
}

func TestNew_DirectoryExists(t *testing.T) {
	confPath, work := setupLeetTestDir(t)
	stubNetwork(t, stubFetcher{question: twoSum()})
	if err := os.Mkdir(filepath.Join(work, "TwoSum"), 0750); err != nil {
		t.Fatal(err)
	}

	_, err := executeCommand(t, "-c", confPath, "new", "py", "https://leetcode.com/problems/two-sum/")
	if exitCode(err) != ExitDirectoryExists {
		t.Fatalf("exit code = %d, want %d (err=%v)", exitCode(err), ExitDirectoryExists, err)
	}
	if _, statErr := os.Stat(filepath.Join(work, "TwoSum")); statErr != nil {
		t.Errorf("existing directory was removed: %v", statErr)
	}
}

func TestNew_LanguageMissingCleansUp(t *testing.T) {
	confPath, work := setupLeetTestDir(t)
	stubNetwork(t, stubFetcher{question: twoSum()})

	_, err := executeCommand(t, "-c", confPath, "new", "rs", "https://leetcode.com/problems/two-sum/")
	if !lerrors.Is(err, lerrors.ErrLanguageNotAvailable) {
		t.Fatalf("new = %v, want ErrLanguageNotAvailable", err)
	}
	if exitCode(err) != ExitError {
		t.Errorf("exit code = %d, want %d", exitCode(err), ExitError)
	}
	if _, statErr := os.Stat(filepath.Join(work, "TwoSum")); !os.IsNotExist(statErr) {
		t.Errorf("TwoSum should be removed after failure")
	}
}

func TestNew_FetchFailure(t *testing.T) {
	confPath, work := setupLeetTestDir(t)
	stubNetwork(t, stubFetcher{err: lerrors.E(lerrors.KindAPI, "two-sum", &leetcode.APIError{})})

	_, err := executeCommand(t, "-c", confPath, "new", "py", "https://leetcode.com/problems/two-sum/")
	if !lerrors.Is(err, lerrors.ErrAPI) {
		t.Fatalf("new = %v, want ErrAPI", err)
	}
	entries, _ := os.ReadDir(work)
	if len(entries) != 0 {
		t.Errorf("work dir should stay empty, got %d entries", len(entries))
	}
}

func TestNew_ArgCount(t *testing.T) {
	confPath, _ := setupLeetTestDir(t)

	if _, err := executeCommand(t, "-c", confPath, "new", "py"); err == nil {
		t.Error("new with one argument should fail")
	}
	if _, err := executeCommand(t, "-c", confPath, "new", "py", "url", "name", "extra"); err == nil {
		t.Error("new with four arguments should fail")
	}
}

func TestRootFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "debug"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("root command should have --%s flag", name)
		}
	}
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil && f.Shorthand != "c" {
		t.Errorf("--config shorthand = %q, want %q", f.Shorthand, "c")
	}
}
