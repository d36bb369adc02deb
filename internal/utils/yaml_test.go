//nolint:revive // utils is a common and acceptable package name
package utils

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type testTemplate struct {
	Language string   `yaml:"language"`
	Files    []string `yaml:"files"`
}

type testConfig struct {
	Settings struct {
		TemplateDir string `yaml:"templateDir"`
	} `yaml:"settings"`
	Templates map[string]testTemplate `yaml:"templates"`
}

func TestParseYamlFromBytes_Success(t *testing.T) {
	yamlData := []byte(`
settings:
  templateDir: /opt/templates
  unknownKey: ignored
templates:
  py:
    language: Python3
    files: [solution.py, README.md]
`)

	var result testConfig
	if err := ParseYamlFromBytes(yamlData, &result); err != nil {
		t.Fatalf("ParseYamlFromBytes() failed: %v", err)
	}

	if result.Settings.TemplateDir != "/opt/templates" {
		t.Errorf("TemplateDir = %q, want %q", result.Settings.TemplateDir, "/opt/templates")
	}

	want := map[string]testTemplate{
		"py": {Language: "Python3", Files: []string{"solution.py", "README.md"}},
	}
	if diff := cmp.Diff(want, result.Templates); diff != "" {
		t.Errorf("Templates mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYamlFromBytes_Invalid(t *testing.T) {
	var result testConfig
	err := ParseYamlFromBytes([]byte("settings: [unclosed"), &result)
	if err == nil {
		t.Fatal("ParseYamlFromBytes() expected error for invalid YAML")
	}
}

func TestParseYamlFromFile_Success(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	//nolint:gosec // G306: Test file permissions are acceptable
	if err := os.WriteFile(path, []byte("settings:\n  templateDir: ~/t\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	var result testConfig
	if err := ParseYamlFromFile(path, &result); err != nil {
		t.Fatalf("ParseYamlFromFile() failed: %v", err)
	}
	if result.Settings.TemplateDir != "~/t" {
		t.Errorf("TemplateDir = %q, want %q", result.Settings.TemplateDir, "~/t")
	}
}

func TestParseYamlFromFile_MissingKeepsPathError(t *testing.T) {
	var result testConfig
	err := ParseYamlFromFile(filepath.Join(t.TempDir(), "missing.yaml"), &result)
	if err == nil {
		t.Fatal("ParseYamlFromFile() expected error for missing file")
	}

	var pathErr *fs.PathError
	if !errors.As(err, &pathErr) {
		t.Errorf("expected *fs.PathError in chain, got %T: %v", err, err)
	}
}
