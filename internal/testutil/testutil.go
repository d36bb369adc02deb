// Package testutil holds helpers shared by package tests
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NetworkFailureServer creates a test server that simulates endpoint failures
func NetworkFailureServer(t *testing.T, failureType string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch failureType {
		case "connection_reset":
			// Close connection immediately
			hj, ok := w.(http.Hijacker)
			if ok {
				conn, _, _ := hj.Hijack()
				_ = conn.Close()
			}
		case "malformed_json":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"invalid": json}`))
		case "incomplete_response":
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data": "incomplete`))
		case "empty_body":
			w.WriteHeader(http.StatusOK)
		case "rate_limit":
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`rate limit exceeded`))
		case "internal_error":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`internal server error`))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"data": {"question": null}}`))
		}
	}))
	t.Cleanup(server.Close)
	return server
}

// CreateMalformedYAML generates various types of malformed YAML
func CreateMalformedYAML(malformType string) string {
	switch malformType {
	case "invalid_syntax":
		return "settings:\n  templateDir: /t\n  - broken\ntemplates: {}"
	case "unclosed_quote":
		return `settings: {templateDir: "unclosed value`
	case "wrong_type":
		return "settings: [a, b]\ntemplates: {}"
	case "files_not_a_list":
		return "settings:\n  templateDir: /t\ntemplates:\n  py:\n    language: Python3\n    files: {a: b}"
	default:
		return "invalid: yaml: syntax:"
	}
}

// WriteTree creates files (slash-separated paths relative to root) with the given contents
func WriteTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
			t.Fatalf("failed to create %s: %v", filepath.Dir(path), err)
		}
		//nolint:gosec // G306: Test file permissions are acceptable
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// CaptureStderr captures stderr output during test
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = old

	var buf strings.Builder
	_, _ = io.Copy(&buf, r)
	return buf.String()
}
