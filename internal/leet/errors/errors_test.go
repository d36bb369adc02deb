package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "kind only",
			err:  E(KindConfigNotFound, "", nil),
			want: "config not found in the default paths",
		},
		{
			name: "with subject",
			err:  E(KindDirectoryExists, "/tmp/TwoSum", nil),
			want: "directory already exists: /tmp/TwoSum",
		},
		{
			name: "with cause",
			err:  E(KindTemplate, "solution.py", fmt.Errorf("missing variable %q", "unknown_var")),
			want: `templating failed: solution.py: missing variable "unknown_var"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesKindSentinel(t *testing.T) {
	err := fmt.Errorf("scaffold: %w", E(KindDirectoryExists, "TwoSum", nil))

	if !errors.Is(err, ErrDirectoryExists) {
		t.Error("errors.Is should match ErrDirectoryExists through wrapping")
	}
	if errors.Is(err, ErrTemplate) {
		t.Error("errors.Is should not match a different kind")
	}
}

func TestIsReachesCause(t *testing.T) {
	err := E(KindFileOpen, "/etc/leet/config.yaml", fs.ErrNotExist)
	if !Is(err, fs.ErrNotExist) {
		t.Error("cause should stay reachable through Unwrap")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "nil", err: nil, want: KindUnknown},
		{name: "plain", err: errors.New("boom"), want: KindUnknown},
		{name: "direct", err: E(KindAPI, "", nil), want: KindAPI},
		{name: "wrapped", err: fmt.Errorf("render %s: %w", "rs", E(KindLanguageNotAvailable, "Rust", nil)), want: KindLanguageNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}
