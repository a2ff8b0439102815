package version

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, v string) {
	t.Helper()
	orig := Version
	Version = v
	t.Cleanup(func() { Version = orig })
}

func noColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestDefaultVersion(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotContains(t, Version, "\x1b[")
}

func TestPrettyPlain(t *testing.T) {
	noColor(t)
	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3+abc", "1.2.3+abc"},
		{"nightly", "nightly"},
		{"  ", "dev"},
	}
	for _, tt := range tests {
		withVersion(t, tt.in)
		assert.Equal(t, tt.want, Pretty(), tt.in)
	}
}

func TestPrettyColored(t *testing.T) {
	orig := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = orig })
	withVersion(t, "1.2.3-rc1")

	out := Pretty()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "-rc1")
}
