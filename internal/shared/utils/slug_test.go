package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple title", "Hello World", "hello-world"},
		{"punctuation collapsed", "Cara Konfigurasi MikroTik!!", "cara-konfigurasi-mikrotik"},
		{"leading and trailing junk trimmed", "  --Fiber Optik vs Kabel LAN--  ", "fiber-optik-vs-kabel-lan"},
		{"consecutive separators", "a   b___c", "a-b-c"},
		{"already a slug", "already-a-slug", "already-a-slug"},
		{"digits kept", "Top 10 Tools 2024", "top-10-tools-2024"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateSlug(tt.input))
		})
	}
}

func TestIsValidSlug(t *testing.T) {
	assert.True(t, IsValidSlug("hello-world"))
	assert.True(t, IsValidSlug("a"))
	assert.True(t, IsValidSlug("top-10-tools"))

	assert.False(t, IsValidSlug(""))
	assert.False(t, IsValidSlug("Hello-World"))
	assert.False(t, IsValidSlug("-leading"))
	assert.False(t, IsValidSlug("trailing-"))
	assert.False(t, IsValidSlug("double--dash"))
	assert.False(t, IsValidSlug("with space"))
}
