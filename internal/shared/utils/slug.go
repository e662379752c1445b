package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid = regexp.MustCompile(`[^a-z0-9]+`)
	slugShape   = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// GenerateSlug derives a URL-safe identifier from a blog title.
func GenerateSlug(input string) string {
	// Step 1: Lowercase
	// "Cara Konfigurasi MikroTik!!" → "cara konfigurasi mikrotik!!"
	lower := strings.ToLower(input)

	// Step 2: Replace mọi run ký tự không phải a-z/0-9 bằng 1 hyphen
	// "cara konfigurasi mikrotik!!" → "cara-konfigurasi-mikrotik-"
	hyphenated := slugInvalid.ReplaceAllString(lower, "-")

	// Step 3: Trim leading/trailing hyphens
	return strings.Trim(hyphenated, "-")
}

// IsValidSlug kiểm tra slug do caller cung cấp có đúng shape không
func IsValidSlug(s string) bool {
	return slugShape.MatchString(s)
}
