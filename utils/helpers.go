package utils

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// GenerateShortID generates a short, URL-safe random ID
// Format: 8 characters, lowercase alphanumeric
// Example: "x7k9m2p1"
func GenerateShortID() string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	const length = 8

	result := make([]byte, length)
	for i := range result {
		num, _ := rand.Int(rand.Reader, big.NewInt(int64(len(chars))))
		result[i] = chars[num.Int64()]
	}

	return string(result)
}

// Slugify creates a URL-friendly slug from a title
func Slugify(title string) string {
	name := strings.ToLower(title)
	name = strings.ReplaceAll(name, "_", "-")
	name = strings.ReplaceAll(name, " ", "-")

	// Remove invalid characters
	var result strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= '0' && char <= '9') || char == '-' {
			result.WriteRune(char)
		}
	}

	finalName := strings.Trim(result.String(), "-")

	// Collapse repeated hyphens
	for strings.Contains(finalName, "--") {
		finalName = strings.ReplaceAll(finalName, "--", "-")
	}

	if finalName == "" {
		finalName = "hike"
	}

	return finalName
}
