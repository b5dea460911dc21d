package utils

// TruncateRunes bounds text to max characters without splitting multi-byte
// runes.
func TruncateRunes(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
