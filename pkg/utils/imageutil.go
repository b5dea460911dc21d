package utils

import "strings"

// IsAllowedImageType checks a sniffed content type against the configured
// allow-list.
func IsAllowedImageType(contentType string, allowedTypes []string) bool {
	ct := strings.ToLower(contentType)
	for _, allowed := range allowedTypes {
		if strings.Contains(ct, allowed) {
			return true
		}
	}
	return false
}
