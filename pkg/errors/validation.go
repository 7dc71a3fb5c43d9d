package errors

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxQueryLength is the longest search query or artist name accepted.
const MaxQueryLength = 200

// ValidateQuery checks a free-text search query or artist name and returns
// it trimmed.
//
// Rules:
//   - Not empty after trimming
//   - At most MaxQueryLength runes
//   - No control characters
func ValidateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", New(ErrCodeInvalidInput, "query cannot be empty")
	}

	if utf8.RuneCountInString(query) > MaxQueryLength {
		return "", New(ErrCodeInvalidInput, "query too long (max %d characters)", MaxQueryLength)
	}

	for _, r := range query {
		if unicode.IsControl(r) {
			return "", New(ErrCodeInvalidInput, "query contains invalid control characters")
		}
	}

	return query, nil
}

// ValidateObjectID parses an object identifier, which must be a positive
// decimal integer.
func ValidateObjectID(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, New(ErrCodeInvalidInput, "object ID cannot be empty")
	}

	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, New(ErrCodeInvalidInput, "invalid object ID: %q", raw)
	}
	return id, nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
