package domain

import (
	"slices"
	"time"
)

const DigestDateLayout = "2006-01-02"

// DigestCategories lists the digest categories the service serves.
var DigestCategories = []string{"tech", "ai", "webdev", "infosec", "design", "crypto", "devops", "founders"}

func IsDigestCategory(category string) bool {
	return slices.Contains(DigestCategories, category)
}

// DigestDate formats t as the UTC calendar date used in digest URLs.
func DigestDate(t time.Time) string {
	return t.UTC().Format(DigestDateLayout)
}

// ValidateDigestDate reports ErrInvalidDate unless date is a real YYYY-MM-DD calendar date.
func ValidateDigestDate(date string) error {
	if len(date) != len(DigestDateLayout) {
		return ErrInvalidDate
	}
	if _, err := time.Parse(DigestDateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
