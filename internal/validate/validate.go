// Package validate holds the client-side form validation rules. All
// functions are pure: they return an empty string when the value is
// acceptable and a human-readable message to render next to the field
// otherwise. Nothing here ever reaches the network.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
	minPasswordLength    = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email checks presence and basic shape (something@something.something).
func Email(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailPattern.MatchString(email) {
		return "Please enter a valid email address"
	}
	return ""
}

// Password checks presence and the minimum length the backend enforces.
func Password(password string) string {
	if password == "" {
		return "Password is required"
	}
	if utf8.RuneCountInString(password) < minPasswordLength {
		return "Password must be at least 8 characters long"
	}
	return ""
}

// Title rejects blank titles and titles over 200 characters.
func Title(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Title is required"
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return "Title must be 200 characters or less"
	}
	return ""
}

// Description is optional; only the length is checked.
func Description(description string) string {
	if description == "" {
		return ""
	}
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		return "Description must be 1000 characters or less"
	}
	return ""
}

// Required is the generic presence check for arbitrary fields.
func Required(value, field string) string {
	if strings.TrimSpace(value) == "" {
		return fmt.Sprintf("%s is required", field)
	}
	return ""
}

// MaxLength is the generic length check for arbitrary fields.
func MaxLength(value string, max int, field string) string {
	if value != "" && utf8.RuneCountInString(value) > max {
		return fmt.Sprintf("%s must be %d characters or less", field, max)
	}
	return ""
}
