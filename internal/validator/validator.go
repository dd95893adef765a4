package validator

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrRequired marks a missing value.
var ErrRequired = errors.New("is required")

// ValidateRequired fails for empty or whitespace-only values.
func ValidateRequired(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequired
	}
	
	return nil
}

func ValidateString(value string, minLength int, maxLength int) error {
	n := utf8.RuneCountInString(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}
	
	return nil
}

// ValidateOneOf checks value against a closed set of allowed values.
func ValidateOneOf(value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	
	return fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
}

// ValidateDurationMillis allows zero (never expire) and positive lifetimes.
func ValidateDurationMillis(ms int64) error {
	if ms < 0 {
		return fmt.Errorf("must not be negative")
	}
	
	return nil
}
