package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Student number pattern - 4 to 10 digits
	StudentNumberPattern = `^\d{4,10}$`

	// Username pattern - letters, digits, underscore, dot
	UsernamePattern = `^[a-zA-Z0-9_.]{3,30}$`

	// Password min length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	StudentNumber *regexp.Regexp
	Username      *regexp.Regexp
}{
	StudentNumber: regexp.MustCompile(StudentNumberPattern),
	Username:      regexp.MustCompile(UsernamePattern),
}

// IsValidStudentNumber reports whether a student number matches the expected shape
func IsValidStudentNumber(value string) bool {
	return CompiledPatterns.StudentNumber.MatchString(value)
}

// IsValidUsername reports whether a username matches the expected shape
func IsValidUsername(value string) bool {
	return CompiledPatterns.Username.MatchString(value)
}
