package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStudentNumber(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"2021001", true},
		{"1234", true},
		{"1234567890", true},
		{"123", false},
		{"12345678901", false},
		{"2021-01", false},
		{"abc1234", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidStudentNumber(tt.value), "value %q", tt.value)
	}
}

func TestIsValidUsername(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"kim2021", true},
		{"kim.minjae", true},
		{"kim_minjae", true},
		{"abc", true},
		{"ab", false},
		{"kim 2021", false},
		{"kim@dorm", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidUsername(tt.value), "value %q", tt.value)
	}
}
