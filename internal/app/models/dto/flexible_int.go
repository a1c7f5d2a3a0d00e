package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexibleInt is an int that accepts both JSON numbers and numeric strings.
// Admin clients submit room numbers and positions as form-style strings, so
// "301" and 301 must both coerce; anything else is a validation failure.
type FlexibleInt int

// UnmarshalJSON implements json.Unmarshaler
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(str))
		if err != nil {
			return fmt.Errorf("value %q is not an integer", str)
		}
		*f = FlexibleInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("value %s is not an integer", s)
	}
	*f = FlexibleInt(n)
	return nil
}

// Int returns the underlying int value
func (f FlexibleInt) Int() int {
	return int(f)
}
