package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BoolFlag is a tri-state 0/1 flag that accepts either JSON booleans or
// numbers on input and always serializes the stored numeric form.
type BoolFlag int

const (
	FlagUnset BoolFlag = 0
	FlagSet   BoolFlag = 1
)

// UnmarshalJSON coerces true/false and 0/1 into the numeric form.
func (f *BoolFlag) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	var b bool
	if err := json.Unmarshal(trimmed, &b); err == nil {
		if b {
			*f = FlagSet
		} else {
			*f = FlagUnset
		}
		return nil
	}

	var n int
	if err := json.Unmarshal(trimmed, &n); err == nil {
		switch n {
		case 0:
			*f = FlagUnset
		case 1:
			*f = FlagSet
		default:
			return fmt.Errorf("flag must be 0 or 1, got %d", n)
		}
		return nil
	}

	return fmt.Errorf("flag must be a boolean or 0/1")
}

// Int returns the stored numeric value.
func (f BoolFlag) Int() int {
	if f == FlagSet {
		return 1
	}
	return 0
}

// Bool reports whether the flag is set.
func (f BoolFlag) Bool() bool {
	return f == FlagSet
}
