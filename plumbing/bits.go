package plumbing

import (
	"errors"
	"fmt"
)

// ErrNotLetter is returned when a bitmask helper receives a byte outside
// [a-zA-Z].
var ErrNotLetter = errors.New("plumbing: byte is not an ASCII letter")

// CharNum maps a-z to 0..25 and A-Z to 26..51.
func CharNum(ch byte) (uint8, error) {
	switch {
	case ch >= 'a' && ch <= 'z':
		return ch - 'a', nil
	case ch >= 'A' && ch <= 'Z':
		return ch - 'A' + 26, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrNotLetter, ch)
	}
}

// CharMask maps a letter to a one-bit set: bit CharNum(ch) of a uint64.
// Sets of letters then become cheap unions and intersections.
func CharMask(ch byte) (uint64, error) {
	n, err := CharNum(ch)
	if err != nil {
		return 0, err
	}
	return 1 << n, nil
}
