package amm

import (
	"fmt"
	"strings"
)

// Side selects one of the two assets held by a pool.
type Side uint8

const (
	SideA Side = iota
	SideB
)

// Other returns the opposite side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

func (s Side) String() string {
	switch s {
	case SideA:
		return "a"
	case SideB:
		return "b"
	default:
		return fmt.Sprintf("side(%d)", uint8(s))
	}
}

// ParseSide accepts "a"/"b" in any case.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "a":
		return SideA, nil
	case "b":
		return SideB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSide, s)
	}
}
