package automata

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRule is returned for malformed life-like rule strings.
var ErrInvalidRule = errors.New("automata: invalid rule")

// LifeLike is an outer-totalistic rule in B/S notation: a dead cell with a
// neighbour count in Birth becomes active, a live cell with a count in Survive
// stays active. Counts exclude the center cell.
type LifeLike struct {
	Birth   [9]bool
	Survive [9]bool
}

// ParseRule parses "B3/S23" style notation. Either part may be empty
// ("B/S23"), and the order of the parts does not matter.
func ParseRule(s string) (LifeLike, error) {
	var rule LifeLike
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(s)), "/")
	if len(parts) != 2 {
		return rule, fmt.Errorf("%w %q: want B<digits>/S<digits>", ErrInvalidRule, s)
	}

	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return rule, fmt.Errorf("%w %q: empty part", ErrInvalidRule, s)
		}
		var counts *[9]bool
		switch part[0] {
		case 'B':
			if seenB {
				return rule, fmt.Errorf("%w %q: duplicate B", ErrInvalidRule, s)
			}
			seenB, counts = true, &rule.Birth
		case 'S':
			if seenS {
				return rule, fmt.Errorf("%w %q: duplicate S", ErrInvalidRule, s)
			}
			seenS, counts = true, &rule.Survive
		default:
			return rule, fmt.Errorf("%w %q: unexpected %q", ErrInvalidRule, s, part[0])
		}
		for _, r := range part[1:] {
			if r < '0' || r > '8' {
				return rule, fmt.Errorf("%w %q: bad count %q", ErrInvalidRule, s, r)
			}
			counts[r-'0'] = true
		}
	}
	return rule, nil
}

// Func returns the rule as a RuleFunc for TwoDimensional.
func (l LifeLike) Func() RuleFunc {
	return func(n Neighborhood) Cell {
		neighbours := n.Sum() - int(n.Center())
		if n.Center() == Active {
			if l.Survive[neighbours] {
				return Active
			}
			return Inactive
		}
		if l.Birth[neighbours] {
			return Active
		}
		return Inactive
	}
}

// String formats the rule in B/S notation.
func (l LifeLike) String() string {
	var sb strings.Builder
	sb.WriteByte('B')
	for i, on := range l.Birth {
		if on {
			sb.WriteByte(byte('0' + i))
		}
	}
	sb.WriteString("/S")
	for i, on := range l.Survive {
		if on {
			sb.WriteByte(byte('0' + i))
		}
	}
	return sb.String()
}
