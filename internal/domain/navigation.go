package domain

import "fmt"

// Direction selects which way the selection cursor moves.
type Direction string

const (
	DirectionPrevious Direction = "prev"
	DirectionNext     Direction = "next"
)

// ParseDirection validates a direction coming from outside the core.
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(s); d {
	case DirectionPrevious, DirectionNext:
		return d, nil
	}
	return "", fmt.Errorf("%w: unknown direction %q (want prev or next)", ErrValidation, s)
}
