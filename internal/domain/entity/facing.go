package entity

// Facing is the binary left/right facing of a character.
// It is tracked separately from the continuous orientation.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// String returns the string representation of the facing
func (f Facing) String() string {
	switch f {
	case FacingRight:
		return "Right"
	case FacingLeft:
		return "Left"
	default:
		return "Unknown"
	}
}

// Opposite returns the other facing
func (f Facing) Opposite() Facing {
	if f == FacingRight {
		return FacingLeft
	}
	return FacingRight
}

// Sign returns +1 for right and -1 for left
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

// Disagrees reports whether a horizontal input points away from the facing.
// Zero input never disagrees.
func (f Facing) Disagrees(input float64) bool {
	switch f {
	case FacingRight:
		return input < 0
	case FacingLeft:
		return input > 0
	}
	return false
}
