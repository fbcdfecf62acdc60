package dice

// Pip bits of the LED bank.
//
//	0 - 1
//	2 3 4
//	5 - 6
const (
	pip0 = 1 << iota
	pip1
	pip2
	pip3
	pip4
	pip5
	pip6
)

// pipMask covers all seven pips.
const pipMask = pip0 | pip1 | pip2 | pip3 | pip4 | pip5 | pip6

// NumFaces is the number of faces on the die.
const NumFaces = 6

// faces maps a 0-based face value to its pip pattern. Every pattern is
// symmetric under 180 degree rotation of the die.
var faces = [NumFaces]uint8{
	pip3,
	pip0 | pip6,
	pip1 | pip3 | pip5,
	pip0 | pip1 | pip5 | pip6,
	pip0 | pip1 | pip3 | pip5 | pip6,
	pip0 | pip1 | pip2 | pip4 | pip5 | pip6,
}

// spinSequence rotates two adjacent lit pips clockwise around the die
// perimeter. Indexed modulo its length.
var spinSequence = [6]uint8{
	pip1 | pip0,
	pip4 | pip1,
	pip6 | pip4,
	pip5 | pip6,
	pip2 | pip5,
	pip0 | pip2,
}

const badFaceIndex = "dice: invalid face index"

// Face returns the pip pattern for a 0-based face value.
// It panics if i is not in [0,5].
func Face(i uint8) uint8 {
	if i >= NumFaces {
		panic(badFaceIndex)
	}
	return faces[i]
}
