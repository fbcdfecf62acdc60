package dice

// throwParams are derived from the seed captured at button release and
// the seed of the previous throw.
type throwParams struct {
	// face is the 0-based starting face.
	face uint8
	// stopAt is the terminal inter-frame delay in ms, in [250,758].
	stopAt uint16
	// quotient divides the delay in the growth recurrence, in [1,6].
	// Smaller values grow faster and end the throw sooner.
	quotient uint16
	// delay0 is the initial inter-frame delay in ms, in [4,68].
	// A longer button hold gives a smaller delay0 and a livelier throw.
	delay0 uint16
}

// deriveThrow computes the throw parameters. Arithmetic is unsigned
// 16-bit throughout; the hold duration is the modular difference of the
// two seeds, clamped to 1023 ms.
func deriveThrow(seed, previousSeed uint16) throwParams {
	duration := clamp(seed-previousSeed, 1023)
	return throwParams{
		face:     uint8(seed % NumFaces),
		stopAt:   250 + seed%128*4,
		quotient: 1 + seed/4%6,
		delay0:   68 - duration*64/1024,
	}
}

// throw animates the die tumbling to rest. Each frame shows the next
// face with a click; the inter-frame delay grows geometrically until it
// reaches the terminal delay, at which point a longer stop beep plays.
// Returns true if the button was pressed during the animation, in which
// case the throw is abandoned immediately with the display left as is.
func (d *Dice) throw(seed, previousSeed uint16) bool {
	p := deriveThrow(seed, previousSeed)

	face := p.face
	delay := p.delay0
	for delay < p.stopAt {
		// Integer approximation of geometric growth with ratio
		// 1+1/quotient. The additive floor keeps the delay growing even
		// when delay/quotient truncates to zero.
		delay += 3 + delay/p.quotient

		for i := uint16(0); i < delay; i++ {
			d.hw.DelayUS(1000)
			if d.hw.ButtonPressed() {
				return true
			}
		}

		d.display(faces[face])
		d.beep(3)

		face++
		if face >= NumFaces {
			face = 0
		}
	}

	d.beep(20)
	return false
}
