package dice

// spin cycles the rolling animation while the button is held and
// returns the accumulated seed the instant release is observed. One
// animation frame lasts 32 increments of roughly 800 us each, so each
// frame is visible for about 25 ms. If the button is already released
// on entry the seed is returned unchanged.
func (d *Dice) spin(seed uint16) uint16 {
	for d.hw.ButtonPressed() {
		d.display(spinSequence[seed/32%uint16(len(spinSequence))])
		d.hw.DelayUS(800)
		seed++
	}
	return seed
}
