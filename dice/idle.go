package dice

// waitBeforeSleep is the inactivity timeout in seconds before the
// device dims the display and powers down.
const waitBeforeSleep = 10

// dim-ramp geometry: dimCycles passes of software PWM at dimSlots slots
// of dimSlotUS microseconds each. The duty starts at dimSlots/dimSlots
// and reaches zero on the final cycles.
const (
	dimCycles = 127
	dimSlots  = 32
	dimSlotUS = 255
)

// waitOrSleep blocks until the button is pressed. After the inactivity
// timeout it dims the current pip pattern with a software PWM ramp and
// enters deep sleep; the pin-change wake returns control here with the
// press still pending for spin to observe. A press at any stage returns
// immediately.
func (d *Dice) waitOrSleep() {
	for wait := uint16(waitBeforeSleep * 1000); wait > 0; wait-- {
		if d.hw.ButtonPressed() {
			return
		}
		d.hw.DelayUS(1000)
	}

	figure := d.pips

	// Soft dim: chop the displayed pattern with a shrinking duty cycle.
	for a := uint8(0); a < dimCycles; a++ {
		dc := uint8(dimSlots) - a/(128/dimSlots)
		d.display(figure)
		for s := uint8(0); s < dc; s++ {
			d.hw.DelayUS(dimSlotUS)
		}
		d.display(0)
		for s := dc; s < dimSlots; s++ {
			d.hw.DelayUS(dimSlotUS)
		}
		if d.hw.ButtonPressed() {
			return
		}
	}

	d.display(0)
	d.hw.SleepUntilButton()
}
