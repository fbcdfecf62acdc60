package dice

// fadeStepMS is the wait between gamma steps, sized so the full walk of
// the table takes about 1.2 s.
const fadeStepMS = 1200 / uint32(len(gamma))

// fade plays the decorative fade-out on the decoration LED after a
// clean throw. The LED is driven to full brightness for half a second,
// then ramped out through the gamma table. A button press aborts the
// ramp at the next step. The pip LEDs are not touched; on exit the
// decoration pin is released.
func (d *Dice) fade() {
	d.hw.PWMEnable(255)
	d.hw.DelayMS(500)

	for i := len(gamma) - 1; i >= 0 && !d.hw.ButtonPressed(); i-- {
		d.hw.PWMSetDuty(gamma[i])
		d.hw.DelayMS(fadeStepMS)
	}

	d.hw.PWMDisable()
}
