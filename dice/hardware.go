package dice

// Clock is the busy-wait time capability. Both delays block the caller
// for the requested interval; neither yields to other goroutines on
// bare-metal targets.
type Clock interface {
	DelayUS(n uint32)
	DelayMS(n uint32)
}

// Hardware is the capability surface the dice core drives. There is one
// production implementation on the TinyGo machine package (package board)
// and a recording mock used by the tests.
type Hardware interface {
	Clock

	// SetPips writes a 7-bit mask to the dice LED bank. Bit layout:
	//
	//	bit0 -    bit1
	//	bit2 bit3 bit4
	//	bit5 -    bit6
	SetPips(mask uint8)

	// SetBeeper drives the piezo high or low.
	SetBeeper(on bool)

	// ButtonPressed samples the push-button input.
	ButtonPressed() bool

	// PWMEnable configures phase-correct PWM on the decoration pin with
	// the given initial duty cycle.
	PWMEnable(duty uint8)
	// PWMSetDuty updates the decoration PWM compare value.
	PWMSetDuty(duty uint8)
	// PWMDisable releases the decoration pin to high impedance.
	PWMDisable()

	// SleepUntilButton enters the lowest power state available, arms a
	// button-edge wake source and returns once the button fires it.
	// Implementations must disable the ADC and any other always-on
	// consumers before suspending.
	SleepUntilButton()
}
