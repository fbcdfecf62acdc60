// Package dice implements the interaction loop of a one-button
// electronic dice: hold the button to spin, release to throw, watch the
// die tumble to rest and fade out. The package contains no hardware
// access of its own; it drives the Hardware capability surface, for
// which package board provides the TinyGo implementation.
package dice

// initialSeed is the seed value at power-on. The seed is advanced by
// roughly 1 kHz while the button is held, so the hold duration is both
// the entropy source and the energy of the throw.
const initialSeed uint16 = 1000

// Dice is the four-phase state machine (idle, spin, throw, fade) of the
// device. The zero value is not usable; construct with New.
type Dice struct {
	hw Hardware

	// seed carries the pseudo-random state between throws.
	seed         uint16
	previousSeed uint16

	// pips shadows the last mask written to the LED bank. The soft dim
	// in the idle phase re-draws it.
	pips uint8

	nc noCopy
}

// New returns a Dice driving the given hardware surface.
func New(hw Hardware) *Dice {
	return &Dice{hw: hw, seed: initialSeed}
}

// Run plays the welcome pattern and then services throws forever.
// It never returns.
func (d *Dice) Run() {
	d.welcome()
	for {
		d.Step()
	}
}

// Step runs one full interaction cycle: wait for a press (sleeping
// after prolonged inactivity), spin while held, throw on release and
// fade if the throw ran to completion.
func (d *Dice) Step() {
	d.waitOrSleep()
	d.seed = d.spin(d.seed)
	if !d.throw(d.seed, d.previousSeed) {
		d.fade()
	}
	d.previousSeed = d.seed
}

// welcome lights every pip and beeps for 200 ms. Played once when the
// battery is plugged in.
func (d *Dice) welcome() {
	d.display(pipMask)
	d.beep(200)
	d.display(0)
}

// display writes a pip mask and records it in the shadow register.
func (d *Dice) display(mask uint8) {
	d.pips = mask
	d.hw.SetPips(mask)
}

// beep sounds the piezo for ms milliseconds. The beeper line is low on
// return even for ms == 0.
func (d *Dice) beep(ms uint16) {
	d.hw.SetBeeper(true)
	for a := uint16(0); a < ms; a++ {
		d.hw.DelayUS(1000)
	}
	d.hw.SetBeeper(false)
}

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) UnLock() {}
