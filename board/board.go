//go:build rp2040

// Package board implements the dice hardware surface on the TinyGo
// machine package: seven GPIO pips, one active-high push-button, a
// piezo beeper and a hardware-PWM decoration LED.
package board

import (
	"errors"
	"machine"
	"time"

	"tinygo.org/x/drivers/buzzer"

	"github.com/tuner/dice"
)

// Board errors.
var (
	ErrNoPWMPin = errors.New("board: decoration pin has no PWM peripheral")
)

// decorationPWMHz matches the roughly 245 Hz phase-correct PWM the
// decoration LED is driven at.
const decorationPWMHz = 245

// Config assigns the device pins.
type Config struct {
	// Pips are the seven dice LEDs, index matching the pip bit layout.
	Pips [7]machine.Pin
	// Button is the push-button input, wired active high.
	Button machine.Pin
	// Beeper is the piezo output.
	Beeper machine.Pin
	// Decoration is the fade LED; must sit on a PWM-capable pin.
	Decoration machine.Pin
}

// Hardware is the production implementation of dice.Hardware.
type Hardware struct {
	pips       [7]machine.Pin
	button     machine.Pin
	bzr        buzzer.Device
	decoration machine.Pin

	pwm   pwmDevice
	pwmCh uint8

	// wake receives the single-shot pin-change signal that ends a sleep.
	wake chan struct{}
}

var _ dice.Hardware = (*Hardware)(nil)

// New configures the pins and returns the hardware surface. All seven
// pip pins are configured as outputs.
func New(cfg Config) (*Hardware, error) {
	if pwmForPin(cfg.Decoration) == nil {
		return nil, ErrNoPWMPin
	}
	for _, p := range cfg.Pips {
		p.Configure(machine.PinConfig{Mode: machine.PinOutput})
		p.Low()
	}
	cfg.Button.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	cfg.Beeper.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cfg.Decoration.Configure(machine.PinConfig{Mode: machine.PinInput})
	return &Hardware{
		pips:       cfg.Pips,
		button:     cfg.Button,
		bzr:        buzzer.New(cfg.Beeper),
		decoration: cfg.Decoration,
		wake:       make(chan struct{}, 1),
	}, nil
}

// SetPips writes a 7-bit mask to the dice LEDs.
func (h *Hardware) SetPips(mask uint8) {
	for i, p := range h.pips {
		p.Set(mask&(1<<i) != 0)
	}
}

// SetBeeper drives the piezo line.
func (h *Hardware) SetBeeper(on bool) {
	if on {
		h.bzr.On()
	} else {
		h.bzr.Off()
	}
}

// ButtonPressed samples the button input.
func (h *Hardware) ButtonPressed() bool {
	return h.button.Get()
}

// DelayUS blocks for n microseconds.
func (h *Hardware) DelayUS(n uint32) {
	time.Sleep(time.Duration(n) * time.Microsecond)
}

// DelayMS blocks for n milliseconds.
func (h *Hardware) DelayMS(n uint32) {
	time.Sleep(time.Duration(n) * time.Millisecond)
}

// PWMEnable starts phase-correct PWM on the decoration pin with the
// given duty cycle.
func (h *Hardware) PWMEnable(duty uint8) {
	pwm := pwmForPin(h.decoration)
	if pwm == nil {
		return
	}
	err := pwm.Configure(machine.PWMConfig{Period: machine.GHz / decorationPWMHz})
	if err != nil {
		return
	}
	ch, err := pwm.Channel(h.decoration)
	if err != nil {
		return
	}
	h.pwm = pwm
	h.pwmCh = ch
	h.PWMSetDuty(duty)
}

// PWMSetDuty updates the decoration duty cycle. 255 is full brightness.
func (h *Hardware) PWMSetDuty(duty uint8) {
	if h.pwm == nil {
		return
	}
	h.pwm.Set(h.pwmCh, h.pwm.Top()*uint32(duty)/255)
}

// PWMDisable stops the PWM slice and returns the decoration pin to high
// impedance.
func (h *Hardware) PWMDisable() {
	if h.pwm == nil {
		return
	}
	h.pwm.Set(h.pwmCh, 0)
	h.pwm.Enable(false)
	h.decoration.Configure(machine.PinConfig{Mode: machine.PinInput})
	h.pwm = nil
}

// SleepUntilButton parks the core until the button edge fires. The
// pin-change handler posts a single-shot signal on the wake channel and
// is unregistered before returning, so a press that lands between
// arming and waiting still wakes immediately.
func (h *Hardware) SleepUntilButton() {
	select {
	case <-h.wake:
	default:
	}
	if err := h.button.SetInterrupt(machine.PinRising, h.onWake); err != nil {
		// No interrupt available on this pin; fall back to polling.
		for !h.button.Get() {
			h.DelayMS(1)
		}
		return
	}
	<-h.wake
	h.button.SetInterrupt(machine.PinRising, nil)
}

func (h *Hardware) onWake(machine.Pin) {
	select {
	case h.wake <- struct{}{}:
	default:
	}
}
