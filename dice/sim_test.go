package dice

import "fmt"

// simHW is a recording implementation of Hardware with a virtual clock.
// Delays advance virtual time instantly; the button is scripted as a
// set of half-open press windows in virtual microseconds, which makes
// every scenario deterministic.
type simHW struct {
	now uint64 // virtual time in microseconds

	press [][2]uint64 // button held during [from,to)

	pips   []pipWrite
	beeps  []beepEdge
	duties []dutyWrite
	pwmOn  bool

	pwmEnables  int
	pwmReleases int
	sleeps      int

	// deadline guards against a runaway loop in a broken phase.
	deadline uint64
}

type pipWrite struct {
	at   uint64
	mask uint8
}

type beepEdge struct {
	at uint64
	on bool
}

type dutyWrite struct {
	at   uint64
	duty uint8
}

func newSim() *simHW {
	return &simHW{deadline: 120_000_000} // 2 virtual minutes
}

// pressBetween scripts the button as held during [from,to) microseconds.
func (s *simHW) pressBetween(from, to uint64) {
	s.press = append(s.press, [2]uint64{from, to})
}

func (s *simHW) DelayUS(n uint32) {
	s.now += uint64(n)
	if s.now > s.deadline {
		panic(fmt.Sprintf("sim: virtual deadline exceeded at %dus", s.now))
	}
}

func (s *simHW) DelayMS(n uint32) { s.DelayUS(n * 1000) }

func (s *simHW) ButtonPressed() bool {
	for _, w := range s.press {
		if s.now >= w[0] && s.now < w[1] {
			return true
		}
	}
	return false
}

func (s *simHW) SetPips(mask uint8) {
	s.pips = append(s.pips, pipWrite{at: s.now, mask: mask})
}

func (s *simHW) SetBeeper(on bool) {
	s.beeps = append(s.beeps, beepEdge{at: s.now, on: on})
}

func (s *simHW) PWMEnable(duty uint8) {
	s.pwmOn = true
	s.pwmEnables++
	s.duties = append(s.duties, dutyWrite{at: s.now, duty: duty})
}

func (s *simHW) PWMSetDuty(duty uint8) {
	if !s.pwmOn {
		panic("sim: duty write with PWM disabled")
	}
	s.duties = append(s.duties, dutyWrite{at: s.now, duty: duty})
}

func (s *simHW) PWMDisable() {
	s.pwmOn = false
	s.pwmReleases++
}

func (s *simHW) SleepUntilButton() {
	s.sleeps++
	// Wake at the start of the next scripted press, as the pin-change
	// interrupt would.
	for _, w := range s.press {
		if w[0] >= s.now {
			s.now = w[0]
			return
		}
	}
}

// lastPips returns the most recent mask written to the LED bank.
func (s *simHW) lastPips() uint8 {
	if len(s.pips) == 0 {
		return 0
	}
	return s.pips[len(s.pips)-1].mask
}

// beepCount returns completed beeps as (count, total on-time in us).
func (s *simHW) beepCount() (n int, onUS uint64) {
	var onAt uint64
	for _, e := range s.beeps {
		if e.on {
			onAt = e.at
		} else {
			n++
			onUS += e.at - onAt
		}
	}
	return n, onUS
}
