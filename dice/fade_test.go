package dice

import "testing"

func TestFadeEnvelope(t *testing.T) {
	sim := newSim()
	d := New(sim)
	d.fade()

	if sim.pwmEnables != 1 || sim.pwmReleases != 1 {
		t.Fatalf("pwm enabled %d times, released %d times, want 1 and 1", sim.pwmEnables, sim.pwmReleases)
	}
	if len(sim.duties) != 1+len(gamma) {
		t.Fatalf("fade wrote %d duty values, want %d", len(sim.duties), 1+len(gamma))
	}
	if first := sim.duties[0].duty; first != 255 {
		t.Errorf("fade starts at duty %d, want 255", first)
	}
	if last := sim.duties[len(sim.duties)-1].duty; last != 0 {
		t.Errorf("fade ends at duty %d, want 0", last)
	}
	for i := 1; i < len(sim.duties); i++ {
		if sim.duties[i].duty > sim.duties[i-1].duty {
			t.Fatalf("duty step %d rises: %d -> %d", i, sim.duties[i-1].duty, sim.duties[i].duty)
		}
	}
	if len(sim.pips) != 0 {
		t.Errorf("fade touched the pip LEDs (%d writes)", len(sim.pips))
	}
}

func TestFadeTiming(t *testing.T) {
	sim := newSim()
	d := New(sim)
	d.fade()

	// Half a second at full brightness, then the ramp at 18 ms a step.
	if at := sim.duties[1].at; at != 500_000 {
		t.Errorf("first ramp step at %dus, want 500000", at)
	}
	total := sim.duties[len(sim.duties)-1].at - sim.duties[1].at
	if want := uint64(len(gamma)-1) * uint64(fadeStepMS) * 1000; total != want {
		t.Errorf("ramp spans %dus, want %dus", total, want)
	}
}

func TestFadeAbortsOnPress(t *testing.T) {
	sim := newSim()
	sim.pressBetween(700_000, sim.deadline)
	d := New(sim)
	d.fade()

	if sim.pwmReleases != 1 {
		t.Fatalf("aborted fade released pwm %d times, want 1", sim.pwmReleases)
	}
	if len(sim.duties) >= 1+len(gamma) {
		t.Errorf("aborted fade wrote %d duty values, want fewer than %d", len(sim.duties), 1+len(gamma))
	}
}
