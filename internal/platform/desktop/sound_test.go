package desktop

import (
	"encoding/binary"
	"testing"
)

func TestBeepPCM(t *testing.T) {
	pcm := beepPCM(440, 0.1, 8000)

	if want := 800 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}

	peak := 0
	for i := 0; i < len(pcm); i += 4 {
		l := int16(binary.LittleEndian.Uint16(pcm[i:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i/4, l, r)
		}
		peak = max(peak, int(l), -int(l))
	}
	if peak == 0 || peak > 32767*3/10+1 {
		t.Errorf("peak = %d, want within the 0.3 amplitude", peak)
	}

	last := int16(binary.LittleEndian.Uint16(pcm[len(pcm)-4:]))
	if last > 100 || last < -100 {
		t.Errorf("last sample = %d, want faded out", last)
	}
}

func TestCueBeepsCoverEveryCue(t *testing.T) {
	for _, cue := range []string{"enemy_fire", "enemy_destroyed", "obstacle_destroyed"} {
		found := false
		for c := range cueBeeps {
			if c.String() == cue {
				found = true
			}
		}
		if !found {
			t.Errorf("no beep for cue %q", cue)
		}
	}
}
