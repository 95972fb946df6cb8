package interleave

import (
	"testing"

	"github.com/easypal-go/hamdrm/qam"
)

func sampleCells(n int) []qam.Cell {
	cells := make([]qam.Cell, n)
	for i := range cells {
		cells[i] = qam.Cell{Re: float64(i + 1), Im: float64(-(i + 1))}
	}
	return cells
}

func TestFreqInterleaveRoundTrip(t *testing.T) {
	for _, n := range []int{16, 24} {
		cells := sampleCells(n)
		inter := FreqInterleave(cells)
		back := FreqDeinterleave(inter)
		for i := range cells {
			if back[i] != cells[i] {
				t.Fatalf("n=%d: index %d: got %v want %v", n, i, back[i], cells[i])
			}
		}
	}
}

func TestFreqInterleaveBijective(t *testing.T) {
	for _, n := range []int{16, 24} {
		cells := sampleCells(n)
		inter := FreqInterleave(cells)
		seen := map[qam.Cell]bool{}
		for _, c := range inter {
			if c == (qam.Cell{}) {
				t.Fatalf("n=%d: zero cell present in interleaved output", n)
			}
			if seen[c] {
				t.Fatalf("n=%d: duplicate cell %v in interleaved output", n, c)
			}
			seen[c] = true
		}
	}
}

func TestTimeInterleaveRoundTrip(t *testing.T) {
	cells := sampleCells(352)
	inter := TimeInterleave(cells)
	if len(inter) != 352 {
		t.Fatalf("interleaved length = %d, want 352", len(inter))
	}
	back := TimeDeinterleave(inter)
	for i := range cells {
		if back[i] != cells[i] {
			t.Fatalf("index %d: got %v want %v", i, back[i], cells[i])
		}
	}
}

func TestCombinedInterleaveRoundTrip(t *testing.T) {
	// freq_deinterleave . time_deinterleave . time_interleave . freq_interleave == identity
	// applied per the 16/24-cell symbol groups feeding the 352-cell time array.
	cells := sampleCells(352)
	// Simulate frequency interleaving per symbol group (16 then 14*24).
	freqInterleaved := make([]qam.Cell, 0, 352)
	freqInterleaved = append(freqInterleaved, FreqInterleave(cells[:16])...)
	for s := 0; s < 14; s++ {
		start := 16 + s*24
		freqInterleaved = append(freqInterleaved, FreqInterleave(cells[start:start+24])...)
	}

	timeInterleaved := TimeInterleave(freqInterleaved)
	timeDeinterleaved := TimeDeinterleave(timeInterleaved)

	freqDeinterleaved := make([]qam.Cell, 0, 352)
	freqDeinterleaved = append(freqDeinterleaved, FreqDeinterleave(timeDeinterleaved[:16])...)
	for s := 0; s < 14; s++ {
		start := 16 + s*24
		freqDeinterleaved = append(freqDeinterleaved, FreqDeinterleave(timeDeinterleaved[start:start+24])...)
	}

	for i := range cells {
		if freqDeinterleaved[i] != cells[i] {
			t.Fatalf("index %d: got %v want %v", i, freqDeinterleaved[i], cells[i])
		}
	}
}
