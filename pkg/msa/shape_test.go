package msa

import "testing"

func TestIlvevIlvod(t *testing.T) {
	ws := []uint64{1, 2, 3, 4}
	wt := []uint64{10, 20, 30, 40}
	ev := ilvev(Word, ws, wt)
	if !equalSlices(ev, []uint64{10, 1, 30, 3}) {
		t.Errorf("ilvev = %v, want [10 1 30 3]", ev)
	}
	od := ilvod(Word, ws, wt)
	if !equalSlices(od, []uint64{20, 2, 40, 4}) {
		t.Errorf("ilvod = %v, want [20 2 40 4]", od)
	}
}

func TestIlvrIlvl(t *testing.T) {
	ws := []uint64{1, 2, 3, 4}
	wt := []uint64{10, 20, 30, 40}
	r := ilvr(Word, ws, wt)
	if !equalSlices(r, []uint64{10, 1, 20, 2}) {
		t.Errorf("ilvr = %v, want [10 1 20 2]", r)
	}
	l := ilvl(Word, ws, wt)
	if !equalSlices(l, []uint64{30, 3, 40, 4}) {
		t.Errorf("ilvl = %v, want [30 3 40 4]", l)
	}
}

func TestPckevPckod(t *testing.T) {
	ws := []uint64{1, 2, 3, 4}
	wt := []uint64{10, 20, 30, 40}
	ev := pckev(Word, ws, wt)
	if !equalSlices(ev, []uint64{10, 30, 1, 3}) {
		t.Errorf("pckev = %v, want [10 30 1 3]", ev)
	}
	od := pckod(Word, ws, wt)
	if !equalSlices(od, []uint64{20, 40, 2, 4}) {
		t.Errorf("pckod = %v, want [20 40 2 4]", od)
	}
}

func TestVshfZeroSelect(t *testing.T) {
	// The control is always a byte field, regardless of df: 0xc0 must
	// zero-select at every width (spec.md §8.7), not just at df = byte.
	for _, df := range []DF{Byte, Half, Word, Double} {
		n := Lanes(df)
		ws := make([]uint64, n)
		wt := make([]uint64, n)
		wdIn := make([]uint64, n)
		for i := 0; i < n; i++ {
			ws[i] = uint64(0x11 + i)
			wt[i] = uint64(0x55 + i)
			wdIn[i] = 0xC0
		}
		out := vshf(df, wdIn, ws, wt)
		for i, v := range out {
			if v != 0 {
				t.Errorf("df=%d vshf lane %d = 0x%X, want 0 (0xc0 control selects zero)", df, i, v)
			}
		}
	}
}

func TestVshfSelectsFromWtOrWs(t *testing.T) {
	ws := []uint64{0x11, 0x22, 0x33, 0x44}
	wt := []uint64{0x55, 0x66, 0x77, 0x88}
	// n=4, 2n=8. k=0 -> wt[0]; k=4 -> ws[0].
	wdIn := []uint64{0, 4, 1, 5}
	out := vshf(Word, wdIn, ws, wt)
	want := []uint64{0x55, 0x11, 0x66, 0x22}
	if !equalSlices(out, want) {
		t.Errorf("vshf = %v, want %v", out, want)
	}
}

func TestShfReversesGroupOfFour(t *testing.T) {
	// spec.md §8 boundary scenario 6: imm=0x1B reverses a group of 4.
	ws := []uint64{0xA, 0xB, 0xC, 0xD}
	out := shf(Word, ws, 0x1B)
	want := []uint64{0xD, 0xC, 0xB, 0xA}
	if !equalSlices(out, want) {
		t.Errorf("shf(0x1B) = %v, want %v", out, want)
	}
}

func TestSldSlidesWithinRegister(t *testing.T) {
	// df = byte: a single 16-lane slice spans the whole register.
	wd := make([]uint64, 16)
	ws := make([]uint64, 16)
	for i := range wd {
		wd[i] = uint64(0xD0 + i)
		ws[i] = uint64(0xA0 + i)
	}
	out := sld(Byte, wd, ws, 1)
	// Concat [ws, wd], window starting at n=1: ws[1:]...ws[15], wd[0].
	want := append(append([]uint64{}, ws[1:]...), wd[0])
	if !equalSlices(out, want) {
		t.Errorf("sld(n=1) = %v, want %v", out, want)
	}
}

func TestSldZeroSelectsWsUnchanged(t *testing.T) {
	// ws occupies the low half of the concatenated window, so a zero
	// shift selects ws in full and wd contributes nothing.
	wd := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	ws := []uint64{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}
	out := sld(Byte, wd, ws, 0)
	if !equalSlices(out, ws) {
		t.Errorf("sld(n=0) = %v, want ws unchanged %v", out, ws)
	}
}

func TestSplatBroadcasts(t *testing.T) {
	ws := []uint64{1, 2, 3, 4}
	out := splat(Word, ws, 2)
	for _, v := range out {
		if v != 3 {
			t.Errorf("splat(gpr=2) lane = %d, want 3", v)
		}
	}
}

func TestSplatModuloReducesOutOfRange(t *testing.T) {
	ws := []uint64{1, 2}
	out := splat(Double, ws, 7) // 7 mod 2 = 1
	for _, v := range out {
		if v != 2 {
			t.Errorf("splat(gpr=7) lane = %d, want 2 (lane 1)", v)
		}
	}
}

func TestLdiBroadcastsSignExtended(t *testing.T) {
	// s10 = 0x3FF is -1 in 10-bit two's complement; at df=word it
	// broadcasts as the word-wide all-ones pattern.
	out := ldi(Word, 0x3FF)
	want := dfMaxUint(Word)
	for _, v := range out {
		if v != want {
			t.Errorf("ldi(word, -1) lane = 0x%X, want 0x%X", v, want)
		}
	}
}

func TestLdiByteUsesLowByteDirectly(t *testing.T) {
	out := ldi(Byte, 0x1FF) // low 8 bits: 0xFF
	for _, v := range out {
		if v != 0xFF {
			t.Errorf("ldi(byte, 0x1FF) lane = 0x%X, want 0xFF", v)
		}
	}
}

func TestMoveVIsIdentity(t *testing.T) {
	ws := []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	out := moveV(ws)
	if !equalSlices(out, ws) {
		t.Errorf("moveV = %v, want %v", out, ws)
	}
}

func equalSlices(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
