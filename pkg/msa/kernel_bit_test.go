package msa

import "testing"

func TestBclrBsetBneg(t *testing.T) {
	if got := bclr(Byte, 0xFF, 3); got != 0xF7 {
		t.Errorf("bclr(0xFF, 3) = 0x%X, want 0xF7", got)
	}
	if got := bset(Byte, 0x00, 3); got != 0x08 {
		t.Errorf("bset(0x00, 3) = 0x%X, want 0x08", got)
	}
	if got := bneg(Byte, 0x08, 3); got != 0x00 {
		t.Errorf("bneg(0x08, 3) = 0x%X, want 0x00", got)
	}
	// BIT_POSITION wraps modulo the lane width.
	if got := bset(Byte, 0x00, 11); got != 0x08 {
		t.Errorf("bset(0x00, 11) = 0x%X, want 0x08 (11 mod 8 = 3)", got)
	}
}

func TestBclrBsetRoundTrip(t *testing.T) {
	// bclr(bset(x, k), k) = x & ~(1 << (k mod W)).
	x := uint64(0x5A)
	k := uint64(5)
	got := bclr(Byte, bset(Byte, x, k), k)
	want := x &^ (uint64(1) << bitPosition(k, Byte))
	if got != want {
		t.Errorf("bclr(bset(x,k),k) = 0x%X, want 0x%X", got, want)
	}
}

func TestBnegTwiceIsIdentity(t *testing.T) {
	x := uint64(0xA5)
	k := uint64(2)
	got := bneg(Byte, bneg(Byte, x, k), k)
	if got != zeroExtend(x, Byte) {
		t.Errorf("bneg(bneg(x,k),k) = 0x%X, want 0x%X", got, zeroExtend(x, Byte))
	}
}

func TestBinslFullWidthIsA(t *testing.T) {
	// binsl(d, a, W-1) replaces d with a (full-width field).
	if got := binsl(Byte, 0xAA, 0x55, 7); got != 0x55 {
		t.Errorf("binsl(d, a, 7) = 0x%X, want 0x55 (full field)", got)
	}
}

func TestBinslPartialField(t *testing.T) {
	// Top 4 bits (BIT_POSITION=3, field width 4) of a replace d's top 4 bits.
	if got := binsl(Byte, 0x0F, 0xF0, 3); got != 0xFF {
		t.Errorf("binsl(0x0F, 0xF0, 3) = 0x%X, want 0xFF", got)
	}
}

func TestBinsrFullWidthIsA(t *testing.T) {
	if got := binsr(Byte, 0xAA, 0x55, 7); got != 0x55 {
		t.Errorf("binsr(d, a, 7) = 0x%X, want 0x55 (full field)", got)
	}
}

func TestBinsrPartialField(t *testing.T) {
	// Bottom 4 bits (BIT_POSITION=3, field width 4) of a replace d's bottom 4 bits.
	if got := binsr(Byte, 0xF0, 0x0F, 3); got != 0xFF {
		t.Errorf("binsr(0xF0, 0x0F, 3) = 0x%X, want 0xFF", got)
	}
}

func TestByteImmediateBitwiseFamily(t *testing.T) {
	if got := andiB(0xF0, 0x3C); got != 0x30 {
		t.Errorf("andiB(0xF0, 0x3C) = 0x%X, want 0x30", got)
	}
	if got := oriB(0xF0, 0x0C); got != 0xFC {
		t.Errorf("oriB(0xF0, 0x0C) = 0x%X, want 0xFC", got)
	}
	if got := noriB(0x0F, 0xF0); got != 0x00 {
		t.Errorf("noriB(0x0F, 0xF0) = 0x%X, want 0x00", got)
	}
	if got := xoriB(0xFF, 0x0F); got != 0xF0 {
		t.Errorf("xoriB(0xFF, 0x0F) = 0x%X, want 0xF0", got)
	}
}

func TestBitMoveFamily(t *testing.T) {
	// bmnzi.b: dest = (dest & ~i8) | (ws & i8).
	if got := bmnziB(0xAA, 0x55, 0x0F); got != 0xA5 {
		t.Errorf("bmnziB(0xAA, 0x55, 0x0F) = 0x%X, want 0xA5", got)
	}
	// bmzi.b: dest = (dest & i8) | (ws & ~i8).
	if got := bmziB(0xAA, 0x55, 0x0F); got != 0x5A {
		t.Errorf("bmziB(0xAA, 0x55, 0x0F) = 0x%X, want 0x5A", got)
	}
	// bseli.b: dest = (ws & ~dest) | (i8 & dest), here arg order (d, a, b).
	if got := bseliB(0x0F, 0xAA, 0x55); got != 0xA5 {
		t.Errorf("bseliB(0x0F, 0xAA, 0x55) = 0x%X, want 0xA5", got)
	}
}

func TestApplyBseliBBroadcastsImmediate(t *testing.T) {
	c := NewCPU()
	for i := range c.VReg[0] {
		c.VReg[0][i] = 0x0F // wd (dest mask)
		c.VReg[1][i] = 0xAA // ws
	}
	ApplyBseliB(c, 0, 1, 0x55) // i8 broadcast, not a register
	for i, got := range c.VReg[0] {
		if got != 0xA5 {
			t.Errorf("lane %d: got 0x%X, want 0xA5", i, got)
		}
	}
}
