package msa

import "testing"

func TestSraIsArithmetic(t *testing.T) {
	// -8 (0xF8 at byte width) shifted right by 1 arithmetically stays negative.
	a := signExtend(0xF8, Byte)
	if got := sra(Byte, a, 1); got != -4 {
		t.Errorf("sra(-8, 1) = %d, want -4", got)
	}
}

func TestSrlIsLogical(t *testing.T) {
	if got := srl(Byte, 0xF8, 1); got != 0x7C {
		t.Errorf("srl(0xF8, 1) = 0x%X, want 0x7C", got)
	}
}

func TestSrarRoundsAwayFromZero(t *testing.T) {
	// spec.md §8 boundary scenario 5: word lane 3 shifted by 1.
	if got := srar(Word, 3, 1); got != 2 {
		t.Errorf("srar(3, 1) = %d, want 2", got)
	}
	if got := sra(Word, 3, 1); got != 1 {
		t.Errorf("sra(3, 1) = %d, want 1", got)
	}
}

func TestSrarZeroShiftIsIdentity(t *testing.T) {
	if got := srar(Word, 42, 0); got != 42 {
		t.Errorf("srar(42, 0) = %d, want 42 (k=0 returns a unchanged)", got)
	}
}

func TestSrlrMatchesSrarShape(t *testing.T) {
	if got := srlr(Word, 3, 1); got != 2 {
		t.Errorf("srlr(3, 1) = %d, want 2", got)
	}
}

func TestSllWrapsAtWidth(t *testing.T) {
	if got := sll(Byte, 0xFF, 4); got != 0xF0 {
		t.Errorf("sll(0xFF, 4) = 0x%X, want 0xF0", got)
	}
}

func TestSatS(t *testing.T) {
	// m=3 -> clamp to a 4-bit signed range [-8, 7].
	if got := satS(100, 3); got != 7 {
		t.Errorf("satS(100, 3) = %d, want 7", got)
	}
	if got := satS(-100, 3); got != -8 {
		t.Errorf("satS(-100, 3) = %d, want -8", got)
	}
}

func TestSatU(t *testing.T) {
	// m=3 -> clamp to a 4-bit unsigned range [0, 15].
	if got := satU(100, 3); got != 15 {
		t.Errorf("satU(100, 3) = %d, want 15", got)
	}
	if got := satU(5, 3); got != 5 {
		t.Errorf("satU(5, 3) = %d, want 5 (no saturation)", got)
	}
}
