package msa

import "testing"

func TestAveFloorsWithoutOverflow(t *testing.T) {
	// Both operands near DF_MAX_INT: a naive (a+b)/2 would overflow an
	// 8-bit accumulator; ave_s must not.
	if got := aveS(dfMaxInt(Byte), dfMaxInt(Byte)); got != dfMaxInt(Byte) {
		t.Errorf("aveS(max,max) = %d, want %d", got, dfMaxInt(Byte))
	}
	if got := aveS(3, 4); got != 3 {
		t.Errorf("aveS(3,4) = %d, want 3 (floor)", got)
	}
}

func TestAverRoundsUpOnTie(t *testing.T) {
	if got := averS(3, 4); got != 4 {
		t.Errorf("averS(3,4) = %d, want 4 (rounds up on tie)", got)
	}
	if got := aveS(3, 4); got == averS(3, 4) {
		t.Errorf("aveS and averS should disagree on a tie")
	}
}

func TestAveU(t *testing.T) {
	if got := aveU(10, 11); got != 10 {
		t.Errorf("aveU(10,11) = %d, want 10 (floor)", got)
	}
	if got := averU(10, 11); got != 11 {
		t.Errorf("averU(10,11) = %d, want 11 (rounds up)", got)
	}
}
