package msa

import "testing"

func TestMaxMinS(t *testing.T) {
	if got := maxS(-5, 3); got != 3 {
		t.Errorf("maxS(-5,3) = %d, want 3", got)
	}
	if got := minS(-5, 3); got != -5 {
		t.Errorf("minS(-5,3) = %d, want -5", got)
	}
}

func TestMaxMinU(t *testing.T) {
	if got := maxU(5, 3); got != 5 {
		t.Errorf("maxU(5,3) = %d, want 5", got)
	}
	if got := minU(5, 3); got != 3 {
		t.Errorf("minU(5,3) = %d, want 3", got)
	}
}

func TestMaxMinAReturnSignedOperand(t *testing.T) {
	// |a|=5 > |b|=3, maxA returns a (the original signed value -5, not 5).
	if got := maxA(-5, 3); got != -5 {
		t.Errorf("maxA(-5,3) = %d, want -5 (original operand on the winning side)", got)
	}
	if got := minA(-5, 3); got != 3 {
		t.Errorf("minA(-5,3) = %d, want 3", got)
	}
}

func TestCompareResultsAreAllOnesOrZero(t *testing.T) {
	if got := ceq(Byte, 5, 5); got != 0xFF {
		t.Errorf("ceq(5,5) = 0x%X, want 0xFF", got)
	}
	if got := ceq(Byte, 5, 6); got != 0 {
		t.Errorf("ceq(5,6) = 0x%X, want 0", got)
	}
	if got := cltS(Byte, -1, 0); got != 0xFF {
		t.Errorf("cltS(-1,0) = 0x%X, want 0xFF", got)
	}
	if got := cltU(Byte, 0xFF, 0); got != 0 {
		t.Errorf("cltU(255,0) = 0x%X, want 0", got)
	}
	if got := cleS(Byte, 5, 5); got != 0xFF {
		t.Errorf("cleS(5,5) = 0x%X, want 0xFF", got)
	}
	if got := cleU(Byte, 6, 5); got != 0 {
		t.Errorf("cleU(6,5) = 0x%X, want 0", got)
	}
}
