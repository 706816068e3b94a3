package msa

import "testing"

func TestAddsSSaturates(t *testing.T) {
	if got := addsS(Byte, 100, 100); got != 127 {
		t.Errorf("addsS(100,100) = %d, want 127", got)
	}
	if got := addsS(Byte, -100, -100); got != -128 {
		t.Errorf("addsS(-100,-100) = %d, want -128", got)
	}
	if got := addsS(Byte, 10, -5); got != 5 {
		t.Errorf("addsS(10,-5) = %d, want 5 (no saturation)", got)
	}
}

func TestAddsUSaturates(t *testing.T) {
	if got := addsU(Byte, 200, 200); got != 255 {
		t.Errorf("addsU(200,200) = %d, want 255", got)
	}
	if got := addsU(Byte, 10, 20); got != 30 {
		t.Errorf("addsU(10,20) = %d, want 30", got)
	}
}

func TestAddsASaturatesAbsSum(t *testing.T) {
	if got := addsA(Byte, -100, -100); got != 127 {
		t.Errorf("addsA(-100,-100) = %d, want 127", got)
	}
	if got := addsA(Byte, -3, 4); got != 7 {
		t.Errorf("addsA(-3,4) = %d, want 7", got)
	}
}

func TestSubsSSaturates(t *testing.T) {
	if got := subsS(Byte, 100, -100); got != 127 {
		t.Errorf("subsS(100,-100) = %d, want 127", got)
	}
	if got := subsS(Byte, -100, 100); got != -128 {
		t.Errorf("subsS(-100,100) = %d, want -128", got)
	}
}

func TestSubsUFloorsAtZero(t *testing.T) {
	if got := subsU(5, 10); got != 0 {
		t.Errorf("subsU(5,10) = %d, want 0", got)
	}
	if got := subsU(10, 5); got != 5 {
		t.Errorf("subsU(10,5) = %d, want 5", got)
	}
}

func TestSubsuuS(t *testing.T) {
	if got := subsuuS(Byte, 5, 10); got != -5 {
		t.Errorf("subsuuS(5,10) = %d, want -5", got)
	}
	if got := subsuuS(Byte, 255, 0); got != 127 {
		t.Errorf("subsuuS(255,0) = %d, want 127 (clamped)", got)
	}
}

func TestSubsusU(t *testing.T) {
	if got := subsusU(Byte, 10, 3); got != 7 {
		t.Errorf("subsusU(10,3) = %d, want 7", got)
	}
	if got := subsusU(Byte, 10, -3); got != 13 {
		t.Errorf("subsusU(10,-3) = %d, want 13", got)
	}
	if got := subsusU(Byte, 10, 20); got != 0 {
		t.Errorf("subsusU(10,20) = %d, want 0", got)
	}
}

func TestAsub(t *testing.T) {
	if got := asubS(-5, 3); got != 8 {
		t.Errorf("asubS(-5,3) = %d, want 8", got)
	}
	if got := asubU(3, 10); got != 7 {
		t.Errorf("asubU(3,10) = %d, want 7", got)
	}
}

func TestAddAAbsoluteSum(t *testing.T) {
	if got := addA(-5, -7); got != 12 {
		t.Errorf("addA(-5,-7) = %d, want 12", got)
	}
}
