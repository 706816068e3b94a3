package conform

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/go-cmp/cmp"
	"github.com/oisee/msa-core/pkg/msa"
)

// Properties is the full set of universal laws checked against random
// inputs (spec.md §8, "Testable properties").
var Properties = []Property{
	{"lane independence of add_v", propLaneIndependence},
	{"width truncation of add_v", propWidthTruncation},
	{"saturation is idempotent", propSaturationIdempotent},
	{"unsigned saturation never underflows", propUnsignedSaturationFloor},
	{"aliasing safety of pckev", propAliasSafety},
	{"splat index is reduced modulo lane count", propSplatModulo},
	{"move_v is the identity", propMoveVIdentity},
	{"modified mask tracks only the written register", propModifiedMask},
	{"compare results are 0 or all-ones", propCompareAllOnesOrZero},
}

func freshCPU(a, b msa.Reg) *msa.CPU {
	c := msa.NewCPU()
	c.VReg[1] = a
	c.VReg[2] = b
	return c
}

// propLaneIndependence: perturbing a single lane of ws must change at
// most that one output lane of add_v, never its neighbors (spec.md §8,
// "lane independence").
func propLaneIndependence(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c1 := freshCPU(a, b)
	msa.ApplyAddV(c1, df, 0, 1, 2)

	lane := rng.IntN(msa.Lanes(df))
	a2 := a
	perturbRawLane(&a2, df, lane, rng)
	c2 := freshCPU(a2, b)
	msa.ApplyAddV(c2, df, 0, 1, 2)

	for i := 0; i < msa.Lanes(df); i++ {
		if i == lane {
			continue
		}
		if rawLaneEqual(&c1.VReg[0], &c2.VReg[0], df, i) {
			continue
		}
		return false, fmt.Sprintf("df=%d lane %d changed when only lane %d was perturbed", df, i, lane)
	}
	return true, ""
}

// propWidthTruncation: add_v's result in each lane must not depend on
// bits outside that lane's width, i.e. it equals the same sum computed
// after masking both operands to df width (spec.md §8, "width truncation").
func propWidthTruncation(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c := freshCPU(a, b)
	msa.ApplyAddV(c, df, 0, 1, 2)
	for i := 0; i < msa.Lanes(df); i++ {
		got := rawLane(&c.VReg[0], df, i)
		want := (rawLane(&a, df, i) + rawLane(&b, df, i)) & dfMaskExported(df)
		if got != want {
			return false, fmt.Sprintf("df=%d lane %d: got 0x%X, want 0x%X", df, i, got, want)
		}
	}
	return true, ""
}

// propSaturationIdempotent: applying adds_s to a result that is already
// saturated must not change it further (spec.md §8, "idempotence of
// saturation").
func propSaturationIdempotent(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c := freshCPU(a, b)
	msa.ApplyAddsS(c, df, 0, 1, 2)
	once := c.VReg[0]

	c2 := msa.NewCPU()
	c2.VReg[1] = once
	c2.VReg[2] = once
	msa.ApplyAddsS(c2, df, 0, 1, 2)

	for i := 0; i < msa.Lanes(df); i++ {
		v := rawLane(&once, df, i)
		max := uint64(dfMaxIntExported(df))
		min := dfMinIntExported(df)
		if v != max && int64(signExtendExported(v, df)) != min {
			continue // not saturated, nothing to check
		}
		if !rawLaneEqual(&c.VReg[0], &c2.VReg[0], df, i) {
			return false, fmt.Sprintf("df=%d lane %d: re-saturation changed an already-saturated value", df, i)
		}
	}
	return true, ""
}

// propUnsignedSaturationFloor: adds_u's result is never less than
// either unsigned input (it can only saturate upward, never underflow).
func propUnsignedSaturationFloor(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c := freshCPU(a, b)
	msa.ApplyAddsU(c, df, 0, 1, 2)
	for i := 0; i < msa.Lanes(df); i++ {
		got := rawLane(&c.VReg[0], df, i)
		av, bv := rawLane(&a, df, i), rawLane(&b, df, i)
		if got < av || got < bv {
			return false, fmt.Sprintf("df=%d lane %d: result 0x%X below an input", df, i, got)
		}
	}
	return true, ""
}

// propAliasSafety: pckev(ws, wt) must give the same answer whether or
// not the destination register aliases ws (spec.md §4.D,
// invariant 4 — shape kernels must build a fresh result before
// committing).
func propAliasSafety(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)

	c1 := freshCPU(a, b)
	msa.ApplyPckev(c1, df, 0, 1, 2)

	c2 := msa.NewCPU()
	c2.VReg[1] = a
	c2.VReg[2] = b
	msa.ApplyPckev(c2, df, 1, 1, 2) // wd aliases ws

	if diff := cmp.Diff(c1.VReg[0], c2.VReg[1]); diff != "" {
		return false, "pckev result differs when wd aliases ws: " + diff
	}
	return true, ""
}

// propSplatModulo: splat never raises an exception — any GPR value
// reduces modulo the lane count to a valid index (spec.md §8, boundary
// scenario 8).
func propSplatModulo(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a := randomReg(rng)
	c := msa.NewCPU()
	c.VReg[1] = a
	c.GPR[3] = rng.Uint64()

	var detail string
	err := msa.Guarded(func() {
		msa.ApplySplat(c, df, 0, 1, 3)
	})
	if err != nil {
		return false, fmt.Sprintf("splat raised %v", err)
	}
	want := int(c.GPR[3] % uint64(msa.Lanes(df)))
	gotFirst := rawLane(&c.VReg[0], df, 0)
	wantVal := rawLane(&a, df, want)
	if gotFirst != wantVal {
		detail = fmt.Sprintf("df=%d: splat broadcast lane mismatch, got 0x%X want 0x%X", df, gotFirst, wantVal)
		return false, detail
	}
	return true, ""
}

// propMoveVIdentity: move_v(ws) reproduces ws exactly, for every df view.
func propMoveVIdentity(rng *rand.Rand) (bool, string) {
	a := randomReg(rng)
	c := msa.NewCPU()
	c.VReg[1] = a
	msa.ApplyMoveV(c, 0, 1)
	if diff := cmp.Diff(a, c.VReg[0]); diff != "" {
		return false, "move_v changed register contents: " + diff
	}
	return true, ""
}

// propModifiedMask: with WRPEnabled set, an Apply* call sets exactly
// bit wd of ModifiedMask and no other bit (spec.md §4.E, "msamodify").
func propModifiedMask(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c := freshCPU(a, b)
	c.WRPEnabled = true
	wd := rng.IntN(msa.NumRegs)
	msa.ApplyAddV(c, df, wd, 1, 2)
	if c.ModifiedMask != uint32(1)<<uint(wd) {
		return false, fmt.Sprintf("ModifiedMask = 0x%X, want bit %d only", c.ModifiedMask, wd)
	}
	return true, ""
}

// propCompareAllOnesOrZero: ceq always produces a lane that is either
// all-zero or all-ones bits, never a partial mask.
func propCompareAllOnesOrZero(rng *rand.Rand) (bool, string) {
	df := randomDF(rng)
	a, b := randomReg(rng), randomReg(rng)
	c := freshCPU(a, b)
	msa.ApplyCeq(c, df, 0, 1, 2)
	mask := dfMaskExported(df)
	for i := 0; i < msa.Lanes(df); i++ {
		v := rawLane(&c.VReg[0], df, i)
		if v != 0 && v != mask {
			return false, fmt.Sprintf("df=%d lane %d: ceq result 0x%X is neither all-zero nor all-ones", df, i, v)
		}
	}
	return true, ""
}
