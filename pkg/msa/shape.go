package msa

// The kernels in this file operate on a full register's worth of raw,
// unextended lane values at once rather than one lane at a time: source
// and destination may alias (spec.md §4.D, invariant 4), so each
// function here builds its result in a fresh slice and lets the
// dispatch wrapper commit it to the destination register in one bulk
// copy, rather than writing lanes in place.

// ilvev interleaves even lanes: output lane 2i takes wt's even lane 2i,
// output lane 2i+1 takes ws's even lane 2i.
func ilvev(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n/2; i++ {
		out[2*i] = wt[2*i]
		out[2*i+1] = ws[2*i]
	}
	return out
}

// ilvod is ilvev's mirror over odd lanes (2i+1).
func ilvod(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n/2; i++ {
		out[2*i] = wt[2*i+1]
		out[2*i+1] = ws[2*i+1]
	}
	return out
}

// ilvr interleaves the right (low) halves of ws and wt.
func ilvr(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n/2; i++ {
		out[2*i] = wt[i]
		out[2*i+1] = ws[i]
	}
	return out
}

// ilvl interleaves the left (upper) halves of ws and wt.
func ilvl(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	half := n / 2
	out := make([]uint64, n)
	for i := 0; i < half; i++ {
		out[2*i] = wt[half+i]
		out[2*i+1] = ws[half+i]
	}
	return out
}

// pckev packs even lanes: the output's right half is wt's even lanes,
// the output's left half is ws's even lanes.
func pckev(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	half := n / 2
	out := make([]uint64, n)
	for j := 0; j < half; j++ {
		out[j] = wt[2*j]
		out[half+j] = ws[2*j]
	}
	return out
}

// pckod is pckev's mirror over odd lanes.
func pckod(df DF, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	half := n / 2
	out := make([]uint64, n)
	for j := 0; j < half; j++ {
		out[j] = wt[2*j+1]
		out[half+j] = ws[2*j+1]
	}
	return out
}

// vshf computes the per-lane vector shuffle: wdIn supplies the control
// byte for each output lane (spec.md §4.D). The control is always
// interpreted as a byte regardless of df — if its top two bits (0xc0)
// are set, the output lane is zero; otherwise the low six bits, reduced
// modulo 2n, select a lane of wt (k < n) or ws (k >= n).
func vshf(df DF, wdIn, ws, wt []uint64) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		sel := wdIn[i]
		if sel&0xc0 != 0 {
			out[i] = 0
			continue
		}
		k := int((sel & 0x3f) % uint64(2*n))
		if k < n {
			out[i] = wt[k]
		} else {
			out[i] = ws[k-n]
		}
	}
	return out
}

// shf permutes within each group of four consecutive lanes of ws using
// two-bit fields of imm to select the source lane inside the group
// (spec.md §4.D). Valid only for df ∈ {byte, half, word}; gating df =
// double is the dispatch wrapper's responsibility.
func shf(df DF, ws []uint64, imm uint64) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		group := i &^ 3
		sel := int((imm >> uint(2*(i&3))) & 3)
		out[i] = ws[group+sel]
	}
	return out
}

// sldSliceCount returns the number of independent slide sub-registers
// for df, and the lane count within each slice. At df = byte the slide
// spans the whole register (spec.md §4.D); at wider df the register
// splits into 2^df slices, capped so a slice never shrinks below one
// lane (df = double leaves two one-lane slices, each of which slides to
// itself — consistent with there being no narrower partner lane to
// slide in from).
func sldSliceCount(df DF) (numSlices, lanesPerSlice int) {
	n := Lanes(df)
	if df == Byte {
		return 1, n
	}
	ns := 1 << uint(df)
	if ns > n {
		ns = n
	}
	return ns, n / ns
}

// sld slides ws into wd within each independent slice: conceptually
// concatenate [ws-slice, wd-slice], then keep the L-lane window starting
// n = gpr mod L positions in (spec.md §4.D).
func sld(df DF, wd, ws []uint64, gpr uint64) []uint64 {
	numSlices, lanesPerSlice := sldSliceCount(df)
	out := make([]uint64, Lanes(df))
	n := int(gpr) % lanesPerSlice
	if n < 0 {
		n += lanesPerSlice
	}
	for s := 0; s < numSlices; s++ {
		base := s * lanesPerSlice
		concat := make([]uint64, 2*lanesPerSlice)
		copy(concat, ws[base:base+lanesPerSlice])
		copy(concat[lanesPerSlice:], wd[base:base+lanesPerSlice])
		copy(out[base:base+lanesPerSlice], concat[n:n+lanesPerSlice])
	}
	return out
}

// splat broadcasts lane (gpr mod lanes) of ws to every output lane. The
// index is bounds-checked after the modulo reduction even though it can
// never fail (spec.md §4.B's defensive pattern, §8 boundary scenario 8).
func splat(df DF, ws []uint64, gpr uint64) []uint64 {
	idx := normalizeLane(df, int(gpr))
	n := Lanes(df)
	out := make([]uint64, n)
	for i := range out {
		out[i] = ws[idx]
	}
	return out
}

// ldi broadcasts an immediate to every lane: at df = byte the low 8
// bits of s10 are the pattern; at wider df, s10 is sign-extended from
// 10 bits to W before broadcast (spec.md §4.D).
func ldi(df DF, s10 uint64) []uint64 {
	n := Lanes(df)
	var pattern uint64
	if df == Byte {
		pattern = s10 & 0xff
	} else {
		const fieldBits = 10
		signed := int64(s10<<(64-fieldBits)) >> (64 - fieldBits)
		pattern = zeroExtend(uint64(signed), df)
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = pattern
	}
	return out
}

// moveV copies ws unchanged (the move_v whole-register copy, spec.md
// §9 supplemental feature list).
func moveV(ws []uint64) []uint64 {
	out := make([]uint64, len(ws))
	copy(out, ws)
	return out
}
