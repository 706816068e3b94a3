package msa

// The horizontal-add/sub and dot-product family split a W-bit lane into
// its low and high W/2-bit halves ("even"/"odd", spec.md §4.C) and
// operate on those halves at the next-narrower data format. Valid only
// for df ∈ {half, word, double}; gating df = byte is the dispatch
// wrapper's responsibility (spec.md §9, "Open question").

// halfDF returns the data format one notch narrower than df (the width
// of df's "even"/"odd" halves).
func halfDF(df DF) DF {
	return df - 1
}

// evenRaw returns the low W/2 bits of a raw W-bit lane value.
func evenRaw(raw uint64, df DF) uint64 {
	return zeroExtend(raw, halfDF(df))
}

// oddRaw returns the high W/2 bits of a raw W-bit lane value.
func oddRaw(raw uint64, df DF) uint64 {
	return raw >> DFBits(halfDF(df))
}

func evenS(raw uint64, df DF) int64 {
	return signExtend(evenRaw(raw, df), halfDF(df))
}

func oddS(raw uint64, df DF) int64 {
	return signExtend(oddRaw(raw, df), halfDF(df))
}

func evenU(raw uint64, df DF) uint64 {
	return evenRaw(raw, df)
}

func oddU(raw uint64, df DF) uint64 {
	return oddRaw(raw, df)
}

// haddS computes hadd_s: odd(a) + even(b), both sign-extended halves.
func haddS(rawA, rawB uint64, df DF) int64 {
	return oddS(rawA, df) + evenS(rawB, df)
}

func haddU(rawA, rawB uint64, df DF) uint64 {
	return oddU(rawA, df) + evenU(rawB, df)
}

// hsubS computes hsub_s: odd(a) - even(b).
func hsubS(rawA, rawB uint64, df DF) int64 {
	return oddS(rawA, df) - evenS(rawB, df)
}

func hsubU(rawA, rawB uint64, df DF) uint64 {
	return oddU(rawA, df) - evenU(rawB, df)
}

// dotpS computes dotp_s: even(a)*even(b) + odd(a)*odd(b).
func dotpS(rawA, rawB uint64, df DF) int64 {
	return evenS(rawA, df)*evenS(rawB, df) + oddS(rawA, df)*oddS(rawB, df)
}

func dotpU(rawA, rawB uint64, df DF) uint64 {
	return evenU(rawA, df)*evenU(rawB, df) + oddU(rawA, df)*oddU(rawB, df)
}

// dpaddS computes dpadd_s: d + even(a)*even(b) + odd(a)*odd(b).
func dpaddS(d int64, rawA, rawB uint64, df DF) int64 {
	return d + dotpS(rawA, rawB, df)
}

func dpaddU(d uint64, rawA, rawB uint64, df DF) uint64 {
	return d + dotpU(rawA, rawB, df)
}

// dpsubS computes dpsub_s: d - (even(a)*even(b) + odd(a)*odd(b)).
func dpsubS(d int64, rawA, rawB uint64, df DF) int64 {
	return d - dotpS(rawA, rawB, df)
}

func dpsubU(d uint64, rawA, rawB uint64, df DF) uint64 {
	return d - dotpU(rawA, rawB, df)
}
