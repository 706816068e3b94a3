package msa

// The kernels in this file take lane operands already sign- or
// zero-extended to 64 bits per the signedness implied by their name
// (spec.md §4.C). Results are returned as a 64-bit word; truncation to
// the destination lane width happens when the dispatch wrapper stores
// the value (spec.md invariant 2).

// addA computes add_a: |a| + |b| on sign-extended operands.
func addA(a, b int64) uint64 {
	return absInt64(a) + absInt64(b)
}

// addV computes addv: two's-complement wrapping add.
func addV(a, b int64) int64 {
	return a + b
}

// subV computes subv: two's-complement wrapping subtract.
func subV(a, b int64) int64 {
	return a - b
}

// addsS computes adds_s: signed saturating add, clamped to
// [DF_MIN_INT(df), DF_MAX_INT(df)].
func addsS(df DF, a, b int64) int64 {
	sum := a + b
	lo, hi := dfMinInt(df), dfMaxInt(df)
	// Overflow can only happen when a and b share a sign; detect it via
	// the identity that overflow flips the result's sign relative to
	// the operands, rather than computing in a wider type.
	if a >= 0 && b >= 0 && sum < a {
		return hi
	}
	if a < 0 && b < 0 && sum > a {
		return lo
	}
	return clampSigned(sum, lo, hi)
}

// addsU computes adds_u: unsigned saturating add of the zero-extended
// operands, clamped to DF_MAX_UINT(df).
func addsU(df DF, a, b uint64) uint64 {
	max := dfMaxUint(df)
	sum := a + b
	if sum < a || sum > max { // native uint64 wraparound, or in-range but over max
		return max
	}
	return sum
}

// addsA computes adds_a: saturating sum of absolute values.
func addsA(df DF, a, b int64) int64 {
	max := dfMaxInt(df)
	absA, absB := absInt64(a), absInt64(b)
	if absA > uint64(max) || absB > uint64(max) {
		return max
	}
	sum := absA + absB
	if sum > uint64(max) {
		return max
	}
	return int64(sum)
}

// subsS computes subs_s: signed saturating subtract.
func subsS(df DF, a, b int64) int64 {
	diff := a - b
	lo, hi := dfMinInt(df), dfMaxInt(df)
	if b < 0 && a >= 0 && diff < a {
		return hi
	}
	if b > 0 && a < 0 && diff > a {
		return lo
	}
	return clampSigned(diff, lo, hi)
}

// subsU computes subs_u: max(0, a - b) on zero-extended operands.
func subsU(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

// subsuuS computes subsuu_s: a and b taken unsigned, result is a - b
// clamped to the signed range [DF_MIN_INT, DF_MAX_INT].
func subsuuS(df DF, a, b uint64) int64 {
	diff := int64(a) - int64(b)
	return clampSigned(diff, dfMinInt(df), dfMaxInt(df))
}

// subsusU computes subsus_u: a unsigned, b signed.
func subsusU(df DF, a uint64, b int64) uint64 {
	if b >= 0 {
		ub := uint64(b)
		if ub >= a {
			return 0
		}
		return a - ub
	}
	sum := a + absInt64(b)
	if sum < a { // native uint64 wraparound
		return dfMaxUint(df)
	}
	return clampUnsigned(sum, dfMaxUint(df))
}

// asubS computes asub_s: signed absolute difference.
func asubS(a, b int64) uint64 {
	if a > b {
		return uint64(a - b)
	}
	return uint64(b - a)
}

// asubU computes asub_u: unsigned absolute difference.
func asubU(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
