package msa

// checkIndex raises ExcRI if n is out of range for df (spec.md §4.B).
// Call sites first reduce n modulo the lane count; the check afterward
// is defensive ("call sites always supply an in-range i", per spec.md
// §4.B) but is never skipped, so a decoder bug surfaces as a guest trap
// rather than an out-of-bounds read.
func checkIndex(df DF, n int) {
	if n < 0 || n >= Lanes(df) {
		raiseRI(df, n)
	}
}

// normalizeLane reduces i modulo the lane count for df, then bounds-checks it.
func normalizeLane(df DF, i int) int {
	n := Lanes(df)
	i %= n
	if i < 0 {
		i += n
	}
	checkIndex(df, i)
	return i
}

// loadU returns lane i of register reg[regIdx] zero-extended to 64 bits.
func loadU(c *CPU, regIdx int, df DF, i int) uint64 {
	i = normalizeLane(df, i)
	return zeroExtend(c.VReg[regIdx].rawLane(df, i), df)
}

// loadS returns lane i of register reg[regIdx] sign-extended to 64 bits.
func loadS(c *CPU, regIdx int, df DF, i int) int64 {
	i = normalizeLane(df, i)
	return signExtend(c.VReg[regIdx].rawLane(df, i), df)
}

// store writes the low W bits of value to lane i of register reg[regIdx].
func store(c *CPU, regIdx int, df DF, i int, value uint64) {
	i = normalizeLane(df, i)
	c.VReg[regIdx].setRawLane(df, i, value)
}
