package msa

// The functions in this file are the per-instruction entry points a CPU
// emulator calls once per decoded MSA instruction (spec.md §4.E, §6):
// each loads its operand lanes through the element access substrate,
// invokes the matching kernel, stores the result, and updates
// ModifiedMask. Immediate-form instructions (spec.md §4.C, "All
// immediate-form variants") reuse the same kernel with the second
// operand replaced by a pre-extended broadcast value instead of a
// second source register.

// --- add/sub family ---

func ApplyAddA(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, addA(loadS(c, ws, df, i), loadS(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyAddV(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(addV(loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

// ApplyAddVI is addvi: the immediate is taken as already appropriately
// extended to 64 bits by the caller (spec.md §9, "Open question").
func ApplyAddVI(c *CPU, df DF, wd, ws int, imm int64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(addV(loadS(c, ws, df, i), imm)))
	}
	c.markModified(wd)
}

func ApplySubV(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(subV(loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySubVI(c *CPU, df DF, wd, ws int, imm int64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(subV(loadS(c, ws, df, i), imm)))
	}
	c.markModified(wd)
}

func ApplyAddsS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(addsS(df, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyAddsU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, addsU(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyAddsA(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(addsA(df, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySubsS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(subsS(df, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySubsU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, subsU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplySubsuuS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(subsuuS(df, loadU(c, ws, df, i), loadU(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySubsusU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, subsusU(df, loadU(c, ws, df, i), loadS(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyAsubS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, asubS(loadS(c, ws, df, i), loadS(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyAsubU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, asubU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

// --- average family ---

func ApplyAveS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(aveS(loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyAveU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, aveU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyAverS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(averS(loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyAverU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, averU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

// --- min/max/compare family ---

func ApplyMaxS(c *CPU, df DF, wd, ws, wt int) { applyMaxMinS(c, df, wd, ws, wt, maxS) }
func ApplyMinS(c *CPU, df DF, wd, ws, wt int) { applyMaxMinS(c, df, wd, ws, wt, minS) }
func ApplyMaxA(c *CPU, df DF, wd, ws, wt int) { applyMaxMinS(c, df, wd, ws, wt, maxA) }
func ApplyMinA(c *CPU, df DF, wd, ws, wt int) { applyMaxMinS(c, df, wd, ws, wt, minA) }

func applyMaxMinS(c *CPU, df DF, wd, ws, wt int, kernel func(a, b int64) int64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(kernel(loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyMaxSI(c *CPU, df DF, wd, ws int, imm int64) { applyMaxMinSI(c, df, wd, ws, imm, maxS) }
func ApplyMinSI(c *CPU, df DF, wd, ws int, imm int64) { applyMaxMinSI(c, df, wd, ws, imm, minS) }

func applyMaxMinSI(c *CPU, df DF, wd, ws int, imm int64, kernel func(a, b int64) int64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(kernel(loadS(c, ws, df, i), imm)))
	}
	c.markModified(wd)
}

func ApplyMaxU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, maxU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyMinU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, minU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyMaxUI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, maxU(loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplyMinUI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, minU(loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func applyCompareS(c *CPU, df DF, wd, ws, wt int, kernel func(df DF, a, b int64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadS(c, ws, df, i), loadS(c, wt, df, i)))
	}
	c.markModified(wd)
}

func applyCompareSI(c *CPU, df DF, wd, ws int, imm int64, kernel func(df DF, a, b int64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadS(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func applyCompareU(c *CPU, df DF, wd, ws, wt int, kernel func(df DF, a, b uint64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func applyCompareUI(c *CPU, df DF, wd, ws int, imm uint64, kernel func(df DF, a, b uint64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplyCeq(c *CPU, df DF, wd, ws, wt int)  { applyCompareS(c, df, wd, ws, wt, ceq) }
func ApplyCeqI(c *CPU, df DF, wd, ws int, imm int64) {
	applyCompareSI(c, df, wd, ws, imm, ceq)
}
func ApplyCltS(c *CPU, df DF, wd, ws, wt int) { applyCompareS(c, df, wd, ws, wt, cltS) }
func ApplyCltSI(c *CPU, df DF, wd, ws int, imm int64) {
	applyCompareSI(c, df, wd, ws, imm, cltS)
}
func ApplyCltU(c *CPU, df DF, wd, ws, wt int) { applyCompareU(c, df, wd, ws, wt, cltU) }
func ApplyCltUI(c *CPU, df DF, wd, ws int, imm uint64) {
	applyCompareUI(c, df, wd, ws, imm, cltU)
}
func ApplyCleS(c *CPU, df DF, wd, ws, wt int) { applyCompareS(c, df, wd, ws, wt, cleS) }
func ApplyCleSI(c *CPU, df DF, wd, ws int, imm int64) {
	applyCompareSI(c, df, wd, ws, imm, cleS)
}
func ApplyCleU(c *CPU, df DF, wd, ws, wt int) { applyCompareU(c, df, wd, ws, wt, cleU) }
func ApplyCleUI(c *CPU, df DF, wd, ws int, imm uint64) {
	applyCompareUI(c, df, wd, ws, imm, cleU)
}

// --- bitwise family ---

func applyBit(c *CPU, df DF, wd, ws, wt int, kernel func(df DF, a, b uint64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func applyBitI(c *CPU, df DF, wd, ws int, imm uint64, kernel func(df DF, a, b uint64) uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, kernel(df, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplyBclr(c *CPU, df DF, wd, ws, wt int)          { applyBit(c, df, wd, ws, wt, bclr) }
func ApplyBclrI(c *CPU, df DF, wd, ws int, imm uint64) { applyBitI(c, df, wd, ws, imm, bclr) }
func ApplyBset(c *CPU, df DF, wd, ws, wt int)          { applyBit(c, df, wd, ws, wt, bset) }
func ApplyBsetI(c *CPU, df DF, wd, ws int, imm uint64) { applyBitI(c, df, wd, ws, imm, bset) }
func ApplyBneg(c *CPU, df DF, wd, ws, wt int)          { applyBit(c, df, wd, ws, wt, bneg) }
func ApplyBnegI(c *CPU, df DF, wd, ws int, imm uint64) { applyBitI(c, df, wd, ws, imm, bneg) }

// ApplyBinsl and ApplyBinsr read the previous value of wd before storing
// the new one (spec.md §4.E: "Helpers whose kernel reads the previous
// destination... load wd[i] as a third input before each store").
func ApplyBinsl(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, binsl(df, d, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyBinslI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, binsl(df, d, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplyBinsr(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, binsr(df, d, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyBinsrI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, binsr(df, d, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

// ApplyAndiB, ApplyOriB, ApplyNoriB, ApplyXoriB are byte-only
// immediate bitwise instructions (spec.md §9 supplemental feature list);
// the immediate is the same 8-bit value for every lane.
func ApplyAndiB(c *CPU, wd, ws int, i8 uint64) { applyByteImm(c, wd, ws, i8, andiB) }
func ApplyOriB(c *CPU, wd, ws int, i8 uint64)  { applyByteImm(c, wd, ws, i8, oriB) }
func ApplyNoriB(c *CPU, wd, ws int, i8 uint64) { applyByteImm(c, wd, ws, i8, noriB) }
func ApplyXoriB(c *CPU, wd, ws int, i8 uint64) { applyByteImm(c, wd, ws, i8, xoriB) }

func applyByteImm(c *CPU, wd, ws int, i8 uint64, kernel func(a, i8 uint64) uint64) {
	n := Lanes(Byte)
	for i := 0; i < n; i++ {
		store(c, wd, Byte, i, kernel(loadU(c, ws, Byte, i), i8))
	}
	c.markModified(wd)
}

// applyByteSelI is the dispatch shape shared by bmnzi.b/bmzi.b/bseli.b:
// wd's previous value and ws are per-lane register reads, but the third
// operand is a single 8-bit immediate broadcast to every byte lane, not
// a second source register (original_source/target-mips/msa_helper.c's
// helper_msa_bmnzi_b/bmzi_b/bseli_b all take a uint32_t i8, not wt).
func applyByteSelI(c *CPU, wd, ws int, i8 uint64, kernel func(d, a, b uint64) uint64) {
	n := Lanes(Byte)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, Byte, i)
		store(c, wd, Byte, i, kernel(d, loadU(c, ws, Byte, i), i8))
	}
	c.markModified(wd)
}

func ApplyBmnziB(c *CPU, wd, ws int, i8 uint64) { applyByteSelI(c, wd, ws, i8, bmnziB) }
func ApplyBmziB(c *CPU, wd, ws int, i8 uint64)  { applyByteSelI(c, wd, ws, i8, bmziB) }
func ApplyBseliB(c *CPU, wd, ws int, i8 uint64) { applyByteSelI(c, wd, ws, i8, bseliB) }

// --- shift family ---

func ApplySll(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, sll(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplySllI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, sll(df, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplySra(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(sra(df, loadS(c, ws, df, i), loadU(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySraI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(sra(df, loadS(c, ws, df, i), imm)))
	}
	c.markModified(wd)
}

func ApplySrl(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, srl(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplySrlI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, srl(df, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

func ApplySrar(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(srar(df, loadS(c, ws, df, i), loadU(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplySrarI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(srar(df, loadS(c, ws, df, i), imm)))
	}
	c.markModified(wd)
}

func ApplySrlr(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, srlr(df, loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplySrlrI(c *CPU, df DF, wd, ws int, imm uint64) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, srlr(df, loadU(c, ws, df, i), imm))
	}
	c.markModified(wd)
}

// ApplySatS and ApplySatU are immediate-only: m is the saturation field
// width encoded in the instruction, not a second source register.
func ApplySatS(c *CPU, df DF, wd, ws int, m uint) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(satS(loadS(c, ws, df, i), m)))
	}
	c.markModified(wd)
}

func ApplySatU(c *CPU, df DF, wd, ws int, m uint) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, satU(loadU(c, ws, df, i), m))
	}
	c.markModified(wd)
}

// --- mul/div family ---

func ApplyDivS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(divS(df, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyDivU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, divU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyModS(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(modS(df, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyModU(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, modU(loadU(c, ws, df, i), loadU(c, wt, df, i)))
	}
	c.markModified(wd)
}

func ApplyMaddv(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadS(c, wd, df, i)
		store(c, wd, df, i, uint64(maddv(d, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

func ApplyMsubv(c *CPU, df DF, wd, ws, wt int) {
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadS(c, wd, df, i)
		store(c, wd, df, i, uint64(msubv(d, loadS(c, ws, df, i), loadS(c, wt, df, i))))
	}
	c.markModified(wd)
}

// --- horizontal/dot-product family ---
//
// Valid only for df ∈ {half, word, double}; df = byte is rejected here,
// not inside the kernels themselves (spec.md §9, "Open question").

func requireNotByte(df DF) {
	if df == Byte {
		panic(InvalidDF{DF: df})
	}
}

func ApplyHaddS(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(haddS(loadU(c, ws, df, i), loadU(c, wt, df, i), df)))
	}
	c.markModified(wd)
}

func ApplyHaddU(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, haddU(loadU(c, ws, df, i), loadU(c, wt, df, i), df))
	}
	c.markModified(wd)
}

func ApplyHsubS(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(hsubS(loadU(c, ws, df, i), loadU(c, wt, df, i), df)))
	}
	c.markModified(wd)
}

func ApplyHsubU(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, hsubU(loadU(c, ws, df, i), loadU(c, wt, df, i), df))
	}
	c.markModified(wd)
}

func ApplyDotpS(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, uint64(dotpS(loadU(c, ws, df, i), loadU(c, wt, df, i), df)))
	}
	c.markModified(wd)
}

func ApplyDotpU(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		store(c, wd, df, i, dotpU(loadU(c, ws, df, i), loadU(c, wt, df, i), df))
	}
	c.markModified(wd)
}

func ApplyDpaddS(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadS(c, wd, df, i)
		store(c, wd, df, i, uint64(dpaddS(d, loadU(c, ws, df, i), loadU(c, wt, df, i), df)))
	}
	c.markModified(wd)
}

func ApplyDpaddU(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, dpaddU(d, loadU(c, ws, df, i), loadU(c, wt, df, i), df))
	}
	c.markModified(wd)
}

func ApplyDpsubS(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadS(c, wd, df, i)
		store(c, wd, df, i, uint64(dpsubS(d, loadU(c, ws, df, i), loadU(c, wt, df, i), df)))
	}
	c.markModified(wd)
}

func ApplyDpsubU(c *CPU, df DF, wd, ws, wt int) {
	requireNotByte(df)
	n := Lanes(df)
	for i := 0; i < n; i++ {
		d := loadU(c, wd, df, i)
		store(c, wd, df, i, dpsubU(d, loadU(c, ws, df, i), loadU(c, wt, df, i), df))
	}
	c.markModified(wd)
}

// --- vector-shape family ---
//
// Each reads a full register's worth of raw lanes, computes a fresh
// result slice (safe under aliasing, spec.md §4.D invariant), and
// commits it to wd in one bulk copy (spec.md §5: "accumulating into a
// scratch vector and performing a bulk copy to the destination at the
// end").

func readRaw(c *CPU, reg int, df DF) []uint64 {
	n := Lanes(df)
	out := make([]uint64, n)
	for i := 0; i < n; i++ {
		out[i] = loadU(c, reg, df, i)
	}
	return out
}

func commitRaw(c *CPU, wd int, df DF, vals []uint64) {
	for i, v := range vals {
		store(c, wd, df, i, v)
	}
	c.markModified(wd)
}

func ApplyIlvev(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, ilvev(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyIlvod(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, ilvod(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyIlvr(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, ilvr(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyIlvl(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, ilvl(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyPckev(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, pckev(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyPckod(c *CPU, df DF, wd, ws, wt int) {
	commitRaw(c, wd, df, pckod(df, readRaw(c, ws, df), readRaw(c, wt, df)))
}

// ApplyVshf reads wd's current contents as the selector before
// overwriting it with the shuffled result (spec.md §4.D: "wd is both
// source (selector) and destination").
func ApplyVshf(c *CPU, df DF, wd, ws, wt int) {
	sel := readRaw(c, wd, df)
	commitRaw(c, wd, df, vshf(df, sel, readRaw(c, ws, df), readRaw(c, wt, df)))
}

func ApplyShf(c *CPU, df DF, wd, ws int, imm uint64) {
	if df == Double {
		panic(InvalidDF{DF: df})
	}
	commitRaw(c, wd, df, shf(df, readRaw(c, ws, df), imm))
}

// ApplySld takes rt as a GPR index, not a value (spec.md §6).
func ApplySld(c *CPU, df DF, wd, ws, rt int) {
	gpr := c.GPR[rt]
	commitRaw(c, wd, df, sld(df, readRaw(c, wd, df), readRaw(c, ws, df), gpr))
}

// ApplySplat takes rt as a GPR index.
func ApplySplat(c *CPU, df DF, wd, ws, rt int) {
	gpr := c.GPR[rt]
	commitRaw(c, wd, df, splat(df, readRaw(c, ws, df), gpr))
}

func ApplyLdi(c *CPU, df DF, wd int, s10 uint64) {
	commitRaw(c, wd, df, ldi(df, s10))
}

func ApplyMoveV(c *CPU, wd, ws int) {
	commitRaw(c, wd, Byte, moveV(readRaw(c, ws, Byte)))
}
