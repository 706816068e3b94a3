package msa

// OpCode identifies an MSA integer instruction family. Unlike df, which
// is a per-call runtime parameter, OpCode does not vary by element
// width — ADDV.B/H/W/D all share OpAddV with a different df argument to
// Exec (spec.md §6: "one function per MSA integer instruction family").
type OpCode uint16

const (
	OpAddA OpCode = iota
	OpAddV
	OpAddVI
	OpSubV
	OpSubVI
	OpAddsS
	OpAddsU
	OpAddsA
	OpSubsS
	OpSubsU
	OpSubsuuS
	OpSubsusU
	OpAsubS
	OpAsubU

	OpAveS
	OpAveU
	OpAverS
	OpAverU

	OpMaxS
	OpMaxSI
	OpMinS
	OpMinSI
	OpMaxU
	OpMaxUI
	OpMinU
	OpMinUI
	OpMaxA
	OpMinA
	OpCeq
	OpCeqI
	OpCltS
	OpCltSI
	OpCltU
	OpCltUI
	OpCleS
	OpCleSI
	OpCleU
	OpCleUI

	OpBclr
	OpBclrI
	OpBset
	OpBsetI
	OpBneg
	OpBnegI
	OpBinsl
	OpBinslI
	OpBinsr
	OpBinsrI
	OpAndiB
	OpOriB
	OpNoriB
	OpXoriB
	OpBmnziB
	OpBmziB
	OpBseliB

	OpSll
	OpSllI
	OpSra
	OpSraI
	OpSrl
	OpSrlI
	OpSrar
	OpSrarI
	OpSrlr
	OpSrlrI
	OpSatS
	OpSatU

	OpDivS
	OpDivU
	OpModS
	OpModU
	OpMaddv
	OpMsubv

	OpHaddS
	OpHaddU
	OpHsubS
	OpHsubU
	OpDotpS
	OpDotpU
	OpDpaddS
	OpDpaddU
	OpDpsubS
	OpDpsubU

	OpIlvev
	OpIlvod
	OpIlvl
	OpIlvr
	OpPckev
	OpPckod
	OpVshf
	OpShf
	OpSld
	OpSplat
	OpLdi
	OpMoveV

	opCodeCount // sentinel
)

// Info holds static metadata for an opcode.
type Info struct {
	Mnemonic    string
	IsImmediate bool // second operand is a broadcast immediate, not wt
	IsShape     bool // belongs to the vector-shape family (spec.md §4.D)
	MinDF       DF   // narrowest df this instruction accepts
}

// Catalog maps each OpCode to its Info.
var Catalog [opCodeCount]Info

func init() {
	reg := func(op OpCode, mnemonic string) {
		Catalog[op] = Info{Mnemonic: mnemonic, MinDF: Byte}
	}
	imm := func(op OpCode, mnemonic string) {
		Catalog[op] = Info{Mnemonic: mnemonic, IsImmediate: true, MinDF: Byte}
	}
	shape := func(op OpCode, mnemonic string) {
		Catalog[op] = Info{Mnemonic: mnemonic, IsShape: true, MinDF: Byte}
	}

	reg(OpAddA, "add_a")
	reg(OpAddV, "addv")
	imm(OpAddVI, "addvi")
	reg(OpSubV, "subv")
	imm(OpSubVI, "subvi")
	reg(OpAddsS, "adds_s")
	reg(OpAddsU, "adds_u")
	reg(OpAddsA, "adds_a")
	reg(OpSubsS, "subs_s")
	reg(OpSubsU, "subs_u")
	reg(OpSubsuuS, "subsuu_s")
	reg(OpSubsusU, "subsus_u")
	reg(OpAsubS, "asub_s")
	reg(OpAsubU, "asub_u")

	reg(OpAveS, "ave_s")
	reg(OpAveU, "ave_u")
	reg(OpAverS, "aver_s")
	reg(OpAverU, "aver_u")

	reg(OpMaxS, "max_s")
	imm(OpMaxSI, "maxi_s")
	reg(OpMinS, "min_s")
	imm(OpMinSI, "mini_s")
	reg(OpMaxU, "max_u")
	imm(OpMaxUI, "maxi_u")
	reg(OpMinU, "min_u")
	imm(OpMinUI, "mini_u")
	reg(OpMaxA, "max_a")
	reg(OpMinA, "min_a")
	reg(OpCeq, "ceq")
	imm(OpCeqI, "ceqi")
	reg(OpCltS, "clt_s")
	imm(OpCltSI, "clti_s")
	reg(OpCltU, "clt_u")
	imm(OpCltUI, "clti_u")
	reg(OpCleS, "cle_s")
	imm(OpCleSI, "clei_s")
	reg(OpCleU, "cle_u")
	imm(OpCleUI, "clei_u")

	reg(OpBclr, "bclr")
	imm(OpBclrI, "bclri")
	reg(OpBset, "bset")
	imm(OpBsetI, "bseti")
	reg(OpBneg, "bneg")
	imm(OpBnegI, "bnegi")
	reg(OpBinsl, "binsl")
	imm(OpBinslI, "binsli")
	reg(OpBinsr, "binsr")
	imm(OpBinsrI, "binsri")
	Catalog[OpAndiB] = Info{Mnemonic: "andi.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpOriB] = Info{Mnemonic: "ori.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpNoriB] = Info{Mnemonic: "nori.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpXoriB] = Info{Mnemonic: "xori.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpBmnziB] = Info{Mnemonic: "bmnzi.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpBmziB] = Info{Mnemonic: "bmzi.b", IsImmediate: true, MinDF: Byte}
	Catalog[OpBseliB] = Info{Mnemonic: "bseli.b", IsImmediate: true, MinDF: Byte}

	reg(OpSll, "sll")
	imm(OpSllI, "slli")
	reg(OpSra, "sra")
	imm(OpSraI, "srai")
	reg(OpSrl, "srl")
	imm(OpSrlI, "srli")
	reg(OpSrar, "srar")
	imm(OpSrarI, "srari")
	reg(OpSrlr, "srlr")
	imm(OpSrlrI, "srlri")
	imm(OpSatS, "sat_s")
	imm(OpSatU, "sat_u")

	reg(OpDivS, "div_s")
	reg(OpDivU, "div_u")
	reg(OpModS, "mod_s")
	reg(OpModU, "mod_u")
	reg(OpMaddv, "maddv")
	reg(OpMsubv, "msubv")

	Catalog[OpHaddS] = Info{Mnemonic: "hadd_s", MinDF: Half}
	Catalog[OpHaddU] = Info{Mnemonic: "hadd_u", MinDF: Half}
	Catalog[OpHsubS] = Info{Mnemonic: "hsub_s", MinDF: Half}
	Catalog[OpHsubU] = Info{Mnemonic: "hsub_u", MinDF: Half}
	Catalog[OpDotpS] = Info{Mnemonic: "dotp_s", MinDF: Half}
	Catalog[OpDotpU] = Info{Mnemonic: "dotp_u", MinDF: Half}
	Catalog[OpDpaddS] = Info{Mnemonic: "dpadd_s", MinDF: Half}
	Catalog[OpDpaddU] = Info{Mnemonic: "dpadd_u", MinDF: Half}
	Catalog[OpDpsubS] = Info{Mnemonic: "dpsub_s", MinDF: Half}
	Catalog[OpDpsubU] = Info{Mnemonic: "dpsub_u", MinDF: Half}

	shape(OpIlvev, "ilvev")
	shape(OpIlvod, "ilvod")
	shape(OpIlvl, "ilvl")
	shape(OpIlvr, "ilvr")
	shape(OpPckev, "pckev")
	shape(OpPckod, "pckod")
	shape(OpVshf, "vshf")
	Catalog[OpShf] = Info{Mnemonic: "shf", IsShape: true, IsImmediate: true, MinDF: Byte}
	shape(OpSld, "sld")
	shape(OpSplat, "splat")
	Catalog[OpLdi] = Info{Mnemonic: "ldi", IsShape: true, IsImmediate: true, MinDF: Byte}
	shape(OpMoveV, "move.v")
}

var mnemonicToOp map[string]OpCode

func init() {
	mnemonicToOp = make(map[string]OpCode, opCodeCount)
	for op := OpCode(0); op < opCodeCount; op++ {
		mnemonicToOp[Catalog[op].Mnemonic] = op
	}
}

// Lookup returns the OpCode whose Catalog mnemonic matches name.
func Lookup(name string) (OpCode, bool) {
	op, ok := mnemonicToOp[name]
	return op, ok
}

// DFByName maps the lowercase element-width suffixes used in assembly
// mnemonics ("b", "h", "w", "d") to a DF value.
func DFByName(name string) (DF, bool) {
	switch name {
	case "b":
		return Byte, true
	case "h":
		return Half, true
	case "w":
		return Word, true
	case "d":
		return Double, true
	default:
		return 0, false
	}
}

// Operands bundles every field an MSA instruction might need; Exec
// reads only the fields relevant to op.
type Operands struct {
	DF         DF
	WD, WS, WT int
	Imm        uint64 // pre-extended immediate (spec.md §9, "Open question")
	GPR        int     // rt index for sld/splat
	M          uint    // saturation field width for sat_s/u
}

// Exec is the generic, table-driven dispatcher used by the CLI and the
// conformance harness; the Apply* functions in dispatch.go remain the
// primary, typed API (spec.md §6: "one function per MSA integer
// instruction family" is the host integration contract, this is the
// convenience entry point on top of it, in the same relationship as the
// teacher's `Exec(*State, OpCode, uint16)` to its typed flag helpers).
func Exec(c *CPU, op OpCode, o Operands) {
	switch op {
	case OpAddA:
		ApplyAddA(c, o.DF, o.WD, o.WS, o.WT)
	case OpAddV:
		ApplyAddV(c, o.DF, o.WD, o.WS, o.WT)
	case OpAddVI:
		ApplyAddVI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpSubV:
		ApplySubV(c, o.DF, o.WD, o.WS, o.WT)
	case OpSubVI:
		ApplySubVI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpAddsS:
		ApplyAddsS(c, o.DF, o.WD, o.WS, o.WT)
	case OpAddsU:
		ApplyAddsU(c, o.DF, o.WD, o.WS, o.WT)
	case OpAddsA:
		ApplyAddsA(c, o.DF, o.WD, o.WS, o.WT)
	case OpSubsS:
		ApplySubsS(c, o.DF, o.WD, o.WS, o.WT)
	case OpSubsU:
		ApplySubsU(c, o.DF, o.WD, o.WS, o.WT)
	case OpSubsuuS:
		ApplySubsuuS(c, o.DF, o.WD, o.WS, o.WT)
	case OpSubsusU:
		ApplySubsusU(c, o.DF, o.WD, o.WS, o.WT)
	case OpAsubS:
		ApplyAsubS(c, o.DF, o.WD, o.WS, o.WT)
	case OpAsubU:
		ApplyAsubU(c, o.DF, o.WD, o.WS, o.WT)

	case OpAveS:
		ApplyAveS(c, o.DF, o.WD, o.WS, o.WT)
	case OpAveU:
		ApplyAveU(c, o.DF, o.WD, o.WS, o.WT)
	case OpAverS:
		ApplyAverS(c, o.DF, o.WD, o.WS, o.WT)
	case OpAverU:
		ApplyAverU(c, o.DF, o.WD, o.WS, o.WT)

	case OpMaxS:
		ApplyMaxS(c, o.DF, o.WD, o.WS, o.WT)
	case OpMaxSI:
		ApplyMaxSI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpMinS:
		ApplyMinS(c, o.DF, o.WD, o.WS, o.WT)
	case OpMinSI:
		ApplyMinSI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpMaxU:
		ApplyMaxU(c, o.DF, o.WD, o.WS, o.WT)
	case OpMaxUI:
		ApplyMaxUI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpMinU:
		ApplyMinU(c, o.DF, o.WD, o.WS, o.WT)
	case OpMinUI:
		ApplyMinUI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpMaxA:
		ApplyMaxA(c, o.DF, o.WD, o.WS, o.WT)
	case OpMinA:
		ApplyMinA(c, o.DF, o.WD, o.WS, o.WT)
	case OpCeq:
		ApplyCeq(c, o.DF, o.WD, o.WS, o.WT)
	case OpCeqI:
		ApplyCeqI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpCltS:
		ApplyCltS(c, o.DF, o.WD, o.WS, o.WT)
	case OpCltSI:
		ApplyCltSI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpCltU:
		ApplyCltU(c, o.DF, o.WD, o.WS, o.WT)
	case OpCltUI:
		ApplyCltUI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpCleS:
		ApplyCleS(c, o.DF, o.WD, o.WS, o.WT)
	case OpCleSI:
		ApplyCleSI(c, o.DF, o.WD, o.WS, int64(o.Imm))
	case OpCleU:
		ApplyCleU(c, o.DF, o.WD, o.WS, o.WT)
	case OpCleUI:
		ApplyCleUI(c, o.DF, o.WD, o.WS, o.Imm)

	case OpBclr:
		ApplyBclr(c, o.DF, o.WD, o.WS, o.WT)
	case OpBclrI:
		ApplyBclrI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpBset:
		ApplyBset(c, o.DF, o.WD, o.WS, o.WT)
	case OpBsetI:
		ApplyBsetI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpBneg:
		ApplyBneg(c, o.DF, o.WD, o.WS, o.WT)
	case OpBnegI:
		ApplyBnegI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpBinsl:
		ApplyBinsl(c, o.DF, o.WD, o.WS, o.WT)
	case OpBinslI:
		ApplyBinslI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpBinsr:
		ApplyBinsr(c, o.DF, o.WD, o.WS, o.WT)
	case OpBinsrI:
		ApplyBinsrI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpAndiB:
		ApplyAndiB(c, o.WD, o.WS, o.Imm)
	case OpOriB:
		ApplyOriB(c, o.WD, o.WS, o.Imm)
	case OpNoriB:
		ApplyNoriB(c, o.WD, o.WS, o.Imm)
	case OpXoriB:
		ApplyXoriB(c, o.WD, o.WS, o.Imm)
	case OpBmnziB:
		ApplyBmnziB(c, o.WD, o.WS, o.Imm)
	case OpBmziB:
		ApplyBmziB(c, o.WD, o.WS, o.Imm)
	case OpBseliB:
		ApplyBseliB(c, o.WD, o.WS, o.Imm)

	case OpSll:
		ApplySll(c, o.DF, o.WD, o.WS, o.WT)
	case OpSllI:
		ApplySllI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSra:
		ApplySra(c, o.DF, o.WD, o.WS, o.WT)
	case OpSraI:
		ApplySraI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSrl:
		ApplySrl(c, o.DF, o.WD, o.WS, o.WT)
	case OpSrlI:
		ApplySrlI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSrar:
		ApplySrar(c, o.DF, o.WD, o.WS, o.WT)
	case OpSrarI:
		ApplySrarI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSrlr:
		ApplySrlr(c, o.DF, o.WD, o.WS, o.WT)
	case OpSrlrI:
		ApplySrlrI(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSatS:
		ApplySatS(c, o.DF, o.WD, o.WS, o.M)
	case OpSatU:
		ApplySatU(c, o.DF, o.WD, o.WS, o.M)

	case OpDivS:
		ApplyDivS(c, o.DF, o.WD, o.WS, o.WT)
	case OpDivU:
		ApplyDivU(c, o.DF, o.WD, o.WS, o.WT)
	case OpModS:
		ApplyModS(c, o.DF, o.WD, o.WS, o.WT)
	case OpModU:
		ApplyModU(c, o.DF, o.WD, o.WS, o.WT)
	case OpMaddv:
		ApplyMaddv(c, o.DF, o.WD, o.WS, o.WT)
	case OpMsubv:
		ApplyMsubv(c, o.DF, o.WD, o.WS, o.WT)

	case OpHaddS:
		ApplyHaddS(c, o.DF, o.WD, o.WS, o.WT)
	case OpHaddU:
		ApplyHaddU(c, o.DF, o.WD, o.WS, o.WT)
	case OpHsubS:
		ApplyHsubS(c, o.DF, o.WD, o.WS, o.WT)
	case OpHsubU:
		ApplyHsubU(c, o.DF, o.WD, o.WS, o.WT)
	case OpDotpS:
		ApplyDotpS(c, o.DF, o.WD, o.WS, o.WT)
	case OpDotpU:
		ApplyDotpU(c, o.DF, o.WD, o.WS, o.WT)
	case OpDpaddS:
		ApplyDpaddS(c, o.DF, o.WD, o.WS, o.WT)
	case OpDpaddU:
		ApplyDpaddU(c, o.DF, o.WD, o.WS, o.WT)
	case OpDpsubS:
		ApplyDpsubS(c, o.DF, o.WD, o.WS, o.WT)
	case OpDpsubU:
		ApplyDpsubU(c, o.DF, o.WD, o.WS, o.WT)

	case OpIlvev:
		ApplyIlvev(c, o.DF, o.WD, o.WS, o.WT)
	case OpIlvod:
		ApplyIlvod(c, o.DF, o.WD, o.WS, o.WT)
	case OpIlvl:
		ApplyIlvl(c, o.DF, o.WD, o.WS, o.WT)
	case OpIlvr:
		ApplyIlvr(c, o.DF, o.WD, o.WS, o.WT)
	case OpPckev:
		ApplyPckev(c, o.DF, o.WD, o.WS, o.WT)
	case OpPckod:
		ApplyPckod(c, o.DF, o.WD, o.WS, o.WT)
	case OpVshf:
		ApplyVshf(c, o.DF, o.WD, o.WS, o.WT)
	case OpShf:
		ApplyShf(c, o.DF, o.WD, o.WS, o.Imm)
	case OpSld:
		ApplySld(c, o.DF, o.WD, o.WS, o.GPR)
	case OpSplat:
		ApplySplat(c, o.DF, o.WD, o.WS, o.GPR)
	case OpLdi:
		ApplyLdi(c, o.DF, o.WD, o.Imm)
	case OpMoveV:
		ApplyMoveV(c, o.WD, o.WS)

	default:
		panic(InvalidOpCode{Op: op})
	}
}
