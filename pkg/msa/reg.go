package msa

import "encoding/binary"

// NumRegs is the size of the MSA vector register bank (spec.md §3).
const NumRegs = 32

// Reg is a 128-bit MSA vector register. Storage is a flat byte array;
// the byte/half/word/double "views" are computed on demand via explicit
// little-endian encode/decode rather than an overlapping union, since Go
// has no union types (spec.md §9, "union-punned register").
//
// Lane 0 occupies the lowest-address byte, matching the architectural
// little-endian lane order regardless of host endianness.
type Reg [16]byte

// byteLane returns lane i (0..15) as a raw byte.
func (r *Reg) byteLane(i int) uint64 {
	return uint64(r[i])
}

func (r *Reg) setByteLane(i int, v uint64) {
	r[i] = byte(v)
}

func (r *Reg) halfLane(i int) uint64 {
	return uint64(binary.LittleEndian.Uint16(r[i*2 : i*2+2]))
}

func (r *Reg) setHalfLane(i int, v uint64) {
	binary.LittleEndian.PutUint16(r[i*2:i*2+2], uint16(v))
}

func (r *Reg) wordLane(i int) uint64 {
	return uint64(binary.LittleEndian.Uint32(r[i*4 : i*4+4]))
}

func (r *Reg) setWordLane(i int, v uint64) {
	binary.LittleEndian.PutUint32(r[i*4:i*4+4], uint32(v))
}

func (r *Reg) doubleLane(i int) uint64 {
	return binary.LittleEndian.Uint64(r[i*8 : i*8+8])
}

func (r *Reg) setDoubleLane(i int, v uint64) {
	binary.LittleEndian.PutUint64(r[i*8:i*8+8], v)
}

// rawLane returns lane i at width df as a raw (unextended) W-bit value
// placed in the low bits of a uint64.
func (r *Reg) rawLane(df DF, i int) uint64 {
	switch df {
	case Byte:
		return r.byteLane(i)
	case Half:
		return r.halfLane(i)
	case Word:
		return r.wordLane(i)
	case Double:
		return r.doubleLane(i)
	default:
		panic(InvalidDF{DF: df})
	}
}

func (r *Reg) setRawLane(df DF, i int, v uint64) {
	switch df {
	case Byte:
		r.setByteLane(i, v)
	case Half:
		r.setHalfLane(i, v)
	case Word:
		r.setWordLane(i, v)
	case Double:
		r.setDoubleLane(i, v)
	default:
		panic(InvalidDF{DF: df})
	}
}

// CPU is the host environment's vector register bank and the two
// architectural flag bits the MSA core reads/writes (spec.md §3, §6).
// The general-purpose register file, memory, and exception-delivery
// mechanism proper are out of scope (spec.md §1) and are represented
// here only to the extent the core needs to read them (GPR, by index).
type CPU struct {
	VReg [NumRegs]Reg
	GPR  [NumRegs]uint64

	// WRPEnabled mirrors the WRP_ENABLED configuration bit: when set,
	// every writing helper OR's its destination index into ModifiedMask.
	WRPEnabled bool

	// ModifiedMask accumulates the set of destination register indices
	// touched by writing helpers (spec.md §3, "msamodify").
	ModifiedMask uint32
}

// NewCPU returns a CPU with a zeroed register bank.
func NewCPU() *CPU {
	return &CPU{}
}

// markModified sets bit wd of ModifiedMask if write-protection tracking
// is enabled (spec.md §4.E).
func (c *CPU) markModified(wd int) {
	if c.WRPEnabled {
		c.ModifiedMask |= 1 << uint(wd)
	}
}

// Equal reports whether two CPU vector register banks hold identical
// contents.
func (c *CPU) Equal(o *CPU) bool {
	return c.VReg == o.VReg
}
