package conform

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/oisee/msa-core/pkg/msa"
)

// These mirror pkg/msa's own df.go/reg.go helpers, which are
// unexported: the conformance harness needs the same width arithmetic
// to build its own expected values independently of the package under
// test, rather than calling back into it.

func rawLane(r *msa.Reg, df msa.DF, i int) uint64 {
	switch df {
	case msa.Byte:
		return uint64(r[i])
	case msa.Half:
		return uint64(binary.LittleEndian.Uint16(r[i*2 : i*2+2]))
	case msa.Word:
		return uint64(binary.LittleEndian.Uint32(r[i*4 : i*4+4]))
	default:
		return binary.LittleEndian.Uint64(r[i*8 : i*8+8])
	}
}

func setRawLane(r *msa.Reg, df msa.DF, i int, v uint64) {
	switch df {
	case msa.Byte:
		r[i] = byte(v)
	case msa.Half:
		binary.LittleEndian.PutUint16(r[i*2:i*2+2], uint16(v))
	case msa.Word:
		binary.LittleEndian.PutUint32(r[i*4:i*4+4], uint32(v))
	default:
		binary.LittleEndian.PutUint64(r[i*8:i*8+8], v)
	}
}

func rawLaneEqual(a, b *msa.Reg, df msa.DF, i int) bool {
	return rawLane(a, df, i) == rawLane(b, df, i)
}

func perturbRawLane(r *msa.Reg, df msa.DF, i int, rng *rand.Rand) {
	cur := rawLane(r, df, i)
	next := cur
	for next == cur {
		next = uint64(rng.Uint32()) & dfMaskExported(df)
	}
	setRawLane(r, df, i, next)
}

func dfMaskExported(df msa.DF) uint64 {
	w := msa.DFBits(df)
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

func dfMaxIntExported(df msa.DF) int64 {
	return int64(uint64(1)<<(msa.DFBits(df)-1)) - 1
}

func dfMinIntExported(df msa.DF) int64 {
	return -(int64(1) << (msa.DFBits(df) - 1))
}

func signExtendExported(x uint64, df msa.DF) int64 {
	w := msa.DFBits(df)
	shift := 64 - w
	return int64(x<<shift) >> shift
}
