package conform

import (
	"encoding/binary"

	"github.com/oisee/msa-core/pkg/msa"
)

// The lane accessors pkg/msa uses internally (loadU/store, Reg.rawLane)
// are unexported, so the conformance harness — a separate package —
// reads and writes lanes directly through the exported Reg byte array,
// the same little-endian layout pkg/msa itself encodes to.

func msaStoreHalf(c *msa.CPU, reg, i int, v uint64) {
	binary.LittleEndian.PutUint16(c.VReg[reg][i*2:i*2+2], uint16(v))
}

func msaLoadHalfU(c *msa.CPU, reg, i int) uint64 {
	return uint64(binary.LittleEndian.Uint16(c.VReg[reg][i*2 : i*2+2]))
}

func msaStoreWord(c *msa.CPU, reg, i int, v uint64) {
	binary.LittleEndian.PutUint32(c.VReg[reg][i*4:i*4+4], uint32(v))
}

func msaLoadWordU(c *msa.CPU, reg, i int) uint64 {
	return uint64(binary.LittleEndian.Uint32(c.VReg[reg][i*4 : i*4+4]))
}

func msaStoreDouble(c *msa.CPU, reg, i int, v uint64) {
	binary.LittleEndian.PutUint64(c.VReg[reg][i*8:i*8+8], v)
}

func msaLoadDoubleU(c *msa.CPU, reg, i int) uint64 {
	return binary.LittleEndian.Uint64(c.VReg[reg][i*8 : i*8+8])
}
