package kernel

import "unsafe"

// Points are referred to by the address of their first coordinate, the same
// way the kernel's C ancestors did it. The coordinates are read back from that
// address with the hull dimension. This is the only place that looks at raw
// addresses.

var coordSize = unsafe.Sizeof(float64(0))

// PointCoords returns the HullDim coordinates starting at p, without copying.
func (st *State) PointCoords(p *float64) []float64 {
	if p == nil || st.HullDim <= 0 {
		return nil
	}
	return unsafe.Slice(p, st.HullDim)
}

// PointID is the index of p among the input points. Points in OtherPoints are
// numbered after the input points. Anything else is -1.
func (st *State) PointID(p *float64) int {
	if p == nil || st.HullDim <= 0 {
		return -1
	}
	if len(st.FirstPoint) > 0 {
		base := uintptr(unsafe.Pointer(&st.FirstPoint[0]))
		addr := uintptr(unsafe.Pointer(p))
		if addr >= base && addr < base+uintptr(len(st.FirstPoint))*coordSize {
			return int((addr-base)/coordSize) / st.HullDim
		}
	}
	for i, q := range st.OtherPoints.Slots() {
		if q == nil {
			break
		}
		if q == p {
			return st.NumPoints + i
		}
	}
	return -1
}
