package mgenergy

const (
	NBuses = 3

	// Grid channels are numbered after the wires in the readout, so the
	// distance table keeps a 120 wide axis and only 80-119 are populated.
	GridChMin   = 80
	GridChMax   = 120
	NGridAxis   = GridChMax
	NGridChs    = GridChMax - GridChMin
	WireChMin   = 0
	WireChMax   = 80
	NWireChs    = WireChMax - WireChMin
	NLayers     = 20
	RowsPerBus  = NWireChs / NLayers
	NTableCells = NBuses * NGridAxis * NWireChs
)

type Voxel struct {
	Bus    int
	GridCh int
	WireCh int
}

// InTable reports whether v addresses a cell of the (3, 120, 80) distance table.
func (v Voxel) InTable() bool {
	return v.Bus >= 0 && v.Bus < NBuses &&
		v.GridCh >= 0 && v.GridCh < NGridAxis &&
		v.WireCh >= WireChMin && v.WireCh < WireChMax
}

// InDetector reports whether v is a physical voxel of the detector.
func (v Voxel) InDetector() bool {
	return v.InTable() && v.GridCh >= GridChMin
}

func (v Voxel) Layer() int {
	return v.WireCh % NLayers
}

func (v Voxel) Row() int {
	return v.Bus*RowsPerBus + v.WireCh/NLayers
}

func (v Voxel) GridIndex() int {
	return v.GridCh - GridChMin
}

// forEachDetectorVoxel visits every physical voxel in bus, grid, wire order.
func forEachDetectorVoxel(fn func(v Voxel)) {
	for bus := 0; bus < NBuses; bus++ {
		for gch := GridChMin; gch < GridChMax; gch++ {
			for wch := WireChMin; wch < WireChMax; wch++ {
				fn(Voxel{Bus: bus, GridCh: gch, WireCh: wch})
			}
		}
	}
}
