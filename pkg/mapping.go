package mgenergy

// Coordinate is a voxel position in meters.
type Coordinate struct {
	X float64
	Y float64
	Z float64
}

func (c Coordinate) Sub(o Coordinate) Coordinate {
	return Coordinate{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z}
}

// Mapping holds one coordinate per (bus, gch, wch) cell, indexed the same
// way as the distance table.
type Mapping [NBuses][NGridAxis][NWireChs]Coordinate

func (m *Mapping) At(v Voxel) Coordinate {
	return m[v.Bus][v.GridCh][v.WireCh]
}

// CoordinateMapper returns origin relative coordinates for every detector
// voxel. The distance offset is applied along the beam axis.
type CoordinateMapper interface {
	Coordinates(origin Voxel, distanceOffset float64) (*Mapping, error)
}

type CoordinateMapperFunc func(origin Voxel, distanceOffset float64) (*Mapping, error)

func (f CoordinateMapperFunc) Coordinates(origin Voxel, distanceOffset float64) (*Mapping, error) {
	return f(origin, distanceOffset)
}

// LayoutMapper places voxels on the nominal Multi-Grid lattice: wire rows
// along x, grids along y and wire layers along the beam (z).
type LayoutMapper struct {
	RowPitch   float64
	GridPitch  float64
	LayerPitch float64
}

func DefaultLayout() LayoutMapper {
	return LayoutMapper{
		RowPitch:   0.0225,
		GridPitch:  0.0235,
		LayerPitch: 0.010,
	}
}

func (l LayoutMapper) Position(v Voxel) Coordinate {
	return Coordinate{
		X: float64(v.Row()) * l.RowPitch,
		Y: float64(v.GridIndex()) * l.GridPitch,
		Z: float64(v.Layer()) * l.LayerPitch,
	}
}

func (l LayoutMapper) Coordinates(origin Voxel, distanceOffset float64) (*Mapping, error) {
	positions := make(map[Voxel]Coordinate, NBuses*NGridChs*NWireChs)
	forEachDetectorVoxel(func(v Voxel) {
		positions[v] = l.Position(v)
	})
	return relativeMapping(origin, distanceOffset, positions, 0)
}

// relativeMapping shifts absolute positions so that origin sits at
// (0, 0, distanceOffset). Every detector voxel must have a position.
func relativeMapping(origin Voxel, distanceOffset float64, positions map[Voxel]Coordinate, runNumber int) (*Mapping, error) {
	if !origin.InDetector() {
		return nil, &ErrInvalidVoxel{Voxel: origin, Index: -1}
	}
	originPos, ok := positions[origin]
	if !ok {
		return nil, &ErrMissingVoxel{Voxel: origin, RunNumber: runNumber}
	}

	mapping := &Mapping{}
	var missing *ErrMissingVoxel
	forEachDetectorVoxel(func(v Voxel) {
		if missing != nil {
			return
		}
		pos, ok := positions[v]
		if !ok {
			missing = &ErrMissingVoxel{Voxel: v, RunNumber: runNumber}
			return
		}
		rel := pos.Sub(originPos)
		rel.Z += distanceOffset
		mapping[v.Bus][v.GridCh][v.WireCh] = rel
	})
	if missing != nil {
		return nil, missing
	}
	return mapping, nil
}
