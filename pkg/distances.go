package mgenergy

import (
	"fmt"
	"math"
)

// DistanceTable holds the distance in meters from the origin voxel to every
// voxel, indexed by bus, grid channel and wire channel. Grid channels 0-79
// are never populated and stay at zero.
type DistanceTable [NBuses][NGridAxis][NWireChs]float64

func (t *DistanceTable) At(v Voxel) float64 {
	return t[v.Bus][v.GridCh][v.WireCh]
}

// Flatten returns the table in row-major (bus, gch, wch) order.
func (t *DistanceTable) Flatten() []float64 {
	flat := make([]float64, 0, NTableCells)
	for bus := range t {
		for gch := range t[bus] {
			flat = append(flat, t[bus][gch][:]...)
		}
	}
	return flat
}

// BuildDistanceTable asks the mapper for the coordinates of every voxel
// relative to origin and stores their euclidean norm.
func BuildDistanceTable(mapper CoordinateMapper, origin Voxel, distanceOffset float64) (*DistanceTable, error) {
	mapping, err := mapper.Coordinates(origin, distanceOffset)
	if err != nil {
		return nil, fmt.Errorf("error building voxel mapping: %w", err)
	}

	table := &DistanceTable{}
	forEachDetectorVoxel(func(v Voxel) {
		c := mapping.At(v)
		table[v.Bus][v.GridCh][v.WireCh] = math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
	})

	if configuration.Verbosity > 1 {
		message := fmt.Sprintf("Distance table built for origin %v, offset %g m", origin, distanceOffset)
		logger.Info(message, "distances")
	}
	return table, nil
}
