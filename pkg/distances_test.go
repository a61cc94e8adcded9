package mgenergy

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedMapper returns the same coordinate for every voxel except the ones
// listed in overrides.
func fixedMapper(overrides map[Voxel]Coordinate) CoordinateMapperFunc {
	return func(origin Voxel, distanceOffset float64) (*Mapping, error) {
		mapping := &Mapping{}
		for v, c := range overrides {
			mapping[v.Bus][v.GridCh][v.WireCh] = c
		}
		return mapping, nil
	}
}

func TestBuildDistanceTableSyntheticMapping(t *testing.T) {
	voxel := Voxel{Bus: 0, GridCh: 80, WireCh: 0}
	mapper := fixedMapper(map[Voxel]Coordinate{
		voxel: {X: 3, Y: 4, Z: 0},
	})

	table, err := BuildDistanceTable(mapper, OriginVoxel, 0)
	require.NoError(t, err)
	assert.Equal(t, 5.0, table.At(voxel))
	assert.Equal(t, 0.0, table.At(Voxel{Bus: 2, GridCh: 119, WireCh: 79}))
}

func TestBuildDistanceTableDeterministic(t *testing.T) {
	layout := DefaultLayout()
	first, err := BuildDistanceTable(layout, OriginVoxel, 0.25)
	require.NoError(t, err)
	second, err := BuildDistanceTable(layout, OriginVoxel, 0.25)
	require.NoError(t, err)

	if diff := cmp.Diff(*first, *second); diff != "" {
		t.Errorf("tables differ (-first +second):\n%s", diff)
	}
}

func TestBuildDistanceTableLayout(t *testing.T) {
	table, err := BuildDistanceTable(DefaultLayout(), OriginVoxel, 0)
	require.NoError(t, err)

	t.Run("origin at zero distance", func(t *testing.T) {
		assert.Equal(t, 0.0, table.At(OriginVoxel))
	})

	t.Run("distances are non-negative", func(t *testing.T) {
		forEachDetectorVoxel(func(v Voxel) {
			d := table.At(v)
			if d < 0 || math.IsNaN(d) {
				t.Fatalf("distance of %v is %v", v, d)
			}
		})
	})

	t.Run("unused grid channels stay zero", func(t *testing.T) {
		for bus := 0; bus < NBuses; bus++ {
			for gch := 0; gch < GridChMin; gch++ {
				for wch := 0; wch < NWireChs; wch++ {
					require.Zero(t, table[bus][gch][wch])
				}
			}
		}
	})

	t.Run("neighbour in the next layer", func(t *testing.T) {
		next := Voxel{Bus: OriginVoxel.Bus, GridCh: OriginVoxel.GridCh, WireCh: OriginVoxel.WireCh + 1}
		assert.InDelta(t, DefaultLayout().LayerPitch, table.At(next), 1e-12)
	})
}

func TestBuildDistanceTableOffset(t *testing.T) {
	const offset = 4.5
	layout := DefaultLayout()
	base, err := BuildDistanceTable(layout, OriginVoxel, 0)
	require.NoError(t, err)
	shifted, err := BuildDistanceTable(layout, OriginVoxel, offset)
	require.NoError(t, err)

	mapping, err := layout.Coordinates(OriginVoxel, 0)
	require.NoError(t, err)

	assert.InDelta(t, offset, shifted.At(OriginVoxel), 1e-12)
	forEachDetectorVoxel(func(v Voxel) {
		c := mapping.At(v)
		c.Z += offset
		want := math.Sqrt(c.X*c.X + c.Y*c.Y + c.Z*c.Z)
		if math.Abs(shifted.At(v)-want) > 1e-12 {
			t.Fatalf("distance of %v is %v, want %v", v, shifted.At(v), want)
		}
		if shifted.At(v) == base.At(v) {
			t.Fatalf("offset ignored for %v", v)
		}
	})
}

func TestBuildDistanceTableMapperError(t *testing.T) {
	_, err := BuildDistanceTable(DefaultLayout(), Voxel{Bus: 1, GridCh: 20, WireCh: 40}, 0)
	require.Error(t, err)

	var invalid *ErrInvalidVoxel
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, 20, invalid.Voxel.GridCh)

	sentinel := errors.New("calibration unavailable")
	failing := CoordinateMapperFunc(func(Voxel, float64) (*Mapping, error) {
		return nil, sentinel
	})
	_, err = BuildDistanceTable(failing, OriginVoxel, 0)
	assert.ErrorIs(t, err, sentinel)
}

func TestDistanceTableFlatten(t *testing.T) {
	table := &DistanceTable{}
	table[0][0][1] = 1
	table[1][80][0] = 2
	table[2][119][79] = 3

	flat := table.Flatten()
	require.Len(t, flat, NTableCells)
	assert.Equal(t, 1.0, flat[1])
	assert.Equal(t, 2.0, flat[(1*NGridAxis+80)*NWireChs])
	assert.Equal(t, 3.0, flat[NTableCells-1])
}
