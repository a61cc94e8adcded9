package mgenergy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutPosition(t *testing.T) {
	l := LayoutMapper{RowPitch: 1, GridPitch: 10, LayerPitch: 100}

	assert.Equal(t, Coordinate{}, l.Position(Voxel{Bus: 0, GridCh: 80, WireCh: 0}))
	assert.Equal(t, Coordinate{X: 6, Y: 80, Z: 0}, l.Position(OriginVoxel))
	assert.Equal(t, Coordinate{X: 11, Y: 390, Z: 1900}, l.Position(Voxel{Bus: 2, GridCh: 119, WireCh: 79}))
}

func TestLayoutCoordinatesRelativeToOrigin(t *testing.T) {
	l := LayoutMapper{RowPitch: 1, GridPitch: 10, LayerPitch: 100}

	mapping, err := l.Coordinates(OriginVoxel, 0.5)
	require.NoError(t, err)
	assert.Equal(t, Coordinate{Z: 0.5}, mapping.At(OriginVoxel))
	assert.Equal(t, Coordinate{X: -6, Y: -80, Z: 0.5}, mapping.At(Voxel{Bus: 0, GridCh: 80, WireCh: 0}))
	assert.Equal(t, Coordinate{}, mapping.At(Voxel{Bus: 0, GridCh: 10, WireCh: 0}))
}

func TestLayoutCoordinatesInvalidOrigin(t *testing.T) {
	tests := []Voxel{
		{Bus: 3, GridCh: 88, WireCh: 40},
		{Bus: 1, GridCh: 60, WireCh: 40},
		{Bus: 1, GridCh: 88, WireCh: 80},
	}
	for _, origin := range tests {
		_, err := DefaultLayout().Coordinates(origin, 0)
		var invalid *ErrInvalidVoxel
		require.True(t, errors.As(err, &invalid), "origin %v", origin)
		assert.Equal(t, origin, invalid.Voxel)
		assert.NotContains(t, err.Error(), "event")
	}
}
