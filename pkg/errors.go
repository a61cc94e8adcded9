package mgenergy

import "fmt"

// ErrInvalidVoxel represents a voxel outside the fixed detector geometry.
type ErrInvalidVoxel struct {
	Voxel Voxel
	Index int
}

func (e *ErrInvalidVoxel) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid voxel (bus %d, gch %d, wch %d)",
			e.Voxel.Bus, e.Voxel.GridCh, e.Voxel.WireCh)
	}
	return fmt.Sprintf("event %d: invalid voxel (bus %d, gch %d, wch %d)",
		e.Index, e.Voxel.Bus, e.Voxel.GridCh, e.Voxel.WireCh)
}

// ErrColumnLength represents an events table whose columns differ in length.
type ErrColumnLength struct {
	Column string
	Got    int
	Want   int
}

func (e *ErrColumnLength) Error() string {
	return fmt.Sprintf("column %q has %d entries, expected %d", e.Column, e.Got, e.Want)
}

// ErrMissingVoxel represents a voxel without a position in the mapping source.
type ErrMissingVoxel struct {
	Voxel     Voxel
	RunNumber int
}

func (e *ErrMissingVoxel) Error() string {
	return fmt.Sprintf("run %d: no position for voxel (bus %d, gch %d, wch %d)",
		e.RunNumber, e.Voxel.Bus, e.Voxel.GridCh, e.Voxel.WireCh)
}
