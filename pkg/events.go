package mgenergy

import "golang.org/x/exp/constraints"

// Event is one clustered neutron hit. ToF is in clock ticks.
type Event struct {
	WireCh int
	GridCh int
	Bus    int
	ToF    int64
}

func (e Event) Voxel() Voxel {
	return Voxel{Bus: e.Bus, GridCh: e.GridCh, WireCh: e.WireCh}
}

// Events stores clustered events column by column.
type Events struct {
	WireCh []int
	GridCh []int
	Bus    []int
	ToF    []int64
}

func NewEvents(capacity int) *Events {
	return &Events{
		WireCh: make([]int, 0, capacity),
		GridCh: make([]int, 0, capacity),
		Bus:    make([]int, 0, capacity),
		ToF:    make([]int64, 0, capacity),
	}
}

func EventsFromRecords(records []Event) *Events {
	events := NewEvents(len(records))
	for _, r := range records {
		events.Append(r)
	}
	return events
}

func (e *Events) Append(ev Event) {
	e.WireCh = append(e.WireCh, ev.WireCh)
	e.GridCh = append(e.GridCh, ev.GridCh)
	e.Bus = append(e.Bus, ev.Bus)
	e.ToF = append(e.ToF, ev.ToF)
}

func (e *Events) Len() int {
	return len(e.ToF)
}

func (e *Events) At(i int) Event {
	return Event{WireCh: e.WireCh[i], GridCh: e.GridCh[i], Bus: e.Bus[i], ToF: e.ToF[i]}
}

// Validate checks the columns have equal length and every event hits a
// voxel of the detector.
func (e *Events) Validate() error {
	n := e.Len()
	columns := []struct {
		name string
		size int
	}{
		{"wch", len(e.WireCh)},
		{"gch", len(e.GridCh)},
		{"bus", len(e.Bus)},
	}
	for _, col := range columns {
		if col.size != n {
			return &ErrColumnLength{Column: col.name, Got: col.size, Want: n}
		}
	}
	for i := 0; i < n; i++ {
		v := Voxel{Bus: e.Bus[i], GridCh: e.GridCh[i], WireCh: e.WireCh[i]}
		if !v.InDetector() {
			return &ErrInvalidVoxel{Voxel: v, Index: i}
		}
	}
	return nil
}

func toFloat64s[T constraints.Integer](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
