package mgenergy

import "fmt"

// Filter keeps events whose parameter lies in [Min, Max]. Disabled filters
// are ignored.
type Filter struct {
	Parameter string  `json:"parameter"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Enabled   bool    `json:"enabled"`
}

var filterParameters = map[string]func(Event) float64{
	"bus":   func(e Event) float64 { return float64(e.Bus) },
	"gch":   func(e Event) float64 { return float64(e.GridCh) },
	"wch":   func(e Event) float64 { return float64(e.WireCh) },
	"tof":   func(e Event) float64 { return float64(e.ToF) },
	"layer": func(e Event) float64 { return float64(e.Voxel().Layer()) },
	"row":   func(e Event) float64 { return float64(e.Voxel().Row()) },
}

// FilterEvents returns the events passing every enabled filter, keeping
// their relative order.
func FilterEvents(events *Events, filters []Filter) (*Events, error) {
	getters := make([]func(Event) float64, len(filters))
	for i, f := range filters {
		getter, ok := filterParameters[f.Parameter]
		if !ok {
			return nil, fmt.Errorf("unknown filter parameter %q", f.Parameter)
		}
		getters[i] = getter
	}

	filtered := NewEvents(events.Len())
	for i := 0; i < events.Len(); i++ {
		event := events.At(i)
		keep := true
		for j, f := range filters {
			if !f.Enabled {
				continue
			}
			value := getters[j](event)
			if value < f.Min || value > f.Max {
				keep = false
				break
			}
		}
		if keep {
			filtered.Append(event)
		}
	}

	if configuration.Verbosity > 1 {
		message := fmt.Sprintf("Filters kept %d of %d events", filtered.Len(), events.Len())
		logger.Info(message, "filter")
	}
	return filtered, nil
}
