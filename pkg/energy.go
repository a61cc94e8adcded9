package mgenergy

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// CorrectedToF converts raw ticks to seconds, adds the chopper time offset
// and folds the result into a single period window [0, PeriodTime).
func CorrectedToF(tof int64, c Constants) float64 {
	return foldPeriod(float64(tof)*c.TickSeconds+c.TimeOffset, c.PeriodTime)
}

func foldPeriod(t float64, period float64) float64 {
	t = math.Mod(t, period)
	if t < 0 {
		t += period
	}
	if t >= period {
		t = 0
	}
	return t
}

// Energy returns the kinetic energy in meV of a neutron flying distance
// meters in tof seconds.
func Energy(distance float64, tof float64, c Constants) float64 {
	v := distance / tof
	return v * v * ((c.NeutronMass / 2) * c.JouleToMeV)
}

// Calculator converts events to energies. Distance tables are built once
// per distance offset and shared read-only afterwards.
type Calculator struct {
	Constants Constants
	Mapper    CoordinateMapper

	mu     sync.Mutex
	tables map[float64]*DistanceTable
}

func NewCalculator(mapper CoordinateMapper) *Calculator {
	return NewCalculatorWithConstants(mapper, DefaultConstants())
}

func NewCalculatorWithConstants(mapper CoordinateMapper, constants Constants) *Calculator {
	return &Calculator{
		Constants: constants,
		Mapper:    mapper,
		tables:    make(map[float64]*DistanceTable),
	}
}

// Table returns the distance table for the calculator origin and offset,
// building it on first use.
func (c *Calculator) Table(distanceOffset float64) (*DistanceTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if table, ok := c.tables[distanceOffset]; ok {
		return table, nil
	}
	table, err := BuildDistanceTable(c.Mapper, c.Constants.Origin, distanceOffset)
	if err != nil {
		return nil, err
	}
	c.tables[distanceOffset] = table
	return table, nil
}

func (c *Calculator) ComputeEnergies(events *Events, distanceOffset float64) ([]float64, error) {
	if err := events.Validate(); err != nil {
		return nil, err
	}
	table, err := c.Table(distanceOffset)
	if err != nil {
		return nil, err
	}
	energies := make([]float64, events.Len())
	computeRange(events, table, c.Constants, 0, events.Len(), energies)

	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Computed energies for %d events", len(energies))
		logger.Info(message, "energy")
	}
	return energies, nil
}

// ComputeEnergiesWithTable uses an already built table.
func ComputeEnergiesWithTable(events *Events, table *DistanceTable, constants Constants) ([]float64, error) {
	if err := events.Validate(); err != nil {
		return nil, err
	}
	energies := make([]float64, events.Len())
	computeRange(events, table, constants, 0, events.Len(), energies)
	return energies, nil
}

// ComputeEnergies uses the nominal detector layout and default constants.
func ComputeEnergies(events *Events, distanceOffset float64) ([]float64, error) {
	return NewCalculator(DefaultLayout()).ComputeEnergies(events, distanceOffset)
}

// computeRange fills out[start:end] for events[start:end]. Events must be
// validated beforehand.
func computeRange(events *Events, table *DistanceTable, c Constants, start int, end int, out []float64) {
	tof := toFloat64s(events.ToF[start:end])
	floats.Scale(c.TickSeconds, tof)
	floats.AddConst(c.TimeOffset, tof)
	for i := range tof {
		tof[i] = foldPeriod(tof[i], c.PeriodTime)
	}

	d := make([]float64, end-start)
	for i := range d {
		j := start + i
		d[i] = table[events.Bus[j]][events.GridCh[j]][events.WireCh[j]]
	}

	v := out[start:end]
	floats.DivTo(v, d, tof)
	floats.Mul(v, v)
	floats.Scale((c.NeutronMass/2)*c.JouleToMeV, v)
}
