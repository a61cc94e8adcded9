package mgenergy

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the finite part of an energy spectrum. Non-finite
// values come from zero time-of-flight and are only counted.
type Summary struct {
	Count       int
	FiniteCount int
	Min         float64
	Max         float64
	Mean        float64
	StdDev      float64
}

func Summarize(energies []float64) Summary {
	finite := make([]float64, 0, len(energies))
	for _, e := range energies {
		if !math.IsNaN(e) && !math.IsInf(e, 0) {
			finite = append(finite, e)
		}
	}
	summary := Summary{Count: len(energies), FiniteCount: len(finite)}
	if len(finite) == 0 {
		return summary
	}
	summary.Min = floats.Min(finite)
	summary.Max = floats.Max(finite)
	if len(finite) == 1 {
		summary.Mean = finite[0]
		return summary
	}
	summary.Mean, summary.StdDev = stat.MeanStdDev(finite, nil)
	return summary
}

func (s Summary) String() string {
	return fmt.Sprintf("events: %d, finite: %d, min: %.4f meV, max: %.4f meV, mean: %.4f meV, std: %.4f meV",
		s.Count, s.FiniteCount, s.Min, s.Max, s.Mean, s.StdDev)
}
