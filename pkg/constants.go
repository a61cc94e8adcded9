package mgenergy

// Instrument constants for the Multi-Grid demonstrator at the chopper
// spectrometer. All times in seconds, masses in kg.
const (
	NeutronMass    = 1.674927351e-27
	JouleToMeV     = 6.24150913e18 * 1000
	TimeOffset     = 0.6e-3
	PeriodTime     = 1.0 / 14
	TofTickSeconds = 62.5e-9
)

var OriginVoxel = Voxel{Bus: 1, GridCh: 88, WireCh: 40}

type Constants struct {
	Origin      Voxel
	NeutronMass float64
	JouleToMeV  float64
	TimeOffset  float64
	PeriodTime  float64
	TickSeconds float64
}

func DefaultConstants() Constants {
	return Constants{
		Origin:      OriginVoxel,
		NeutronMass: NeutronMass,
		JouleToMeV:  JouleToMeV,
		TimeOffset:  TimeOffset,
		PeriodTime:  PeriodTime,
		TickSeconds: TofTickSeconds,
	}
}
