package mgenergy

import "math"

// meV·Å² for a neutron, E = 81.81 / λ².
const neutronEnergyWavelength = 81.81

func MeVToAngstrom(energy float64) float64 {
	return math.Sqrt(neutronEnergyWavelength / energy)
}

func AngstromToMeV(wavelength float64) float64 {
	return neutronEnergyWavelength / (wavelength * wavelength)
}
