// Package emissions estimates per-passenger flight CO2 from distance flown.
package emissions

// EmissionFactor is the average economy-class emission rate in kg CO2 per
// passenger-kilometer. Single fleet-wide average, no aircraft-type or
// cabin-class differentiation.
const EmissionFactor = 0.115

// Estimate returns the estimated CO2 in kilograms for one passenger flying
// the given great-circle distance in kilometers. Linear in distance; the
// caller is expected to pass a non-negative value.
func Estimate(distanceKm float64) float64 {
	return distanceKm * EmissionFactor
}
