package route

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yegors/eco-flight/internal/airports"
)

func TestCalculateKathmanduLondon(t *testing.T) {
	svc := NewService(airports.Default())

	calc, err := svc.Calculate("KTM", "LHR")
	require.NoError(t, err)

	assert.Equal(t, "KTM", calc.Origin.Code)
	assert.Equal(t, "LHR", calc.Destination.Code)
	assert.InEpsilon(t, 7382.0, calc.DistanceKm, 0.01)
	assert.InDelta(t, calc.DistanceKm*0.115, calc.EmissionsKg, 1e-6)
	assert.GreaterOrEqual(t, calc.BearingDeg, 0.0)
	assert.Less(t, calc.BearingDeg, 360.0)
}

func TestCalculateMagneticCourse(t *testing.T) {
	svc := NewService(airports.Default())
	// Pin the date inside the geomagnetic model's validity window
	svc.now = func() time.Time { return time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC) }

	calc, err := svc.Calculate("JFK", "LHR")
	require.NoError(t, err)
	require.NotNil(t, calc.MagneticCourseDeg)
	assert.GreaterOrEqual(t, *calc.MagneticCourseDeg, 0.0)
	assert.Less(t, *calc.MagneticCourseDeg, 360.0)
	// New York declination is around -13 degrees, so magnetic differs from true
	assert.NotEqual(t, calc.BearingDeg, *calc.MagneticCourseDeg)
}

func TestCalculateCaseInsensitiveCodes(t *testing.T) {
	svc := NewService(airports.Default())

	calc, err := svc.Calculate("ktm", " lhr ")
	require.NoError(t, err)
	assert.Equal(t, "KTM", calc.Origin.Code)
	assert.Equal(t, "LHR", calc.Destination.Code)
}

func TestCalculateValidation(t *testing.T) {
	svc := NewService(airports.Default())

	_, err := svc.Calculate("", "LHR")
	assert.Error(t, err)

	_, err = svc.Calculate("KTM", "")
	assert.Error(t, err)

	_, err = svc.Calculate("KTM", "ZZZ")
	assert.ErrorContains(t, err, "unknown destination")

	_, err = svc.Calculate("ZZZ", "LHR")
	assert.ErrorContains(t, err, "unknown origin")
}

func TestCalculateSameAirport(t *testing.T) {
	svc := NewService(airports.Default())

	calc, err := svc.Calculate("LHR", "LHR")
	require.NoError(t, err)
	assert.Equal(t, 0.0, calc.DistanceKm)
	assert.Equal(t, 0.0, calc.EmissionsKg)
}
