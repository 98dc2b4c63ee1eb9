// Package route computes per-request route figures between two airports.
// Calculations are ephemeral; nothing is stored.
package route

import (
	"fmt"
	"strings"
	"time"

	"github.com/westphae/geomag/pkg/egm96"
	"github.com/westphae/geomag/pkg/wmm"

	"github.com/yegors/eco-flight/internal/airports"
	"github.com/yegors/eco-flight/internal/emissions"
	"github.com/yegors/eco-flight/internal/geo"
)

// Calculation holds the derived figures for one origin/destination pair.
// MagneticCourseDeg is nil when the geomagnetic model fails for the origin.
type Calculation struct {
	Origin            airports.Airport `json:"origin"`
	Destination       airports.Airport `json:"destination"`
	DistanceKm        float64          `json:"distance_km"`
	EmissionsKg       float64          `json:"emissions_kg"`
	BearingDeg        float64          `json:"bearing_deg"`
	MagneticCourseDeg *float64         `json:"magnetic_course_deg,omitempty"`
}

// Service resolves airport codes and computes route figures.
type Service struct {
	directory *airports.Directory
	now       func() time.Time
}

// NewService creates a route service over the given airport directory.
func NewService(directory *airports.Directory) *Service {
	return &Service{directory: directory, now: time.Now}
}

// Calculate resolves both codes and returns the route figures. Unknown or
// missing codes return a validation error for the API layer to surface.
func (s *Service) Calculate(originCode, destinationCode string) (*Calculation, error) {
	if strings.TrimSpace(originCode) == "" || strings.TrimSpace(destinationCode) == "" {
		return nil, fmt.Errorf("origin and destination are required")
	}

	origin, ok := s.directory.Get(originCode)
	if !ok {
		return nil, fmt.Errorf("unknown origin airport: %s", originCode)
	}
	destination, ok := s.directory.Get(destinationCode)
	if !ok {
		return nil, fmt.Errorf("unknown destination airport: %s", destinationCode)
	}

	distance := geo.Haversine(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)
	bearing := geo.Bearing(origin.Latitude, origin.Longitude, destination.Latitude, destination.Longitude)

	calc := &Calculation{
		Origin:      origin,
		Destination: destination,
		DistanceKm:  distance,
		EmissionsKg: emissions.Estimate(distance),
		BearingDeg:  bearing,
	}

	if decl, ok := magneticDeclination(origin.Latitude, origin.Longitude, s.now()); ok {
		course := geo.NormalizeDeg(bearing - decl)
		calc.MagneticCourseDeg = &course
	}

	return calc, nil
}

// magneticDeclination returns the WMM declination in degrees (+East) at sea
// level for the given position and date.
func magneticDeclination(lat, lon float64, date time.Time) (float64, bool) {
	loc := egm96.NewLocationGeodetic(lat, lon, 0)
	mag, err := wmm.CalculateWMMMagneticField(loc, date)
	if err != nil {
		return 0, false
	}
	return mag.D(), true
}
