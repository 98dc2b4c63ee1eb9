package traffic

import "strings"

// State vector indices per the OpenSky states/all layout. This is the single
// place in the codebase that knows what each position means.
const (
	idxICAO24        = 0
	idxCallsign      = 1
	idxOriginCountry = 2
	idxLongitude     = 5
	idxLatitude      = 6
	idxBaroAltitude  = 7
	idxOnGround      = 8
	idxVelocity      = 9
	idxTrueTrack     = 10
)

// Normalize converts raw positional state vectors into FlightStates.
// Vectors without both a latitude and a longitude are dropped; everything
// else is kept. Source order is preserved. The result is never nil.
func Normalize(raw *RawFeed) []FlightState {
	if raw == nil {
		return []FlightState{}
	}

	flights := make([]FlightState, 0, len(raw.States))
	for _, s := range raw.States {
		lat, latOK := floatAt(s, idxLatitude)
		lon, lonOK := floatAt(s, idxLongitude)
		if !latOK || !lonOK {
			continue
		}

		callsign := strings.TrimSpace(stringAt(s, idxCallsign))
		if callsign == "" {
			callsign = "N/A"
		}

		fs := FlightState{
			ICAO24:        stringAt(s, idxICAO24),
			Callsign:      callsign,
			OriginCountry: stringAt(s, idxOriginCountry),
			Lat:           lat,
			Lon:           lon,
			OnGround:      boolAt(s, idxOnGround),
		}

		if v, ok := floatAt(s, idxBaroAltitude); ok {
			fs.BaroAltitude = &v
		}
		if v, ok := floatAt(s, idxVelocity); ok {
			fs.Velocity = &v
		}
		if v, ok := floatAt(s, idxTrueTrack); ok {
			fs.Heading = &v
		}

		flights = append(flights, fs)
	}

	return flights
}

// floatAt extracts a float from a state vector, distinguishing absent or
// null values from real zeros.
func floatAt(s []any, idx int) (float64, bool) {
	if idx >= len(s) {
		return 0, false
	}
	v, ok := s[idx].(float64)
	return v, ok
}

func stringAt(s []any, idx int) string {
	if idx >= len(s) {
		return ""
	}
	v, _ := s[idx].(string)
	return v
}

func boolAt(s []any, idx int) bool {
	if idx >= len(s) {
		return false
	}
	v, _ := s[idx].(bool)
	return v
}
