package traffic

import (
	"fmt"
	"sort"
	"strings"
)

// Sort keys accepted by Query
const (
	SortCallsign      = "callsign"
	SortOriginCountry = "origin_country"
	SortVelocity      = "velocity"
	SortBaroAltitude  = "baro_altitude"
)

// Query narrows and orders a flight list for presentation. The input slice
// is never mutated; filtering then sorting is a pure function of its
// arguments, so reapplying the same query is a no-op.
type Query struct {
	Filter     string // case-insensitive substring over callsign or origin country
	SortKey    string // one of the Sort* constants, empty for source order
	Descending bool
}

// Validate reports whether the sort key is recognized.
func (q Query) Validate() error {
	switch q.SortKey {
	case "", SortCallsign, SortOriginCountry, SortVelocity, SortBaroAltitude:
		return nil
	default:
		return fmt.Errorf("unknown sort key: %s", q.SortKey)
	}
}

// Apply returns a new slice holding the filtered, ordered flights.
func (q Query) Apply(flights []FlightState) []FlightState {
	out := make([]FlightState, 0, len(flights))

	needle := strings.ToLower(strings.TrimSpace(q.Filter))
	for _, f := range flights {
		if needle == "" ||
			strings.Contains(strings.ToLower(f.Callsign), needle) ||
			strings.Contains(strings.ToLower(f.OriginCountry), needle) {
			out = append(out, f)
		}
	}

	if q.SortKey == "" {
		return out
	}

	switch q.SortKey {
	case SortCallsign:
		sort.SliceStable(out, func(i, j int) bool {
			return q.lessString(out[i].Callsign, out[j].Callsign)
		})
	case SortOriginCountry:
		sort.SliceStable(out, func(i, j int) bool {
			return q.lessString(out[i].OriginCountry, out[j].OriginCountry)
		})
	case SortVelocity:
		sort.SliceStable(out, func(i, j int) bool {
			return q.lessOptional(out[i].Velocity, out[j].Velocity)
		})
	case SortBaroAltitude:
		sort.SliceStable(out, func(i, j int) bool {
			return q.lessOptional(out[i].BaroAltitude, out[j].BaroAltitude)
		})
	}

	return out
}

func (q Query) lessString(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	if q.Descending {
		return a > b
	}
	return a < b
}

// lessOptional orders present values by the requested direction and keeps
// nil values at the end regardless of direction.
func (q Query) lessOptional(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	if q.Descending {
		return *a > *b
	}
	return *a < *b
}
