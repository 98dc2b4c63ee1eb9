// Package traffic fetches, normalizes, and serves live aircraft state
// vectors from an OpenSky-compatible feed.
package traffic

import "time"

// Snapshot statuses
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// RawFeed is the wire shape of the states/all endpoint: a feed timestamp and
// positional state vectors whose field meanings are defined by index.
type RawFeed struct {
	Time   int64   `json:"time"`
	States [][]any `json:"states"`
}

// FlightState is one normalized aircraft state. ICAO24 is the stable
// transponder key. Latitude and longitude are always present (vectors
// without a position are dropped during normalization); the remaining
// numeric fields are nil when the feed omitted them.
type FlightState struct {
	ICAO24        string   `json:"icao24"`
	Callsign      string   `json:"callsign"`
	OriginCountry string   `json:"origin_country"`
	Lat           float64  `json:"lat"`
	Lon           float64  `json:"lon"`
	BaroAltitude  *float64 `json:"baro_altitude"`
	Velocity      *float64 `json:"velocity"`
	Heading       *float64 `json:"heading"`
	OnGround      bool     `json:"on_ground"`
}

// Snapshot is the result of one poll cycle. It is replaced wholesale each
// cycle; Status records whether the feed was reachable.
type Snapshot struct {
	FetchedAt time.Time     `json:"fetched_at"`
	Status    string        `json:"status"`
	Flights   []FlightState `json:"flights"`
}
