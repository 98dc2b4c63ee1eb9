package traffic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullVector() []any {
	return []any{
		"4b1617", "SWR123  ", "Switzerland", float64(1700000000), float64(1700000010),
		8.55, 47.45, 11582.4, false, 245.2, 87.5, 0.5,
		nil, 11887.2, "1000", false, float64(0),
	}
}

func TestNormalizeFullVector(t *testing.T) {
	raw := &RawFeed{Time: 1700000000, States: [][]any{fullVector()}}

	flights := Normalize(raw)
	require.Len(t, flights, 1)

	f := flights[0]
	assert.Equal(t, "4b1617", f.ICAO24)
	assert.Equal(t, "SWR123", f.Callsign, "callsign is trimmed")
	assert.Equal(t, "Switzerland", f.OriginCountry)
	assert.Equal(t, 47.45, f.Lat)
	assert.Equal(t, 8.55, f.Lon)
	assert.False(t, f.OnGround)

	require.NotNil(t, f.BaroAltitude)
	assert.Equal(t, 11582.4, *f.BaroAltitude)
	require.NotNil(t, f.Velocity)
	assert.Equal(t, 245.2, *f.Velocity)
	require.NotNil(t, f.Heading)
	assert.Equal(t, 87.5, *f.Heading)
}

func TestNormalizeDropsMissingPosition(t *testing.T) {
	noLat := fullVector()
	noLat[idxLatitude] = nil
	noLon := fullVector()
	noLon[idxLongitude] = nil
	short := []any{"abc123", "XYZ", "Nowhere"}

	raw := &RawFeed{States: [][]any{noLat, fullVector(), noLon, short}}

	flights := Normalize(raw)
	require.Len(t, flights, 1)
	assert.Equal(t, "4b1617", flights[0].ICAO24)
}

func TestNormalizeMissingCallsign(t *testing.T) {
	empty := fullVector()
	empty[idxCallsign] = "   "
	null := fullVector()
	null[idxCallsign] = nil

	flights := Normalize(&RawFeed{States: [][]any{empty, null}})
	require.Len(t, flights, 2)
	assert.Equal(t, "N/A", flights[0].Callsign)
	assert.Equal(t, "N/A", flights[1].Callsign)
}

func TestNormalizeNullOptionalsStayNil(t *testing.T) {
	v := fullVector()
	v[idxBaroAltitude] = nil
	v[idxVelocity] = nil
	v[idxTrueTrack] = nil

	flights := Normalize(&RawFeed{States: [][]any{v}})
	require.Len(t, flights, 1)
	assert.Nil(t, flights[0].BaroAltitude)
	assert.Nil(t, flights[0].Velocity)
	assert.Nil(t, flights[0].Heading)
}

func TestNormalizeZeroValuesAreKept(t *testing.T) {
	v := fullVector()
	v[idxBaroAltitude] = 0.0
	v[idxVelocity] = 0.0
	v[idxLatitude] = 0.0
	v[idxLongitude] = 0.0

	flights := Normalize(&RawFeed{States: [][]any{v}})
	require.Len(t, flights, 1)
	require.NotNil(t, flights[0].BaroAltitude)
	assert.Equal(t, 0.0, *flights[0].BaroAltitude)
	require.NotNil(t, flights[0].Velocity)
	assert.Equal(t, 0.0, *flights[0].Velocity)
}

func TestNormalizePreservesSourceOrder(t *testing.T) {
	a := fullVector()
	a[idxICAO24] = "aaa111"
	b := fullVector()
	b[idxICAO24] = "bbb222"
	c := fullVector()
	c[idxICAO24] = "ccc333"

	flights := Normalize(&RawFeed{States: [][]any{a, b, c}})
	require.Len(t, flights, 3)
	assert.Equal(t, "aaa111", flights[0].ICAO24)
	assert.Equal(t, "bbb222", flights[1].ICAO24)
	assert.Equal(t, "ccc333", flights[2].ICAO24)
}

func TestNormalizeEmptyFeed(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(&RawFeed{}))
	assert.NotNil(t, Normalize(&RawFeed{}))
}
