package airports

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDirectoryLookup(t *testing.T) {
	d := Default()

	ktm, ok := d.Get("KTM")
	require.True(t, ok)
	assert.Equal(t, "VNKT", ktm.ICAO)
	assert.Equal(t, "Kathmandu", ktm.City)
	assert.InDelta(t, 27.6966, ktm.Latitude, 1e-6)

	lhr, ok := d.Get("lhr")
	require.True(t, ok, "lookup is case-insensitive")
	assert.Equal(t, "EGLL", lhr.ICAO)

	_, ok = d.Get("XXX")
	assert.False(t, ok)
}

func TestDefaultDirectoryListSorted(t *testing.T) {
	d := Default()
	list := d.List()
	require.NotEmpty(t, list)
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].Code, list[i].Code)
	}
}

func TestListReturnsCopy(t *testing.T) {
	d := Default()
	list := d.List()
	list[0].Code = "MUTATED"
	assert.NotEqual(t, "MUTATED", d.List()[0].Code)
}

func TestLoadCSVOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	data := "code,icao,name,city,country,latitude,longitude\n" +
		"TST,TTST,Test Field,Testville,Testland,12.5,-45.25\n" +
		"ABC,TABC,Alpha Field,Alphatown,Testland,1.0,2.0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	tst, ok := d.Get("TST")
	require.True(t, ok)
	assert.Equal(t, "Testville", tst.City)
	assert.InDelta(t, -45.25, tst.Longitude, 1e-9)

	// Override replaces the built-in table entirely
	_, ok = d.Get("KTM")
	assert.False(t, ok)
}

func TestLoadCSVBadCoordinate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.csv")
	data := "code,icao,name,city,country,latitude,longitude\n" +
		"TST,TTST,Test Field,Testville,Testland,not-a-number,0\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	d, err := Load("")
	require.NoError(t, err)
	_, ok := d.Get("LHR")
	assert.True(t, ok)
}
