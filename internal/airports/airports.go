// Package airports provides the static airport directory the route and
// eco-plan services resolve endpoints against.
package airports

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Airport is one entry in the directory. Code is the IATA identifier and is
// unique within a directory.
type Airport struct {
	Code      string  `json:"code"`
	ICAO      string  `json:"icao"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Directory is a read-only lookup table of airports keyed by IATA code.
type Directory struct {
	byCode map[string]Airport
	sorted []Airport
}

// NewDirectory builds a directory from the given airports. Later entries with
// a duplicate code replace earlier ones.
func NewDirectory(list []Airport) *Directory {
	d := &Directory{byCode: make(map[string]Airport, len(list))}
	for _, a := range list {
		a.Code = strings.ToUpper(strings.TrimSpace(a.Code))
		if a.Code == "" {
			continue
		}
		d.byCode[a.Code] = a
	}
	d.sorted = make([]Airport, 0, len(d.byCode))
	for _, a := range d.byCode {
		d.sorted = append(d.sorted, a)
	}
	sort.Slice(d.sorted, func(i, j int) bool { return d.sorted[i].Code < d.sorted[j].Code })
	return d
}

// Default returns a directory backed by the built-in airport table.
func Default() *Directory {
	return NewDirectory(defaultAirports)
}

// Load returns the default directory, or one parsed from the CSV at path
// when path is non-empty.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}
	list, err := readCSV(path)
	if err != nil {
		return nil, err
	}
	return NewDirectory(list), nil
}

// Get looks up an airport by IATA code, case-insensitively.
func (d *Directory) Get(code string) (Airport, bool) {
	a, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return a, ok
}

// List returns every airport ordered by code. The returned slice is a copy.
func (d *Directory) List() []Airport {
	out := make([]Airport, len(d.sorted))
	copy(out, d.sorted)
	return out
}

// Len returns the number of airports in the directory.
func (d *Directory) Len() int {
	return len(d.byCode)
}

// readCSV parses an airport table with columns
// code,icao,name,city,country,latitude,longitude and a header row.
func readCSV(path string) ([]Airport, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.LazyQuotes = true

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	list := make([]Airport, 0, len(records))
	for _, record := range records {
		if len(record) < 7 {
			continue
		}

		lat, err := strconv.ParseFloat(record[5], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in CSV for %s: %w", record[0], err)
		}
		lon, err := strconv.ParseFloat(record[6], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in CSV for %s: %w", record[0], err)
		}

		list = append(list, Airport{
			Code:      record[0],
			ICAO:      record[1],
			Name:      record[2],
			City:      record[3],
			Country:   record[4],
			Latitude:  lat,
			Longitude: lon,
		})
	}

	if len(list) == 0 {
		return nil, fmt.Errorf("no airports found in %s", path)
	}

	return list, nil
}
