package airports

// defaultAirports is the built-in directory used when no CSV override is
// configured. Coordinates are aerodrome reference points in decimal degrees.
var defaultAirports = []Airport{
	{Code: "AMS", ICAO: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.3086, Longitude: 4.7639},
	{Code: "ATL", ICAO: "KATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States", Latitude: 33.6367, Longitude: -84.4281},
	{Code: "BOM", ICAO: "VABB", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Latitude: 19.0887, Longitude: 72.8679},
	{Code: "CDG", ICAO: "LFPG", Name: "Paris Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.0097, Longitude: 2.5479},
	{Code: "DEL", ICAO: "VIDP", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Latitude: 28.5562, Longitude: 77.1000},
	{Code: "DOH", ICAO: "OTHH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Latitude: 25.2731, Longitude: 51.6081},
	{Code: "DXB", ICAO: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates", Latitude: 25.2528, Longitude: 55.3644},
	{Code: "FRA", ICAO: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.0333, Longitude: 8.5706},
	{Code: "HKG", ICAO: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Latitude: 22.3089, Longitude: 113.9146},
	{Code: "IST", ICAO: "LTFM", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.2753, Longitude: 28.7519},
	{Code: "JFK", ICAO: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.6413, Longitude: -73.7781},
	{Code: "KTM", ICAO: "VNKT", Name: "Tribhuvan International Airport", City: "Kathmandu", Country: "Nepal", Latitude: 27.6966, Longitude: 85.3591},
	{Code: "LAX", ICAO: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.9425, Longitude: -118.4081},
	{Code: "LHR", ICAO: "EGLL", Name: "London Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4700, Longitude: -0.4543},
	{Code: "MAD", ICAO: "LEMD", Name: "Adolfo Suarez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", Latitude: 40.4719, Longitude: -3.5626},
	{Code: "NRT", ICAO: "RJAA", Name: "Narita International Airport", City: "Tokyo", Country: "Japan", Latitude: 35.7653, Longitude: 140.3856},
	{Code: "SIN", ICAO: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.3644, Longitude: 103.9915},
	{Code: "SYD", ICAO: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Latitude: -33.9461, Longitude: 151.1772},
	{Code: "YYZ", ICAO: "CYYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Latitude: 43.6772, Longitude: -79.6306},
	{Code: "ZRH", ICAO: "LSZH", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland", Latitude: 47.4647, Longitude: 8.5492},
}
