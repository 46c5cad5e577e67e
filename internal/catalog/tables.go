package catalog

import "github.com/rshade/isleprint/internal/geo"

// Airports at either end of the supported routes.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var (
	mykonosAirport = geo.Location{ID: "JMK", Name: "Mykonos International Airport", Lat: 37.4351, Lon: 25.3481}
	athensAirport  = geo.Location{ID: "ATH", Name: "Athens International Airport", Lat: 37.9364, Lon: 23.9445}
)

// countryAirports maps a country to a representative origin airport.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var countryAirports = map[string]geo.Location{
	"Albania":        {ID: "TIA", Name: "Tirana", Lat: 41.4147, Lon: 19.7206},
	"Austria":        {ID: "VIE", Name: "Vienna", Lat: 48.1103, Lon: 16.5697},
	"Belgium":        {ID: "BRU", Name: "Brussels", Lat: 50.9010, Lon: 4.4844},
	"Bulgaria":       {ID: "SOF", Name: "Sofia", Lat: 42.6967, Lon: 23.4114},
	"Croatia":        {ID: "ZAG", Name: "Zagreb", Lat: 45.7429, Lon: 16.0688},
	"Cyprus":         {ID: "LCA", Name: "Larnaca", Lat: 34.8809, Lon: 33.6250},
	"Czechia":        {ID: "PRG", Name: "Prague", Lat: 50.1008, Lon: 14.26},
	"Denmark":        {ID: "CPH", Name: "Copenhagen", Lat: 55.6180, Lon: 12.6508},
	"Estonia":        {ID: "TLL", Name: "Tallinn", Lat: 59.4133, Lon: 24.8328},
	"Finland":        {ID: "HEL", Name: "Helsinki", Lat: 60.3172, Lon: 24.9633},
	"France":         {ID: "CDG", Name: "Paris (CDG)", Lat: 49.0097, Lon: 2.5479},
	"Germany":        {ID: "FRA", Name: "Frankfurt", Lat: 50.0379, Lon: 8.5622},
	"Greece":         {ID: "ATH", Name: "Athens", Lat: 37.9364, Lon: 23.9445},
	"Hungary":        {ID: "BUD", Name: "Budapest", Lat: 47.4330, Lon: 19.2610},
	"Iceland":        {ID: "KEF", Name: "Reykjavík (KEF)", Lat: 63.9850, Lon: -22.6056},
	"Ireland":        {ID: "DUB", Name: "Dublin", Lat: 53.4213, Lon: -6.2701},
	"Italy":          {ID: "FCO", Name: "Rome (FCO)", Lat: 41.8003, Lon: 12.2389},
	"Latvia":         {ID: "RIX", Name: "Riga", Lat: 56.9236, Lon: 23.9711},
	"Lithuania":      {ID: "VNO", Name: "Vilnius", Lat: 54.6341, Lon: 25.2858},
	"Luxembourg":     {ID: "LUX", Name: "Luxembourg", Lat: 49.6266, Lon: 6.2115},
	"Malta":          {ID: "MLA", Name: "Malta", Lat: 35.8575, Lon: 14.4775},
	"Netherlands":    {ID: "AMS", Name: "Amsterdam", Lat: 52.3086, Lon: 4.7639},
	"Norway":         {ID: "OSL", Name: "Oslo", Lat: 60.2028, Lon: 11.0839},
	"Poland":         {ID: "WAW", Name: "Warsaw", Lat: 52.1657, Lon: 20.9671},
	"Portugal":       {ID: "LIS", Name: "Lisbon", Lat: 38.7742, Lon: -9.1342},
	"Romania":        {ID: "OTP", Name: "Bucharest", Lat: 44.5711, Lon: 26.0850},
	"Serbia":         {ID: "BEG", Name: "Belgrade", Lat: 44.8184, Lon: 20.3091},
	"Slovakia":       {ID: "BTS", Name: "Bratislava", Lat: 48.1698, Lon: 17.2126},
	"Slovenia":       {ID: "LJU", Name: "Ljubljana", Lat: 46.2237, Lon: 14.4576},
	"Spain":          {ID: "MAD", Name: "Madrid", Lat: 40.4722, Lon: -3.5608},
	"Sweden":         {ID: "ARN", Name: "Stockholm (ARN)", Lat: 59.6519, Lon: 17.9186},
	"Switzerland":    {ID: "ZRH", Name: "Zurich", Lat: 47.4581, Lon: 8.5555},
	"United Kingdom": {ID: "LHR", Name: "London (LHR)", Lat: 51.4700, Lon: -0.4543},
	"United States":  {ID: "JFK", Name: "New York (JFK)", Lat: 40.6413, Lon: -73.7781},
	"Canada":         {ID: "YYZ", Name: "Toronto (YYZ)", Lat: 43.6777, Lon: -79.6248},
	"Brazil":         {ID: "GRU", Name: "São Paulo (GRU)", Lat: -23.4356, Lon: -46.4731},
	"UAE":            {ID: "DXB", Name: "Dubai", Lat: 25.2532, Lon: 55.3657},
	"Qatar":          {ID: "DOH", Name: "Doha", Lat: 25.2731, Lon: 51.6081},
	"Turkey":         {ID: "IST", Name: "Istanbul (IST)", Lat: 41.2753, Lon: 28.7519},
	"Australia":      {ID: "SYD", Name: "Sydney", Lat: -33.9399, Lon: 151.1753},
	"South Africa":   {ID: "JNB", Name: "Johannesburg", Lat: -26.1327, Lon: 28.2314},
	"Saudi Arabia":   {ID: "RUH", Name: "Riyadh", Lat: 24.9576, Lon: 46.6988},
	"India":          {ID: "DEL", Name: "Delhi", Lat: 28.5562, Lon: 77.1000},
	"China":          {ID: "PEK", Name: "Beijing", Lat: 40.0799, Lon: 116.6031},
	"Japan":          {ID: "HND", Name: "Tokyo (HND)", Lat: 35.5494, Lon: 139.7798},
}

// greekIslands are helicopter destinations from Athens.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var greekIslands = map[string]geo.Location{
	"Mykonos (JMK)":         {ID: "JMK", Name: "Mykonos", Lat: 37.4351, Lon: 25.3481},
	"Santorini (JTR)":       {ID: "JTR", Name: "Santorini", Lat: 36.3992, Lon: 25.4793},
	"Heraklion (HER)":       {ID: "HER", Name: "Heraklion", Lat: 35.3397, Lon: 25.1803},
	"Rhodes (RHO)":          {ID: "RHO", Name: "Rhodes", Lat: 36.4054, Lon: 28.0862},
	"Naxos (JNX)":           {ID: "JNX", Name: "Naxos", Lat: 37.0810, Lon: 25.3681},
	"Paros (PAS)":           {ID: "PAS", Name: "Paros", Lat: 37.0206, Lon: 25.1132},
	"Skiathos (JSI)":        {ID: "JSI", Name: "Skiathos", Lat: 39.1771, Lon: 23.5037},
	"Chios (JKH)":           {ID: "JKH", Name: "Chios", Lat: 38.3431, Lon: 26.1417},
	"Lesvos/Mytilene (MJT)": {ID: "MJT", Name: "Lesvos/Mytilene", Lat: 39.0579, Lon: 26.5987},
	"Corfu (CFU)":           {ID: "CFU", Name: "Corfu", Lat: 39.6019, Lon: 19.9117},
	"Zakynthos (ZTH)":       {ID: "ZTH", Name: "Zakynthos", Lat: 37.7510, Lon: 20.8843},
	"Kos (KGS)":             {ID: "KGS", Name: "Kos", Lat: 36.7933, Lon: 27.0917},
}

// aircraftFactors are approximate kgCO2e per passenger-km by aircraft type.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var aircraftFactors = map[string]float64{
	"Narrow-body (A320/B737)":   0.13,
	"A321neo / 737 MAX":         0.11,
	"Wide-body (A330/B787)":     0.10,
	"A350 / 787-10 (efficient)": 0.09,
	"Generic short-haul":        0.15,
	"Generic long-haul":         0.11,
}

// helicopterFactors are indicative kgCO2e per passenger-km by helicopter class.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var helicopterFactors = map[string]float64{
	"Light single (e.g., H125)":    0.25,
	"Light twin (e.g., H135/H145)": 0.30,
	"Medium twin (e.g., AW139)":    0.35,
}

// islandVehicleFactors are kgCO2e per km for on-island transport.
//
//nolint:gochecknoglobals // Read-only reference data, copied into every Catalog.
var islandVehicleFactors = map[string]float64{
	"Car (petrol)":    0.18,
	"Car (diesel)":    0.17,
	"Car (hybrid)":    0.11,
	"Car (EV)":        0.05, // grid dependent
	"Scooter / moped": 0.07,
	"ATV (quad)":      0.12,
	"Bicycle":         0.0,
	"E-bike":          0.01,
}
