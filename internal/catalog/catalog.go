package catalog

import (
	"sort"
	"strings"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

// Catalog holds the static reference data: destinations served, airport
// details and the aircraft fleet. Loaded once at startup and read-only
// afterwards. Lookups report misses explicitly; nothing is fabricated
// for unknown keys.
type Catalog struct {
	destinations map[string]models.Destination
	airports     map[string]models.Airport
	fleet        []models.Aircraft
	byModel      map[string]models.Aircraft
}

func New() *Catalog {
	c := &Catalog{
		destinations: make(map[string]models.Destination, len(destinations)),
		airports:     make(map[string]models.Airport, len(airports)),
		fleet:        fleet,
		byModel:      make(map[string]models.Aircraft, len(fleet)),
	}
	for _, d := range destinations {
		c.destinations[d.City] = d
	}
	for _, a := range airports {
		c.airports[a.Code] = a
	}
	for _, ac := range fleet {
		c.byModel[ac.Model] = ac
	}
	return c
}

func (c *Catalog) DestinationByCity(city string) (models.Destination, bool) {
	d, ok := c.destinations[city]
	return d, ok
}

func (c *Catalog) KnownCity(city string) bool {
	_, ok := c.destinations[city]
	return ok
}

// Destinations returns all served cities sorted by name.
func (c *Catalog) Destinations() []models.Destination {
	out := make([]models.Destination, 0, len(c.destinations))
	for _, d := range c.destinations {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}

func (c *Catalog) AirportByCode(code string) (models.Airport, bool) {
	a, ok := c.airports[strings.ToUpper(code)]
	return a, ok
}

func (c *Catalog) Fleet() []models.Aircraft {
	return c.fleet
}

func (c *Catalog) AircraftByModel(model string) (models.Aircraft, bool) {
	ac, ok := c.byModel[model]
	return ac, ok
}

var destinations = []models.Destination{
	{City: "Nairobi", Code: "NBO", Country: "Kenya", Timezone: "+3"},
	{City: "London", Code: "LGW", Country: "United Kingdom", Timezone: "+0"},
	{City: "Dubai", Code: "DXB", Country: "UAE", Timezone: "+4"},
	{City: "Amsterdam", Code: "AMS", Country: "Netherlands", Timezone: "+1"},
	{City: "Paris", Code: "CDG", Country: "France", Timezone: "+1"},
	{City: "Mumbai", Code: "BOM", Country: "India", Timezone: "+5:30"},
	{City: "Bangkok", Code: "BKK", Country: "Thailand", Timezone: "+7"},
	{City: "Accra", Code: "ACC", Country: "Ghana", Timezone: "+0"},
	{City: "Lagos", Code: "LOS", Country: "Nigeria", Timezone: "+1"},
	{City: "Kinshasa", Code: "FIH", Country: "DR Congo", Timezone: "+1"},
	{City: "Addis Ababa", Code: "ADD", Country: "Ethiopia", Timezone: "+3"},
	{City: "Dar es Salaam", Code: "DAR", Country: "Tanzania", Timezone: "+3"},
	{City: "Entebbe", Code: "EBB", Country: "Uganda", Timezone: "+3"},
	{City: "Kigali", Code: "KGL", Country: "Rwanda", Timezone: "+2"},
	{City: "Johannesburg", Code: "JNB", Country: "South Africa", Timezone: "+2"},
	{City: "Cape Town", Code: "CPT", Country: "South Africa", Timezone: "+2"},
	{City: "Zanzibar", Code: "ZNZ", Country: "Tanzania", Timezone: "+3"},
	{City: "Mauritius", Code: "MRU", Country: "Mauritius", Timezone: "+4"},
	{City: "New York", Code: "JFK", Country: "USA", Timezone: "-5"},
	{City: "Rome", Code: "FCO", Country: "Italy", Timezone: "+1"},
}

var airports = []models.Airport{
	{
		Code:       "NBO",
		Name:       "Jomo Kenyatta International Airport",
		City:       "Nairobi",
		Country:    "Kenya",
		Terminals:  []string{"1A", "1B", "1C"},
		Facilities: []string{"Duty Free", "Restaurants", "Lounges", "WiFi", "ATM"},
	},
	{
		Code:       "LGW",
		Name:       "London Gatwick Airport",
		City:       "London",
		Country:    "United Kingdom",
		Terminals:  []string{"North", "South"},
		Facilities: []string{"Duty Free", "Restaurants", "Lounges", "WiFi", "ATM", "Shopping"},
	},
	{
		Code:       "DXB",
		Name:       "Dubai International Airport",
		City:       "Dubai",
		Country:    "UAE",
		Terminals:  []string{"1", "2", "3"},
		Facilities: []string{"Duty Free", "Restaurants", "Lounges", "WiFi", "ATM", "Shopping", "Spa"},
	},
	{
		Code:       "AMS",
		Name:       "Amsterdam Airport Schiphol",
		City:       "Amsterdam",
		Country:    "Netherlands",
		Terminals:  []string{"1", "2", "3"},
		Facilities: []string{"Duty Free", "Restaurants", "Lounges", "WiFi", "ATM", "Shopping"},
	},
}

var fleet = []models.Aircraft{
	{Model: "Boeing 787-8", Seats: map[models.TravelClass]int{models.ClassEconomy: 234, models.ClassBusiness: 30}},
	{Model: "Boeing 737-800", Seats: map[models.TravelClass]int{models.ClassEconomy: 162, models.ClassBusiness: 12}},
	{Model: "Embraer E190", Seats: map[models.TravelClass]int{models.ClassEconomy: 96, models.ClassBusiness: 8}},
	{Model: "Boeing 777-300ER", Seats: map[models.TravelClass]int{models.ClassEconomy: 300, models.ClassBusiness: 42, models.ClassFirst: 8}},
}
