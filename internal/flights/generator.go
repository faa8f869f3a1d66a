package flights

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
)

const (
	optionsPerDay = 3

	minDurationMinutes = 180
	maxDurationMinutes = 840

	// later departures cost more, 15% per slot
	priceEscalation = 0.15

	businessMultiplierNum = 5 // business = economy * 5/2
	businessMultiplierDen = 2
	firstMultiplier       = 4

	defaultBasePrice = 600
)

var departureTimes = []string{"06:30", "10:45", "14:20", "18:30", "22:15"}

// basePrices holds published one-way economy fares keyed by route. A
// route matches in either direction; anything absent falls back to the
// default fare.
var basePrices = map[string]int{
	"NBO-LGW": 945, "NBO-DXB": 650, "NBO-AMS": 890,
	"NBO-CDG": 920, "NBO-ACC": 842, "NBO-LOS": 892,
	"NBO-FIH": 893, "NBO-ADD": 898, "NBO-DAR": 350,
	"NBO-EBB": 380, "NBO-KGL": 420, "NBO-JNB": 580,
	"NBO-MRU": 450, "NBO-JFK": 1200, "NBO-BOM": 720,
}

// Generator synthesizes flight options. Every call draws fresh
// randomness: flight numbers, aircraft, durations and seat counts are
// not reproducible across calls unless the source is seeded.
type Generator struct {
	catalog *catalog.Catalog
	rng     *random.Source
}

func NewGenerator(c *catalog.Catalog, rng *random.Source) *Generator {
	return &Generator{catalog: c, rng: rng}
}

// Generate returns up to three options for one direction on one day.
// Unknown cities yield an empty result rather than an error; callers
// validating input catch them earlier.
func (g *Generator) Generate(origin, destination, departureDate string) []models.Flight {
	from, ok := g.catalog.DestinationByCity(origin)
	if !ok {
		return nil
	}
	to, ok := g.catalog.DestinationByCity(destination)
	if !ok {
		return nil
	}

	base := baseFare(from.Code, to.Code)
	fleet := g.catalog.Fleet()

	options := make([]models.Flight, 0, optionsPerDay)
	for i := 0; i < optionsPerDay; i++ {
		aircraft := fleet[g.rng.Intn(len(fleet))]
		duration := g.rng.Between(minDurationMinutes, maxDurationMinutes)

		economy := int(math.Round(float64(base) * (1 + priceEscalation*float64(i))))
		prices := map[models.TravelClass]int{
			models.ClassEconomy:  economy,
			models.ClassBusiness: economy * businessMultiplierNum / businessMultiplierDen,
		}
		seats := map[models.TravelClass]int{
			models.ClassEconomy:  g.rng.Between(20, aircraft.Seats[models.ClassEconomy]),
			models.ClassBusiness: g.rng.Between(2, aircraft.Seats[models.ClassBusiness]),
		}
		if firstCap, hasFirst := aircraft.Seats[models.ClassFirst]; hasFirst {
			prices[models.ClassFirst] = economy * firstMultiplier
			seats[models.ClassFirst] = g.rng.Between(1, firstCap)
		}

		stops := 0
		if i > 0 {
			stops = g.rng.Intn(2)
		}

		depTime := departureTimes[i]
		options = append(options, models.Flight{
			FlightNumber:    "KQ" + strconv.Itoa(g.rng.Between(100, 999)),
			Origin:          origin,
			Destination:     destination,
			OriginCode:      from.Code,
			DestinationCode: to.Code,
			DepartureDate:   departureDate,
			DepartureTime:   depTime,
			ArrivalTime:     arrivalTime(depTime, duration),
			Duration:        fmt.Sprintf("%dh %dm", duration/60, duration%60),
			DurationMinutes: duration,
			Aircraft:        aircraft.Model,
			Prices:          prices,
			SeatsAvailable:  seats,
			Stops:           stops,
			MealService:     true,
			WifiAvailable:   true,
			Entertainment:   true,
		})
	}
	return options
}

func baseFare(originCode, destCode string) int {
	if p, ok := basePrices[originCode+"-"+destCode]; ok {
		return p
	}
	if p, ok := basePrices[destCode+"-"+originCode]; ok {
		return p
	}
	return defaultBasePrice
}

// arrivalTime adds duration to an HH:MM departure, wrapping past
// midnight for overnight flights.
func arrivalTime(departure string, durationMinutes int) string {
	parts := strings.SplitN(departure, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	total := hour*60 + minute + durationMinutes
	return fmt.Sprintf("%02d:%02d", (total/60)%24, total%60)
}
