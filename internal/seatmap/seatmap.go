package seatmap

import (
	"strconv"
	"strings"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
)

type layout struct {
	Rows    int
	Letters string
	Pitch   string
}

// layouts covers the whole fleet. Unknown aircraft or cabins are
// reported to the caller instead of being mapped onto a default grid.
var layouts = map[string]map[models.TravelClass]layout{
	"Boeing 787-8": {
		models.ClassEconomy:  {Rows: 39, Letters: "ABCDEFGHJ", Pitch: "31-32 inches"},
		models.ClassBusiness: {Rows: 5, Letters: "ABEF", Pitch: "60 inches"},
	},
	"Boeing 737-800": {
		models.ClassEconomy:  {Rows: 27, Letters: "ABCDEF", Pitch: "30-31 inches"},
		models.ClassBusiness: {Rows: 2, Letters: "ABEF", Pitch: "40 inches"},
	},
	"Boeing 777-300ER": {
		models.ClassEconomy:  {Rows: 50, Letters: "ABCDEFGHJK", Pitch: "32-34 inches"},
		models.ClassBusiness: {Rows: 7, Letters: "ABEF", Pitch: "78 inches"},
		models.ClassFirst:    {Rows: 1, Letters: "AB", Pitch: "84 inches"},
	},
	"Embraer E190": {
		models.ClassEconomy:  {Rows: 24, Letters: "ABCD", Pitch: "31 inches"},
		models.ClassBusiness: {Rows: 2, Letters: "ABCD", Pitch: "38 inches"},
	},
}

const (
	windowLetters = "AK"
	aisleLetters  = "CF"

	windowSurcharge = 25
	aisleSurcharge  = 15

	minOccupancy = 0.3
	maxOccupancy = 0.7
)

// Generator produces seat grids with randomized occupancy. Grids are
// rebuilt per request; two renders of the same flight disagree on which
// seats are taken.
type Generator struct {
	rng *random.Source
}

func NewGenerator(rng *random.Source) *Generator {
	return &Generator{rng: rng}
}

func (g *Generator) Generate(aircraft string, class models.TravelClass) (*models.SeatMap, error) {
	cabins, ok := layouts[aircraft]
	if !ok {
		return nil, models.ErrUnknownAircraft
	}
	cfg, ok := cabins[class]
	if !ok {
		return nil, models.ErrUnknownCabin
	}

	total := cfg.Rows * len(cfg.Letters)
	occupied := make(map[string]struct{})
	// Sampling with replacement: the same seat can be drawn twice, so
	// real occupancy may land under the sampled percentage.
	target := g.rng.Between(int(float64(total)*minOccupancy), int(float64(total)*maxOccupancy))
	for i := 0; i < target; i++ {
		row := g.rng.Between(1, cfg.Rows)
		letter := g.rng.Pick(cfg.Letters)
		occupied[strconv.Itoa(row)+letter] = struct{}{}
	}

	seats := make([]models.Seat, 0, total)
	for row := 1; row <= cfg.Rows; row++ {
		for _, l := range cfg.Letters {
			letter := string(l)
			id := strconv.Itoa(row) + letter
			_, taken := occupied[id]
			seats = append(seats, models.Seat{
				SeatID:    id,
				Row:       row,
				Letter:    letter,
				Type:      seatType(letter),
				Available: !taken,
				Price:     surcharge(letter, class),
			})
		}
	}

	return &models.SeatMap{
		Aircraft: aircraft,
		Class:    class,
		Rows:     cfg.Rows,
		Letters:  cfg.Letters,
		Pitch:    cfg.Pitch,
		Seats:    seats,
	}, nil
}

// seatType derives solely from letter membership in the fixed sets.
func seatType(letter string) models.SeatType {
	switch {
	case strings.Contains(windowLetters, letter):
		return models.SeatWindow
	case strings.Contains(aisleLetters, letter):
		return models.SeatAisle
	default:
		return models.SeatMiddle
	}
}

// surcharge applies only in Economy; premium cabins include seating.
func surcharge(letter string, class models.TravelClass) int {
	if class != models.ClassEconomy {
		return 0
	}
	switch seatType(letter) {
	case models.SeatWindow:
		return windowSurcharge
	case models.SeatAisle:
		return aisleSurcharge
	default:
		return 0
	}
}
