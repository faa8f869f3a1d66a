package flights

import (
	"strconv"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

var statuses = []string{"On Time", "Delayed", "Boarding", "Departed", "Arrived", "Cancelled"}

var terminals = []string{"1A", "1B", "1C"}

// Status synthesizes live status for a flight number. There is no real
// operations feed; every call rolls a new status.
func (g *Generator) Status(flightNumber string) models.FlightStatus {
	status := statuses[g.rng.Intn(len(statuses))]

	delay := 0
	if status == "Delayed" {
		delay = g.rng.Between(15, 180)
	}

	fs := models.FlightStatus{
		FlightNumber: flightNumber,
		Status:       status,
		DelayMinutes: delay,
		Gate:         "A" + strconv.Itoa(g.rng.Between(1, 25)),
		Terminal:     terminals[g.rng.Intn(len(terminals))],
	}
	if status == "Arrived" || status == "Boarding" {
		claim := g.rng.Between(1, 8)
		fs.BaggageClaim = &claim
	}
	return fs
}
