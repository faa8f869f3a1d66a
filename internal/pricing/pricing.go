package pricing

import (
	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

const (
	// InsurancePerPassenger is the flat travel insurance fee in USD.
	InsurancePerPassenger = 25
	// BaggagePerKg is the extra checked baggage fee in USD per kg.
	BaggagePerKg = 15
)

// Quote prices a booking: each passenger pays the cabin fare on every
// flight, plus flat ancillaries. Pure function; taxes are a display
// label only.
func Quote(flights []models.Flight, passengers []models.Passenger, extras models.Extras) models.PriceQuote {
	q := models.PriceQuote{Taxes: "Included"}

	for _, f := range flights {
		for i := range passengers {
			q.Fares += f.Prices[passengers[i].CabinClass()]
		}
	}

	if extras.Insurance {
		q.Insurance = InsurancePerPassenger * len(passengers)
	}
	q.Seats = extras.SeatSurcharges
	q.Baggage = BaggagePerKg * extras.ExtraBaggageKg

	q.Total = q.Fares + q.Insurance + q.Seats + q.Baggage
	return q
}
