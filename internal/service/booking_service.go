package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/ports"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/pricing"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/validator"
)

const (
	referencePrefix   = "KQ"
	referenceAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referenceLength   = 6

	ticketPrefix     = "629-"
	ticketDigitCount = 10

	paymentStatusPaid = "Paid"

	seatNotAssigned = "Not assigned"

	boardingLeadMinutes = 30
	baggageAllowance    = "23kg"
)

type bookingService struct {
	store    ports.BookingStore
	sessions ports.SessionStore
	rng      *random.Source
	log      *logrus.Logger
}

func NewBookingService(store ports.BookingStore, sessions ports.SessionStore, rng *random.Source, log *logrus.Logger) *bookingService {
	return &bookingService{
		store:    store,
		sessions: sessions,
		rng:      rng,
		log:      log,
	}
}

// CreateBooking assembles flights, validated passengers, contact and
// price into a booking record with one ticket per passenger. Once the
// passengers validate, creation cannot fail: there is no payment
// decline or inventory exhaustion in this system. Generated references
// and ticket numbers are random and carry no uniqueness guarantee.
func (s *bookingService) CreateBooking(ctx context.Context, sessionID string, req *models.BookingRequest) (*models.Booking, error) {
	if failures := validator.ValidatePassengers(req.Passengers); len(failures) > 0 {
		return nil, &models.PassengerValidationError{Failures: failures}
	}

	quote := pricing.Quote(req.Flights, req.Passengers, req.Extras)

	booking := &models.Booking{
		ID:            uuid.New(),
		Reference:     referencePrefix + s.rng.String(referenceAlphabet, referenceLength),
		CreatedAt:     time.Now().UTC(),
		Status:        models.StatusConfirmed,
		Flights:       req.Flights,
		Passengers:    req.Passengers,
		Contact:       req.Contact,
		TotalPrice:    quote.Total,
		PaymentStatus: paymentStatusPaid,
		Tickets:       make([]models.Ticket, 0, len(req.Passengers)),
	}

	for i := range req.Passengers {
		p := &req.Passengers[i]
		seat := p.Seat
		if seat == "" {
			seat = seatNotAssigned
		}
		booking.Tickets = append(booking.Tickets, models.Ticket{
			TicketNumber:    ticketPrefix + s.rng.Digits(ticketDigitCount),
			PassengerName:   p.FullName(),
			Seat:            seat,
			Class:           p.CabinClass(),
			SpecialRequests: p.SpecialRequests,
		})
	}

	if err := s.store.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("error saving booking: %w", err)
	}
	s.completeSession(ctx, sessionID, booking.Reference)

	s.log.WithFields(logrus.Fields{
		"reference":  booking.Reference,
		"passengers": len(booking.Passengers),
		"flights":    len(booking.Flights),
		"total":      booking.TotalPrice,
	}).Info("booking created")
	return booking, nil
}

// completeSession pins the finished booking on the session and clears
// the in-progress funnel slots.
func (s *bookingService) completeSession(ctx context.Context, sessionID, reference string) {
	if sessionID == "" {
		return
	}
	sess, err := s.sessions.Get(ctx, sessionID)
	if errors.Is(err, models.ErrSessionNotFound) {
		sess = &models.Session{ID: sessionID}
	} else if err != nil {
		s.log.WithError(err).Warn("session read failed")
		return
	}

	sess.BookingReference = reference
	sess.SearchResults = nil
	sess.SelectedFlights = nil
	sess.SeatSelections = nil
	sess.Passengers = nil
	if err := s.sessions.Put(ctx, sess); err != nil {
		s.log.WithError(err).Warn("session write failed")
	}
}

// GetBooking looks a booking up by reference and passenger last name.
// A last-name mismatch is indistinguishable from a missing booking so
// the endpoint cannot be used to probe references.
func (s *bookingService) GetBooking(ctx context.Context, reference, lastName string) (*models.Booking, error) {
	booking, err := s.store.ByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	if findPassenger(booking, lastName) == nil {
		return nil, models.ErrBookingNotFound
	}
	return booking, nil
}

// CheckIn issues a boarding pass for the first flight on the booking,
// marks the passenger checked in, and prices any extra baggage added
// at the counter. A seat preference given here replaces any earlier
// seat selection.
func (s *bookingService) CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.BoardingPass, error) {
	booking, err := s.store.ByReference(ctx, req.Reference)
	if err != nil {
		return nil, err
	}
	passenger := findPassenger(booking, req.LastName)
	if passenger == nil {
		return nil, models.ErrBookingNotFound
	}
	if len(booking.Flights) == 0 {
		return nil, models.ErrBookingNotFound
	}
	flight := booking.Flights[0]

	if req.SeatPreference != "" {
		passenger.Seat = req.SeatPreference
	}
	seat := passenger.Seat
	if seat == "" {
		seat = seatNotAssigned
	}

	pass := &models.BoardingPass{
		Reference:        booking.Reference,
		PassengerName:    passenger.FullName(),
		FlightNumber:     flight.FlightNumber,
		Route:            flight.Origin + " - " + flight.Destination,
		DepartureDate:    flight.DepartureDate,
		DepartureTime:    flight.DepartureTime,
		BoardingTime:     boardingTime(flight.DepartureTime),
		Gate:             "A" + strconv.Itoa(s.rng.Between(1, 25)),
		Terminal:         []string{"1A", "1B", "1C"}[s.rng.Intn(3)],
		Seat:             seat,
		Class:            passenger.CabinClass(),
		BaggageAllowance: baggageAllowance,
		ExtraBaggageCost: req.ExtraBaggageKg * pricing.BaggagePerKg,
	}

	passenger.CheckedIn = true
	if err := s.store.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("error updating booking: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"reference": booking.Reference,
		"flight":    flight.FlightNumber,
	}).Info("passenger checked in")
	return pass, nil
}

func findPassenger(booking *models.Booking, lastName string) *models.Passenger {
	for i := range booking.Passengers {
		if strings.EqualFold(booking.Passengers[i].LastName, lastName) {
			return &booking.Passengers[i]
		}
	}
	return nil
}

// boardingTime is departure minus the boarding lead, wrapping at
// midnight the same way arrival times do.
func boardingTime(departure string) string {
	parts := strings.SplitN(departure, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	total := hour*60 + minute - boardingLeadMinutes
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
