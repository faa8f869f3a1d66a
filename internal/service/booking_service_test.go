package service_test

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/random"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/repository"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/service"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/session"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func testFlight() models.Flight {
	return models.Flight{
		FlightNumber:  "KQ310",
		Origin:        "Nairobi",
		Destination:   "London",
		DepartureDate: "2025-07-10",
		DepartureTime: "10:45",
		ArrivalTime:   "18:25",
		Prices: map[models.TravelClass]int{
			models.ClassEconomy:  500,
			models.ClassBusiness: 1250,
		},
	}
}

func validBookingRequest() *models.BookingRequest {
	return &models.BookingRequest{
		Flights: []models.Flight{testFlight()},
		Passengers: []models.Passenger{
			{
				FirstName:      "John",
				LastName:       "Doe",
				DateOfBirth:    "1990-01-01",
				Nationality:    "Kenyan",
				PassportNumber: "A1234567",
				Seat:           "12A",
			},
			{
				FirstName:      "Jane",
				LastName:       "Doe",
				DateOfBirth:    "1992-05-05",
				Nationality:    "Kenyan",
				PassportNumber: "B7654321",
			},
		},
		Contact: models.Contact{Email: "john.doe@email.com", Phone: "+254700123456"},
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("successful creation", func(t *testing.T) {
		store := repository.NewMemoryBookingStore()
		sessions := session.NewMemoryStore()
		svc := service.NewBookingService(store, sessions, random.New(1), testLogger())

		sid := uuid.NewString()
		booking, err := svc.CreateBooking(ctx, sid, validBookingRequest())
		require.NoError(t, err)
		require.NotNil(t, booking)

		assert.Regexp(t, `^KQ[A-Z0-9]{6}$`, booking.Reference)
		assert.NotEqual(t, uuid.Nil, booking.ID)
		assert.Equal(t, models.StatusConfirmed, booking.Status)
		assert.Equal(t, "Paid", booking.PaymentStatus)
		assert.False(t, booking.CreatedAt.IsZero())
		assert.Equal(t, 1000, booking.TotalPrice)

		require.Len(t, booking.Tickets, 2)
		for _, ticket := range booking.Tickets {
			assert.Regexp(t, `^629-\d{10}$`, ticket.TicketNumber)
			assert.Equal(t, models.ClassEconomy, ticket.Class)
		}
		assert.Equal(t, "John Doe", booking.Tickets[0].PassengerName)
		assert.Equal(t, "12A", booking.Tickets[0].Seat)
		assert.Equal(t, "Not assigned", booking.Tickets[1].Seat)

		stored, err := store.ByReference(ctx, booking.Reference)
		require.NoError(t, err)
		assert.Equal(t, booking.Reference, stored.Reference)

		sess, err := sessions.Get(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, booking.Reference, sess.BookingReference)
	})

	t.Run("extras included in total", func(t *testing.T) {
		store := repository.NewMemoryBookingStore()
		svc := service.NewBookingService(store, session.NewMemoryStore(), random.New(1), testLogger())

		req := validBookingRequest()
		req.Extras = models.Extras{Insurance: true, ExtraBaggageKg: 5, SeatSurcharges: 25}

		booking, err := svc.CreateBooking(ctx, "", req)
		require.NoError(t, err)
		// fares 1000 + insurance 50 + baggage 75 + seats 25
		assert.Equal(t, 1150, booking.TotalPrice)
	})

	t.Run("invalid passengers rejected", func(t *testing.T) {
		store := repository.NewMemoryBookingStore()
		svc := service.NewBookingService(store, session.NewMemoryStore(), random.New(1), testLogger())

		req := validBookingRequest()
		req.Passengers[1].PassportNumber = "B12"

		booking, err := svc.CreateBooking(ctx, "", req)
		assert.Nil(t, booking)

		var pve *models.PassengerValidationError
		require.ErrorAs(t, err, &pve)
		require.Len(t, pve.Failures, 1)
		assert.Equal(t, "Passenger 2: Passport number must be at least 6 characters", pve.Failures[0])
	})
}

func TestGetBooking(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryBookingStore()
	svc := service.NewBookingService(store, session.NewMemoryStore(), random.New(1), testLogger())

	created, err := svc.CreateBooking(ctx, "", validBookingRequest())
	require.NoError(t, err)

	t.Run("found with matching last name", func(t *testing.T) {
		booking, err := svc.GetBooking(ctx, created.Reference, "doe")
		require.NoError(t, err)
		assert.Equal(t, created.Reference, booking.Reference)
	})

	t.Run("last name mismatch", func(t *testing.T) {
		_, err := svc.GetBooking(ctx, created.Reference, "Smith")
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})

	t.Run("unknown reference", func(t *testing.T) {
		_, err := svc.GetBooking(ctx, "KQZZZZZZ", "Doe")
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryBookingStore()
	svc := service.NewBookingService(store, session.NewMemoryStore(), random.New(1), testLogger())

	created, err := svc.CreateBooking(ctx, "", validBookingRequest())
	require.NoError(t, err)

	t.Run("issues boarding pass", func(t *testing.T) {
		pass, err := svc.CheckIn(ctx, &models.CheckInRequest{
			Reference:      created.Reference,
			LastName:       "Doe",
			ExtraBaggageKg: 10,
		})
		require.NoError(t, err)

		assert.Equal(t, created.Reference, pass.Reference)
		assert.Equal(t, "John Doe", pass.PassengerName)
		assert.Equal(t, "KQ310", pass.FlightNumber)
		assert.Equal(t, "Nairobi - London", pass.Route)
		assert.Equal(t, "10:45", pass.DepartureTime)
		assert.Equal(t, "10:15", pass.BoardingTime)
		assert.Regexp(t, `^A\d+$`, pass.Gate)
		assert.Contains(t, []string{"1A", "1B", "1C"}, pass.Terminal)
		assert.Equal(t, "12A", pass.Seat)
		assert.Equal(t, "23kg", pass.BaggageAllowance)
		assert.Equal(t, 150, pass.ExtraBaggageCost)

		stored, err := store.ByReference(ctx, created.Reference)
		require.NoError(t, err)
		assert.True(t, stored.Passengers[0].CheckedIn)
	})

	t.Run("seat preference replaces the selection", func(t *testing.T) {
		pass, err := svc.CheckIn(ctx, &models.CheckInRequest{
			Reference:      created.Reference,
			LastName:       "Doe",
			SeatPreference: "14C",
		})
		require.NoError(t, err)
		assert.Equal(t, "14C", pass.Seat)

		stored, err := store.ByReference(ctx, created.Reference)
		require.NoError(t, err)
		assert.Equal(t, "14C", stored.Passengers[0].Seat)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.CheckIn(ctx, &models.CheckInRequest{
			Reference: "KQAAAAAA",
			LastName:  "Doe",
		})
		assert.ErrorIs(t, err, models.ErrBookingNotFound)
	})
}

func TestCheckInConcurrentWithLookup(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryBookingStore()
	svc := service.NewBookingService(store, session.NewMemoryStore(), random.New(1), testLogger())

	created, err := svc.CreateBooking(ctx, "", validBookingRequest())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = svc.CheckIn(ctx, &models.CheckInRequest{
				Reference: created.Reference,
				LastName:  "Doe",
			})
		}()
		go func() {
			defer wg.Done()
			if b, err := svc.GetBooking(ctx, created.Reference, "Doe"); err == nil {
				_, _ = json.Marshal(b)
			}
		}()
	}
	wg.Wait()

	stored, err := store.ByReference(ctx, created.Reference)
	require.NoError(t, err)
	assert.True(t, stored.Passengers[0].CheckedIn)
}
