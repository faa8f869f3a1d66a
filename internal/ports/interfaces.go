package ports

import (
	"context"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

type FlightService interface {
	Search(ctx context.Context, sessionID string, req *models.SearchRequest) (*models.SearchResults, error)
	Status(ctx context.Context, flightNumber string) (models.FlightStatus, error)
	SeatMap(ctx context.Context, aircraft string, class models.TravelClass) (*models.SeatMap, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, sessionID string, req *models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, reference, lastName string) (*models.Booking, error)
	CheckIn(ctx context.Context, req *models.CheckInRequest) (*models.BoardingPass, error)
}

// BookingStore is the registry of created bookings. Lives for the
// process; there is no durable persistence behind it.
type BookingStore interface {
	Save(ctx context.Context, booking *models.Booking) error
	ByReference(ctx context.Context, reference string) (*models.Booking, error)
}

// SessionStore holds per-session funnel state keyed by session id.
// Implementations: in-process memory, Redis with TTL.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
	Put(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, id string) error
	Close() error
}

// SearchCache keeps recent search responses stable for a short TTL.
type SearchCache interface {
	Get(ctx context.Context, req *models.SearchRequest) (*models.SearchResults, bool)
	Set(ctx context.Context, req *models.SearchRequest, results *models.SearchResults) error
	Close() error
}
