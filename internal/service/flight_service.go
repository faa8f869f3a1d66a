package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/catalog"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/flights"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/ports"
	"github.com/adrianjuliusaluoch/Airline-Booking-System/internal/seatmap"
)

type flightService struct {
	catalog  *catalog.Catalog
	gen      *flights.Generator
	seats    *seatmap.Generator
	cache    ports.SearchCache
	sessions ports.SessionStore
	log      *logrus.Logger
}

func NewFlightService(
	c *catalog.Catalog,
	gen *flights.Generator,
	seats *seatmap.Generator,
	cache ports.SearchCache,
	sessions ports.SessionStore,
	log *logrus.Logger,
) *flightService {
	return &flightService{
		catalog:  c,
		gen:      gen,
		seats:    seats,
		cache:    cache,
		sessions: sessions,
		log:      log,
	}
}

// Search produces outbound (and optionally return) options and records
// the search on the caller's session. Unknown cities yield an empty
// result set; request validation upstream reports them to the user.
func (s *flightService) Search(ctx context.Context, sessionID string, req *models.SearchRequest) (*models.SearchResults, error) {
	if req.TotalPassengers() == 0 {
		req.Adults = 1
	}
	if req.TravelClass == "" {
		req.TravelClass = models.ClassEconomy
	}
	if req.Origin == req.Destination {
		return nil, models.ErrSameCity
	}
	if !s.catalog.KnownCity(req.Origin) || !s.catalog.KnownCity(req.Destination) {
		return &models.SearchResults{Outbound: []models.Flight{}}, nil
	}

	if results, ok := s.cache.Get(ctx, req); ok {
		s.log.WithFields(logrus.Fields{
			"origin":      req.Origin,
			"destination": req.Destination,
			"cache_hit":   true,
		}).Info("flight search")
		s.recordSearch(ctx, sessionID, req, results)
		return results, nil
	}

	results := &models.SearchResults{
		Outbound: s.gen.Generate(req.Origin, req.Destination, req.DepartureDate),
	}
	if req.ReturnDate != "" {
		results.Return = s.gen.Generate(req.Destination, req.Origin, req.ReturnDate)
	}

	if err := s.cache.Set(ctx, req, results); err != nil {
		s.log.WithError(err).Warn("search cache write failed")
	}
	s.recordSearch(ctx, sessionID, req, results)

	s.log.WithFields(logrus.Fields{
		"origin":      req.Origin,
		"destination": req.Destination,
		"outbound":    len(results.Outbound),
		"return":      len(results.Return),
	}).Info("flight search")
	return results, nil
}

func (s *flightService) recordSearch(ctx context.Context, sessionID string, req *models.SearchRequest, results *models.SearchResults) {
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

	sess.SearchParams = req
	sess.SearchResults = results
	if err := s.sessions.Put(ctx, sess); err != nil {
		s.log.WithError(err).Warn("session write failed")
	}
}

// Status synthesizes live status for a flight number.
func (s *flightService) Status(_ context.Context, flightNumber string) (models.FlightStatus, error) {
	return s.gen.Status(flightNumber), nil
}

// SeatMap returns the grid for an aircraft and cabin, or an explicit
// not-found error for anything outside the fleet tables.
func (s *flightService) SeatMap(_ context.Context, aircraft string, class models.TravelClass) (*models.SeatMap, error) {
	return s.seats.Generate(aircraft, class)
}
