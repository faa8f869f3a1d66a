package repository

import (
	"context"
	"strings"
	"sync"

	models "github.com/adrianjuliusaluoch/Airline-Booking-System/internal"
)

// MemoryBookingStore keeps created bookings in a process-local map
// keyed by reference. References carry no uniqueness guarantee; a
// colliding reference overwrites the earlier record. Records go in and
// come out as clones, so callers never share memory through the store.
type MemoryBookingStore struct {
	mu    sync.RWMutex
	byRef map[string]*models.Booking
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{byRef: make(map[string]*models.Booking)}
}

func (s *MemoryBookingStore) Save(_ context.Context, booking *models.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byRef[strings.ToUpper(booking.Reference)] = booking.Clone()
	return nil
}

func (s *MemoryBookingStore) ByReference(_ context.Context, reference string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.byRef[strings.ToUpper(reference)]
	if !ok {
		return nil, models.ErrBookingNotFound
	}
	return b.Clone(), nil
}
