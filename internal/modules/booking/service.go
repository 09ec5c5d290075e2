package booking

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"hotelreserve/internal/domain"
)

// BookRequest carries everything the booking workflow needs. Dates are UTC
// midnights covering the half-open stay [CheckIn, CheckOut).
type BookRequest struct {
	CustomerName string
	Category     string
	CheckIn      time.Time
	CheckOut     time.Time
	CardNumber   string
	CVV          string
}

// Service owns the in-memory room catalog and reservation list and is their
// only mutator. Every mutating operation persists the whole reservation
// list through the store before returning.
//
// A single mutex serializes all operations so that search-then-book is an
// atomic critical section; without it two concurrent bookings could both see
// the same room as free and double-book it.
type Service struct {
	store   ReservationStore
	gateway PaymentGateway
	rng     *rand.Rand

	mu           sync.Mutex
	rooms        []domain.Room
	reservations []domain.Reservation
}

// NewService loads the catalog and reservation list from the injected
// stores. rng drives reservation id generation; pass a seeded source in
// tests, nil for a time-seeded one.
func NewService(ctx context.Context, catalog CatalogStore, store ReservationStore, gateway PaymentGateway, rng *rand.Rand) (*Service, error) {
	rooms, err := catalog.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	reservations, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{
		store:        store,
		gateway:      gateway,
		rng:          rng,
		rooms:        rooms,
		reservations: reservations,
	}, nil
}

// Rooms returns a copy of the catalog in load order.
func (s *Service) Rooms(ctx context.Context) []domain.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// IsAvailable reports whether the room is free over [checkIn, checkOut).
// Only CONFIRMED reservations block a room.
func (s *Service) IsAvailable(ctx context.Context, roomID string, checkIn, checkOut time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isAvailableLocked(roomID, checkIn, checkOut)
}

func (s *Service) isAvailableLocked(roomID string, checkIn, checkOut time.Time) bool {
	for _, r := range s.reservations {
		if r.Status != domain.StatusConfirmed {
			continue
		}
		if r.RoomID != roomID {
			continue
		}
		if datesOverlap(checkIn, checkOut, r.CheckIn, r.CheckOut) {
			return false
		}
	}
	return true
}

// Half-open intervals: [aStart, aEnd) and [bStart, bEnd) overlap iff
// aStart < bEnd && bStart < aEnd, so back-to-back stays never collide.
func datesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Search lists available rooms in catalog order. An empty or unrecognized
// category means no category filter. An empty result is not an error.
func (s *Service) Search(ctx context.Context, category string, checkIn, checkOut time.Time) ([]domain.Room, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchLocked(category, checkIn, checkOut), nil
}

func (s *Service) searchLocked(category string, checkIn, checkOut time.Time) []domain.Room {
	cat, filtered := domain.ParseCategory(category)
	result := make([]domain.Room, 0)
	for _, room := range s.rooms {
		if filtered && room.Category != cat {
			continue
		}
		if !s.isAvailableLocked(room.ID, checkIn, checkOut) {
			continue
		}
		result = append(result, room)
	}
	return result
}

// Book runs the whole workflow: search, take the first available room,
// attempt payment, persist. Failed payments still produce a persisted
// CANCELLED/FAILED reservation for audit; only ErrNotAvailable leaves the
// store untouched.
func (s *Service) Book(ctx context.Context, req BookRequest) (*domain.Reservation, error) {
	if strings.TrimSpace(req.CustomerName) == "" || !req.CheckOut.After(req.CheckIn) {
		return nil, ErrValidation
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	available := s.searchLocked(req.Category, req.CheckIn, req.CheckOut)
	if len(available) == 0 {
		return nil, ErrNotAvailable
	}

	// First available room. No ranking: the front-end may present choices,
	// the workflow itself stays deterministic.
	room := available[0]

	nights := int64(req.CheckOut.Sub(req.CheckIn).Hours() / 24)
	total := float64(nights) * room.PricePerNight

	paid := s.gateway.Attempt(ctx, req.CardNumber, req.CVV, total)
	status, payStatus := domain.StatusConfirmed, domain.PaymentPaid
	if !paid {
		status, payStatus = domain.StatusCancelled, domain.PaymentFailed
	}

	res := domain.Reservation{
		ID:            s.newReservationIDLocked(),
		CustomerName:  strings.TrimSpace(req.CustomerName),
		RoomID:        room.ID,
		Category:      room.Category,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Nights:        nights,
		TotalCost:     total,
		Status:        status,
		PaymentStatus: payStatus,
		CreatedAt:     time.Now().UTC().Truncate(time.Second),
	}

	s.reservations = append(s.reservations, res)
	if err := s.store.Save(ctx, s.reservations); err != nil {
		return nil, fmt.Errorf("persist reservations: %w", err)
	}

	out := res
	return &out, nil
}

// Cancel moves a reservation to CANCELLED and refunds a paid one. A second
// cancel on the same id is a guarded no-op returning ErrAlreadyCancelled.
// Dates, room, customer and cost are never touched.
func (s *Service) Cancel(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(reservationID)
	if i < 0 {
		return nil, ErrNotFound
	}
	r := &s.reservations[i]
	if r.Status == domain.StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	r.Status = domain.StatusCancelled
	if r.PaymentStatus == domain.PaymentPaid {
		r.PaymentStatus = domain.PaymentRefunded
	}

	if err := s.store.Save(ctx, s.reservations); err != nil {
		return nil, fmt.Errorf("persist reservations: %w", err)
	}

	out := *r
	return &out, nil
}

// Find looks a reservation up by id, ignoring case.
func (s *Service) Find(ctx context.Context, reservationID string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.findLocked(reservationID)
	if i < 0 {
		return nil, ErrNotFound
	}
	out := s.reservations[i]
	return &out, nil
}

// ListAll returns a defensive copy of all reservations in insertion order.
func (s *Service) ListAll(ctx context.Context) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Reservation, len(s.reservations))
	copy(out, s.reservations)
	return out
}

func (s *Service) findLocked(reservationID string) int {
	for i, r := range s.reservations {
		if strings.EqualFold(r.ID, reservationID) {
			return i
		}
	}
	return -1
}

// Ids are a letter prefix plus six digits. Drawing again on collision keeps
// them unique against everything already in the store instead of trusting
// randomness alone.
func (s *Service) newReservationIDLocked() string {
	for {
		id := fmt.Sprintf("R%d", 100000+s.rng.Intn(900000))
		if s.findLocked(id) < 0 {
			return id
		}
	}
}
