package booking

import (
	"context"

	"hotelreserve/internal/domain"
)

// CatalogStore supplies the room catalog. The catalog is immutable after
// load; booking never writes it back.
type CatalogStore interface {
	Load(ctx context.Context) ([]domain.Room, error)
}

// ReservationStore is the durable side of the reservation list. Save has
// full-overwrite semantics and runs synchronously after every mutation.
type ReservationStore interface {
	Load(ctx context.Context) ([]domain.Reservation, error)
	Save(ctx context.Context, list []domain.Reservation) error
}

// PaymentGateway is the charge collaborator. Booking only consumes the
// boolean outcome.
type PaymentGateway interface {
	Attempt(ctx context.Context, cardNumber, cvv string, amount float64) bool
}
