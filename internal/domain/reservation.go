package domain

import "time"

// Wire layouts for the flat-file store and the HTTP layer. Check-in and
// check-out dates are UTC midnights; CreatedAt keeps wall-clock seconds.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

type ReservationStatus string

const (
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
	PaymentFailed   PaymentStatus = "FAILED"
)

// Reservation covers the half-open interval [CheckIn, CheckOut): the
// check-out day of one stay may be the check-in day of the next.
// Category and TotalCost are frozen copies taken from the room at booking
// time; cancellation never rewrites them.
type Reservation struct {
	ID            string            `json:"reservation_id"`
	CustomerName  string            `json:"customer_name"`
	RoomID        string            `json:"room_id"`
	Category      Category          `json:"category"`
	CheckIn       time.Time         `json:"check_in"`
	CheckOut      time.Time         `json:"check_out"`
	Nights        int64             `json:"nights"`
	TotalCost     float64           `json:"total_cost"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	CreatedAt     time.Time         `json:"created_at"`
}
