package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotelreserve/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateReservationID means a save tried to persist two reservations
// under the same id.
var ErrDuplicateReservationID = errors.New("duplicate reservation id")

type reservationModel struct {
	ID            string    `gorm:"column:reservation_id;primaryKey"`
	CustomerName  string    `gorm:"column:customer_name"`
	RoomID        string    `gorm:"column:room_id"`
	Category      string    `gorm:"column:category"`
	CheckIn       time.Time `gorm:"column:check_in"`
	CheckOut      time.Time `gorm:"column:check_out"`
	Nights        int64     `gorm:"column:nights"`
	TotalCost     float64   `gorm:"column:total_cost"`
	Status        string    `gorm:"column:status"`
	PaymentStatus string    `gorm:"column:payment_status"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	Position      int       `gorm:"column:position"`
}

func (reservationModel) TableName() string { return "reservations" }

func toDomainReservation(m reservationModel) domain.Reservation {
	return domain.Reservation{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		RoomID:        m.RoomID,
		Category:      domain.Category(m.Category),
		CheckIn:       m.CheckIn.UTC(),
		CheckOut:      m.CheckOut.UTC(),
		Nights:        m.Nights,
		TotalCost:     m.TotalCost,
		Status:        domain.ReservationStatus(m.Status),
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		CreatedAt:     m.CreatedAt.UTC(),
	}
}

func toReservationModel(res domain.Reservation, pos int) reservationModel {
	return reservationModel{
		ID:            res.ID,
		CustomerName:  res.CustomerName,
		RoomID:        res.RoomID,
		Category:      string(res.Category),
		CheckIn:       res.CheckIn,
		CheckOut:      res.CheckOut,
		Nights:        res.Nights,
		TotalCost:     res.TotalCost,
		Status:        string(res.Status),
		PaymentStatus: string(res.PaymentStatus),
		CreatedAt:     res.CreatedAt,
		Position:      pos,
	}
}

// ReservationDBRepository is the database-backed reservation store with the
// same full-overwrite contract as the file store: Save replaces the whole
// table inside one transaction.
type ReservationDBRepository struct {
	db *gorm.DB
}

func NewReservationDBRepository(db *gorm.DB) *ReservationDBRepository {
	return &ReservationDBRepository{db: db}
}

func (r *ReservationDBRepository) Load(ctx context.Context) ([]domain.Reservation, error) {
	var models []reservationModel
	tx := r.db.WithContext(ctx).Order("position").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	list := make([]domain.Reservation, 0, len(models))
	for _, m := range models {
		list = append(list, toDomainReservation(m))
	}
	return list, nil
}

func (r *ReservationDBRepository) Save(ctx context.Context, list []domain.Reservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM reservations").Error; err != nil {
			return err
		}
		for i, res := range list {
			m := toReservationModel(res, i)
			if err := tx.Create(&m).Error; err != nil {
				var pgErr *pgconn.PgError
				if errors.As(err, &pgErr) && pgErr.Code == "23505" {
					return fmt.Errorf("%w: %s", ErrDuplicateReservationID, res.ID)
				}
				return err
			}
		}
		return nil
	})
}
