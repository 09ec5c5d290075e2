package repository

import (
	"context"

	"hotelreserve/internal/domain"

	"gorm.io/gorm"
)

type roomModel struct {
	ID            string  `gorm:"column:room_id;primaryKey"`
	Category      string  `gorm:"column:category"`
	PricePerNight float64 `gorm:"column:price_per_night"`
	Position      int     `gorm:"column:position"`
}

func (roomModel) TableName() string { return "rooms" }

// RoomDBRepository is the database-backed catalog store. It keeps the same
// load/save-everything contract as the file store; Position preserves
// catalog order across round trips.
type RoomDBRepository struct {
	db *gorm.DB
}

func NewRoomDBRepository(db *gorm.DB) *RoomDBRepository {
	return &RoomDBRepository{db: db}
}

// Migrate creates the rooms and reservations tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&roomModel{}, &reservationModel{})
}

// Load returns the catalog in seeded order. An empty table is seeded with
// the default room set first.
func (r *RoomDBRepository) Load(ctx context.Context) ([]domain.Room, error) {
	var cnt int64
	if tx := r.db.WithContext(ctx).Model(&roomModel{}).Count(&cnt); tx.Error != nil {
		return nil, tx.Error
	}
	if cnt == 0 {
		if err := r.Save(ctx, DefaultRooms()); err != nil {
			return nil, err
		}
	}

	var models []roomModel
	tx := r.db.WithContext(ctx).Order("position").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	rooms := make([]domain.Room, 0, len(models))
	for _, m := range models {
		rooms = append(rooms, domain.Room{
			ID:            m.ID,
			Category:      domain.Category(m.Category),
			PricePerNight: m.PricePerNight,
		})
	}
	return rooms, nil
}

func (r *RoomDBRepository) Save(ctx context.Context, rooms []domain.Room) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM rooms").Error; err != nil {
			return err
		}
		for i, rm := range rooms {
			m := roomModel{
				ID:            rm.ID,
				Category:      string(rm.Category),
				PricePerNight: rm.PricePerNight,
				Position:      i,
			}
			if err := tx.Create(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
