package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"hotelreserve/internal/config"
	"hotelreserve/internal/database"
	"hotelreserve/internal/repository"
)

// Writes the default room catalog into the configured store and makes sure
// the reservation store exists. Safe to run repeatedly.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	rooms := repository.DefaultRooms()

	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal("DB connection failed:", err)
		}
		if err := repository.Migrate(db); err != nil {
			log.Fatal("migrate failed:", err)
		}
		if err := repository.NewRoomDBRepository(db).Save(ctx, rooms); err != nil {
			log.Fatal("seed rooms failed:", err)
		}
	} else {
		if err := repository.NewRoomFileRepository(cfg.RoomsFile()).Save(ctx, rooms); err != nil {
			log.Fatal("seed rooms failed:", err)
		}
		// creates the bookings file with its header when missing
		if _, err := repository.NewReservationFileRepository(cfg.ReservationsFile()).Load(ctx); err != nil {
			log.Fatal("init reservation store failed:", err)
		}
	}

	log.Printf("catalog seeded rooms=%d", len(rooms))
}
