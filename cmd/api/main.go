package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hotelreserve/internal/config"
	"hotelreserve/internal/database"
	"hotelreserve/internal/middleware"
	"hotelreserve/internal/modules/auth"
	"hotelreserve/internal/modules/booking"
	"hotelreserve/internal/modules/payment"
	jwtsvc "hotelreserve/internal/pkg/jwt"
	"hotelreserve/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	catalogStore, reservationStore, err := openStores(cfg)
	if err != nil {
		log.Fatal(err)
	}

	gateway := payment.NewSimulator(nil, log.Printf)

	bookingService, err := booking.NewService(context.Background(), catalogStore, reservationStore, gateway, nil)
	if err != nil {
		log.Fatal(err)
	}
	bookingHandler := booking.NewHandler(bookingService)

	staffHash, err := bcrypt.GenerateFromPassword([]byte(cfg.StaffPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	authService := auth.NewService(cfg.StaffEmail, staffHash, j)
	authHandler := auth.NewHandler(authService)

	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.CORS())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)

		// staff only
		staff := v1.Group("/")
		staff.Use(middleware.Auth(j))
		{
			bookingHandler.RegisterStaffRoutes(staff)
		}
	}

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

func openStores(cfg *config.Config) (booking.CatalogStore, booking.ReservationStore, error) {
	if cfg.DatabaseURL != "" {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if err := repository.Migrate(db); err != nil {
			return nil, nil, err
		}
		return repository.NewRoomDBRepository(db), repository.NewReservationDBRepository(db), nil
	}
	return repository.NewRoomFileRepository(cfg.RoomsFile()),
		repository.NewReservationFileRepository(cfg.ReservationsFile()), nil
}
