package repository

import "hotelreserve/internal/domain"

// DefaultRooms is the catalog seeded on first run: three Standard, three
// Deluxe and two Suite rooms with fixed ids and nightly prices.
func DefaultRooms() []domain.Room {
	return []domain.Room{
		{ID: "S101", Category: domain.CategoryStandard, PricePerNight: 2500},
		{ID: "S102", Category: domain.CategoryStandard, PricePerNight: 2500},
		{ID: "S103", Category: domain.CategoryStandard, PricePerNight: 2400},
		{ID: "D201", Category: domain.CategoryDeluxe, PricePerNight: 4000},
		{ID: "D202", Category: domain.CategoryDeluxe, PricePerNight: 4200},
		{ID: "D203", Category: domain.CategoryDeluxe, PricePerNight: 4100},
		{ID: "U301", Category: domain.CategorySuite, PricePerNight: 7000},
		{ID: "U302", Category: domain.CategorySuite, PricePerNight: 7200},
	}
}
