package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelreserve/internal/domain"
)

func sampleReservations() []domain.Reservation {
	return []domain.Reservation{
		{
			ID:            "R123456",
			CustomerName:  "Ravi Kumar",
			RoomID:        "S101",
			Category:      domain.CategoryStandard,
			CheckIn:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			Nights:        3,
			TotalCost:     7500,
			Status:        domain.StatusConfirmed,
			PaymentStatus: domain.PaymentPaid,
			CreatedAt:     time.Date(2024, 2, 20, 15, 4, 5, 0, time.UTC),
		},
		{
			ID:            "R654321",
			CustomerName:  "Meena Pillai",
			RoomID:        "U301",
			Category:      domain.CategorySuite,
			CheckIn:       time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
			CheckOut:      time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC),
			Nights:        1,
			TotalCost:     7000.5,
			Status:        domain.StatusCancelled,
			PaymentStatus: domain.PaymentRefunded,
			CreatedAt:     time.Date(2024, 4, 2, 9, 30, 0, 0, time.UTC),
		},
	}
}

func TestReservationFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	repo := NewReservationFileRepository(path)
	ctx := context.Background()

	want := sampleReservations()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReservationFileRepository_CreatesFileWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	repo := NewReservationFileRepository(path)

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, reservationsHeader+"\n", string(data))
}

func TestReservationFileRepository_StripsCommasFromNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	repo := NewReservationFileRepository(path)
	ctx := context.Background()

	res := sampleReservations()[0]
	res.CustomerName = "Kumar, Ravi"
	require.NoError(t, repo.Save(ctx, []domain.Reservation{res}))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kumar  Ravi", got[0].CustomerName)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Len(t, strings.Split(lines[1], ","), 11, "row must keep exactly 11 fields")
}

func TestReservationFileRepository_OverwritesOnSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bookings.csv")
	repo := NewReservationFileRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, sampleReservations()))
	require.NoError(t, repo.Save(ctx, sampleReservations()[:1]))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRoomFileRepository_SeedsDefaultCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.csv")
	repo := NewRoomFileRepository(path)

	rooms, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultRooms(), rooms)

	// seeded file is reread, not reseeded
	again, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, rooms, again)
}

func TestRoomFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.csv")
	repo := NewRoomFileRepository(path)
	ctx := context.Background()

	want := []domain.Room{
		{ID: "X900", Category: domain.CategoryDeluxe, PricePerNight: 4321.25},
	}
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
