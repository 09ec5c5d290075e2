package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"hotelreserve/internal/domain"
)

const roomsHeader = "roomId,category,pricePerNight"

// RoomFileRepository keeps the room catalog in a comma-delimited text file
// with a header row. The format has no quoting; fields must not contain
// commas. Save rewrites the whole file.
type RoomFileRepository struct {
	path string
}

func NewRoomFileRepository(path string) *RoomFileRepository {
	return &RoomFileRepository{path: path}
}

// Load reads the catalog, seeding the default room set first if the file
// does not exist yet.
func (r *RoomFileRepository) Load(ctx context.Context) ([]domain.Room, error) {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		if err := r.Save(ctx, DefaultRooms()); err != nil {
			return nil, fmt.Errorf("seed rooms: %w", err)
		}
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("load rooms: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	rooms := make([]domain.Room, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue // header or trailing blank
		}
		p := strings.Split(line, ",")
		if len(p) < 3 {
			continue
		}
		price, err := strconv.ParseFloat(p[2], 64)
		if err != nil {
			return nil, fmt.Errorf("load rooms: line %d: %w", i+1, err)
		}
		rooms = append(rooms, domain.Room{
			ID:            p[0],
			Category:      domain.Category(p[1]),
			PricePerNight: price,
		})
	}
	return rooms, nil
}

func (r *RoomFileRepository) Save(_ context.Context, rooms []domain.Room) error {
	var b strings.Builder
	b.WriteString(roomsHeader)
	b.WriteByte('\n')
	for _, rm := range rooms {
		b.WriteString(strings.Join([]string{
			rm.ID,
			string(rm.Category),
			strconv.FormatFloat(rm.PricePerNight, 'f', -1, 64),
		}, ","))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save rooms: %w", err)
	}
	return nil
}
