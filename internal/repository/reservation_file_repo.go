package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"hotelreserve/internal/domain"
)

const reservationsHeader = "reservationId,customerName,roomId,category,checkIn,checkOut,nights,totalCost,status,paymentStatus,createdAt"

// ReservationFileRepository persists reservations as comma-delimited rows
// under a header. Save has full-overwrite semantics: the whole list replaces
// the file on every call. Commas inside customer names are replaced with
// spaces on write since the format has no quoting.
type ReservationFileRepository struct {
	path string
}

func NewReservationFileRepository(path string) *ReservationFileRepository {
	return &ReservationFileRepository{path: path}
}

// Load reads all reservations in file order. A missing file is created with
// just the header row and yields an empty list.
func (r *ReservationFileRepository) Load(ctx context.Context) ([]domain.Reservation, error) {
	if _, err := os.Stat(r.path); errors.Is(err, fs.ErrNotExist) {
		if err := r.Save(ctx, nil); err != nil {
			return nil, err
		}
		return []domain.Reservation{}, nil
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("load reservations: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	list := make([]domain.Reservation, 0, len(lines))
	for i, line := range lines {
		if i == 0 || strings.TrimSpace(line) == "" {
			continue
		}
		res, err := parseReservationRow(line)
		if err != nil {
			return nil, fmt.Errorf("load reservations: line %d: %w", i+1, err)
		}
		list = append(list, res)
	}
	return list, nil
}

func (r *ReservationFileRepository) Save(_ context.Context, list []domain.Reservation) error {
	var b strings.Builder
	b.WriteString(reservationsHeader)
	b.WriteByte('\n')
	for _, res := range list {
		b.WriteString(formatReservationRow(res))
		b.WriteByte('\n')
	}
	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("save reservations: %w", err)
	}
	return nil
}

func parseReservationRow(line string) (domain.Reservation, error) {
	p := strings.Split(line, ",")
	if len(p) < 11 {
		return domain.Reservation{}, fmt.Errorf("expected 11 fields, got %d", len(p))
	}

	checkIn, err := time.ParseInLocation(domain.DateLayout, p[4], time.UTC)
	if err != nil {
		return domain.Reservation{}, err
	}
	checkOut, err := time.ParseInLocation(domain.DateLayout, p[5], time.UTC)
	if err != nil {
		return domain.Reservation{}, err
	}
	nights, err := strconv.ParseInt(p[6], 10, 64)
	if err != nil {
		return domain.Reservation{}, err
	}
	total, err := strconv.ParseFloat(p[7], 64)
	if err != nil {
		return domain.Reservation{}, err
	}
	createdAt, err := time.ParseInLocation(domain.DateTimeLayout, p[10], time.UTC)
	if err != nil {
		return domain.Reservation{}, err
	}

	return domain.Reservation{
		ID:            p[0],
		CustomerName:  p[1],
		RoomID:        p[2],
		Category:      domain.Category(p[3]),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        nights,
		TotalCost:     total,
		Status:        domain.ReservationStatus(p[8]),
		PaymentStatus: domain.PaymentStatus(p[9]),
		CreatedAt:     createdAt,
	}, nil
}

func formatReservationRow(res domain.Reservation) string {
	return strings.Join([]string{
		res.ID,
		stripDelimiter(res.CustomerName),
		res.RoomID,
		string(res.Category),
		res.CheckIn.Format(domain.DateLayout),
		res.CheckOut.Format(domain.DateLayout),
		strconv.FormatInt(res.Nights, 10),
		strconv.FormatFloat(res.TotalCost, 'f', -1, 64),
		string(res.Status),
		string(res.PaymentStatus),
		res.CreatedAt.Format(domain.DateTimeLayout),
	}, ",")
}

func stripDelimiter(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}
