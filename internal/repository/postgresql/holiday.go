package postgresql

import (
	"context"
	"fmt"

	"github.com/attendhub/attendhub-backend-go/internal/domain/holiday"
	"github.com/attendhub/attendhub-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepository{db: db}
}

// ListBetween implements holiday.Repository.
func (r *holidayRepository) ListBetween(ctx context.Context, from, to string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, holiday_date, name, holiday_type, created_at
		FROM holidays
		WHERE holiday_date >= $1 AND holiday_date <= $2
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}

	return holidays, nil
}

// Seed implements holiday.Repository. Existing dates are left untouched so
// manual edits survive restarts.
func (r *holidayRepository) Seed(ctx context.Context, holidays []holiday.Holiday) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holidays (holiday_date, name, holiday_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (holiday_date) DO NOTHING
	`

	for _, h := range holidays {
		if _, err := q.Exec(ctx, query, h.Date, h.Name, h.Type); err != nil {
			return fmt.Errorf("failed to seed holiday %s: %w", h.Date, err)
		}
	}

	return nil
}
