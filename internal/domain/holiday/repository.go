package holiday

import "context"

// Repository defines read access to the holiday lookup table plus the seed
// upsert used at startup.
type Repository interface {
	// ListBetween returns holidays with date in [from, to], ordered by date.
	ListBetween(ctx context.Context, from, to string) ([]Holiday, error)

	// Seed upserts the static holiday calendar. Existing dates are left as-is.
	Seed(ctx context.Context, holidays []Holiday) error
}
