package holiday

import "time"

type Type string

const (
	TypeRegular Type = "regular"
	TypeSpecial Type = "special"
)

// Holiday is a static lookup row; the calendar only ever reads this table.
type Holiday struct {
	ID        string
	Date      string // YYYY-MM-DD
	Name      string
	Type      Type
	CreatedAt time.Time
}
