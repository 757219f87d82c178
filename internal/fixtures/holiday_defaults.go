package fixtures

import (
	"github.com/attendhub/attendhub-backend-go/internal/domain/holiday"
)

// DefaultHolidays2026 is the Philippine holiday calendar for 2026, seeded into
// the holidays table at startup. Based on the official government list.
func DefaultHolidays2026() []holiday.Holiday {
	return []holiday.Holiday{
		{Date: "2026-01-01", Name: "New Year's Day", Type: holiday.TypeRegular},
		{Date: "2026-02-17", Name: "Chinese New Year", Type: holiday.TypeSpecial},
		{Date: "2026-02-25", Name: "EDSA People Power Revolution Anniversary", Type: holiday.TypeSpecial},
		{Date: "2026-04-02", Name: "Maundy Thursday", Type: holiday.TypeRegular},
		{Date: "2026-04-03", Name: "Good Friday", Type: holiday.TypeRegular},
		{Date: "2026-04-04", Name: "Black Saturday", Type: holiday.TypeSpecial},
		{Date: "2026-04-09", Name: "Araw ng Kagitingan (Day of Valor)", Type: holiday.TypeRegular},
		{Date: "2026-05-01", Name: "Labor Day", Type: holiday.TypeRegular},
		{Date: "2026-06-12", Name: "Independence Day", Type: holiday.TypeRegular},
		{Date: "2026-06-16", Name: "Eid al-Adha (Feast of Sacrifice)", Type: holiday.TypeRegular},
		{Date: "2026-08-21", Name: "Ninoy Aquino Day", Type: holiday.TypeSpecial},
		{Date: "2026-08-31", Name: "National Heroes Day", Type: holiday.TypeRegular},
		{Date: "2026-11-01", Name: "All Saints Day", Type: holiday.TypeSpecial},
		{Date: "2026-11-02", Name: "All Souls Day", Type: holiday.TypeSpecial},
		{Date: "2026-11-30", Name: "Bonifacio Day", Type: holiday.TypeRegular},
		{Date: "2026-12-08", Name: "Feast of the Immaculate Conception", Type: holiday.TypeSpecial},
		{Date: "2026-12-24", Name: "Christmas Eve", Type: holiday.TypeSpecial},
		{Date: "2026-12-25", Name: "Christmas Day", Type: holiday.TypeRegular},
		{Date: "2026-12-30", Name: "Rizal Day", Type: holiday.TypeRegular},
		{Date: "2026-12-31", Name: "New Year's Eve", Type: holiday.TypeSpecial},
	}
}
