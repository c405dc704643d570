package dashboard

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"

	"github.com/servidz/console/internal/domain/collection"
)

// TrendOf classifies a growth percentage.
func TrendOf(growth float64) Trend {
	switch {
	case growth > 0:
		return TrendUp
	case growth < 0:
		return TrendDown
	default:
		return TrendFlat
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n float64) string {
	return humanize.Comma(int64(math.Round(n)))
}

// FormatMoney renders n as dollars with thousands separators.
func FormatMoney(n float64) string {
	return "$" + humanize.CommafWithDigits(n, 2)
}

// FormatGrowth renders a signed percentage, e.g. "+12.5%".
func FormatGrowth(g float64) string {
	if g > 0 {
		return fmt.Sprintf("+%s%%", humanize.Ftoa(g))
	}
	return humanize.Ftoa(g) + "%"
}

// Cards builds the four headline cards from a.
func Cards(a *Analytics) []Card {
	m := a.Analytics
	return []Card{
		{
			Title:  "Total Users",
			Value:  FormatCount(float64(a.TotalUsers)),
			Growth: FormatGrowth(float64(m.Users.Growth)),
			Trend:  TrendOf(float64(m.Users.Growth)),
			Note:   fmt.Sprintf("+%s today", FormatCount(float64(m.Users.Today))),
		},
		{
			Title:  "Total Taskers",
			Value:  FormatCount(float64(a.TotalTaskers)),
			Growth: FormatGrowth(float64(m.Taskers.Growth)),
			Trend:  TrendOf(float64(m.Taskers.Growth)),
			Note:   fmt.Sprintf("+%s today", FormatCount(float64(m.Taskers.Today))),
		},
		{
			Title:  "Today's Bookings",
			Value:  FormatCount(float64(a.TodaysBookings)),
			Growth: FormatGrowth(float64(m.Bookings.Growth)),
			Trend:  TrendOf(float64(m.Bookings.Growth)),
			Note:   "Yesterday: " + FormatCount(float64(m.Bookings.Yesterday)),
		},
		{
			Title:  "Today's Earnings",
			Value:  FormatMoney(float64(a.TodaysEarnings)),
			Growth: FormatGrowth(float64(m.Earnings.Growth)),
			Trend:  TrendOf(float64(m.Earnings.Growth)),
			Note:   "Yesterday: " + FormatMoney(float64(m.Earnings.Yesterday)),
		},
	}
}

// ToActivity normalizes a raw activity feed record.
func ToActivity(rec collection.Record) Activity {
	date := collection.NotAvailable
	if t, ok := rec.Date("date", "createdAt"); ok {
		date = collection.FormatDate(t)
	}
	return Activity{
		ID:       rec.FirstString("id", "_id"),
		Activity: rec.FirstString("activity", "description"),
		Type:     rec.String("type"),
		Status:   rec.String("status"),
		Date:     date,
	}
}
