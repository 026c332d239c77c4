package prescribed

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCurrency renders amount in whole pounds with thousands separators,
// e.g. "£450,000" or "-£1,200".
func FormatCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "£0"
	}
	whole := math.Round(amount)
	if whole < 0 {
		return "-£" + humanize.Commaf(-whole)
	}
	return "£" + humanize.Commaf(math.Abs(whole))
}

// FormatAmount renders amount in pounds, keeping pence when present so that
// trace steps are exact. Non-finite amounts render as "£0".
func FormatAmount(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "£0"
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	if amount == math.Trunc(amount) {
		return sign + "£" + humanize.Commaf(amount)
	}
	return sign + "£" + humanize.FormatFloat("#,###.##", amount)
}

// FormatDate renders date as "06 Apr 2020".
func FormatDate(date time.Time) string {
	return date.Format("02 Jan 2006")
}
