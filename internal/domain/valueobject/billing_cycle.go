// Package valueobject contains domain value objects for the Finance Dashboard system.
package valueobject

import "time"

// invoiceHour fixes invoice dates at noon so later serialization cannot shift
// the calendar day across timezones.
const invoiceHour = 12

// CalculateInvoiceDate maps a purchase date to the due date of the invoice
// period the charge belongs to, given the card's closing and due days.
//
// A purchase on or after the closing day rolls into the next statement cycle.
// When the due day is numerically smaller than the closing day, the payment
// necessarily falls in the calendar month after the statement month.
//
// Closing and due days past the length of the target month are taken as-is:
// the constructed date rolls into the following month under normal calendar
// arithmetic. Day ranges are not validated here; callers are responsible for
// passing values in [1, 31].
func CalculateInvoiceDate(purchaseDate time.Time, closingDay, dueDay int) time.Time {
	year, month, day := purchaseDate.Date()

	if day >= closingDay {
		month++
	}

	if dueDay < closingDay {
		month++
	}

	// time.Date normalizes month and day overflow, rolling the year past
	// December and short months forward.
	return time.Date(year, month, dueDay, invoiceHour, 0, 0, 0, time.UTC)
}

// NormalizeToNoon pins a date to 12:00 UTC, discarding the original clock and
// zone. Stored transaction dates go through this so the calendar day survives
// round-trips through clients in any timezone.
func NormalizeToNoon(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, invoiceHour, 0, 0, 0, time.UTC)
}

// AdvanceMonths moves a date forward by the given number of whole calendar
// months, clamping the day-of-month to the last day of shorter months so a
// due day never drifts forward (Jan 31 + 1 month = Feb 28/29).
func AdvanceMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day, hour, min, sec, t.Nanosecond(), t.Location())
}

// lastDayOfMonth returns the number of days in t's month.
func lastDayOfMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
