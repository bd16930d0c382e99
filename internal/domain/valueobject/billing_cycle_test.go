package valueobject

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

func TestCalculateInvoiceDate(t *testing.T) {
	t.Run("purchase before closing day stays in the current cycle", func(t *testing.T) {
		// Closes on 25, due on 5: due day < closing day pushes the due
		// month one past the statement month.
		got := CalculateInvoiceDate(date(2024, time.January, 10), 25, 5)
		want := date(2024, time.February, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("purchase on or after closing day rolls to the next cycle", func(t *testing.T) {
		got := CalculateInvoiceDate(date(2024, time.January, 28), 25, 5)
		want := date(2024, time.March, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("purchase exactly on closing day rolls to the next cycle", func(t *testing.T) {
		got := CalculateInvoiceDate(date(2024, time.January, 25), 25, 5)
		want := date(2024, time.March, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("due day on or after closing day stays in the statement month", func(t *testing.T) {
		// Closes on 5, due on 15: the due date fits in the same month.
		got := CalculateInvoiceDate(date(2024, time.March, 2), 5, 15)
		want := date(2024, time.March, 15)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("year rolls forward past December", func(t *testing.T) {
		got := CalculateInvoiceDate(date(2024, time.December, 27), 25, 5)
		want := date(2025, time.February, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("due day past the month length rolls into the following month", func(t *testing.T) {
		// February has no day 30; the known simplification lets the date
		// roll forward instead of clamping.
		got := CalculateInvoiceDate(date(2024, time.February, 1), 10, 30)
		want := date(2024, time.March, 1)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("result is normalized to noon UTC", func(t *testing.T) {
		purchase := time.Date(2024, time.January, 10, 23, 45, 0, 0, time.UTC)
		got := CalculateInvoiceDate(purchase, 25, 5)
		if got.Hour() != 12 || got.Minute() != 0 {
			t.Errorf("expected noon, got %v", got)
		}
	})

	t.Run("deterministic for repeated calls", func(t *testing.T) {
		purchase := date(2024, time.June, 14)
		first := CalculateInvoiceDate(purchase, 20, 28)
		second := CalculateInvoiceDate(purchase, 20, 28)
		if !first.Equal(second) {
			t.Errorf("expected identical results, got %v and %v", first, second)
		}
	})
}

func TestAdvanceMonths(t *testing.T) {
	t.Run("keeps the day of month across regular months", func(t *testing.T) {
		got := AdvanceMonths(date(2024, time.February, 5), 3)
		want := date(2024, time.May, 5)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("clamps to the last day of shorter months", func(t *testing.T) {
		got := AdvanceMonths(date(2024, time.January, 31), 1)
		want := date(2024, time.February, 29) // 2024 is a leap year
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("rolls the year past December", func(t *testing.T) {
		got := AdvanceMonths(date(2024, time.November, 10), 2)
		want := date(2025, time.January, 10)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
