package domain

import "time"

const DateLayout = "2006-01-02"

// DayCapacity is one calendar date of campsite capacity. Remaining is mutated
// only through the availability ledger; Version backs optimistic writes.
type DayCapacity struct {
	ID        int       `json:"-"`
	Date      time.Time `json:"date"`
	Remaining int       `json:"remaining"`
	Total     int       `json:"total"`
	Version   int       `json:"-"`
}

func (d DayCapacity) Bookable() bool {
	return d.Remaining > 0 && d.Total > 0
}

// DateRange is an inclusive calendar range, From <= To.
type DateRange struct {
	From time.Time
	To   time.Time
}

func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.From) && !d.After(r.To)
}

func (r DateRange) String() string {
	return r.From.Format(DateLayout) + ".." + r.To.Format(DateLayout)
}

// Day truncates t to a UTC calendar date.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func DaysBetween(from, to time.Time) int {
	return int(Day(to).Sub(Day(from)).Hours() / 24)
}
