package domain

import "time"

// DateLayout is the calendar-date format bookings carry.
const DateLayout = "2006-01-02"

type Booking struct {
	ID       string   `json:"id"`
	ClubID   string   `json:"clubId"`
	Date     string   `json:"date"`
	Time     string   `json:"time"`
	Duration int      `json:"duration"`
	Court    int      `json:"court"`
	Players  []string `json:"players"`
}

// Durations the confirmation flow offers, in minutes.
var AllowedDurations = []int{60, 90, 120}

func ValidDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}

	return false
}

// Partition splits bookings into upcoming and past relative to now.
// The split is a derived view - nothing on the record marks a booking
// as past, it ages out as the clock advances. A booking counts as
// upcoming while midnight of its date is not before now; one with an
// unparseable date counts as past. Every booking lands in exactly one
// of the two halves.
func Partition(bookings []Booking, now time.Time) (upcoming, past []Booking) {
	upcoming = []Booking{}
	past = []Booking{}

	for _, b := range bookings {
		date, err := time.Parse(DateLayout, b.Date)
		if err == nil && !date.Before(now) {
			upcoming = append(upcoming, b)
		} else {
			past = append(past, b)
		}
	}

	return upcoming, past
}
