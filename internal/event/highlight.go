package event

import (
	"sort"
	"time"

	"github.com/royalhouse/fellowship-backend/internal/content"
)

// Highlight labels shown on event cards
const (
	labelToday    = "Today"
	labelTomorrow = "Tomorrow"
)

// dateLayout is the stored event date format, calendar date only.
const dateLayout = "2006-01-02"

// parseEventDate reads the stored date in local time. The zero time flags an
// unparsable date; such events never classify as today or tomorrow.
func parseEventDate(date string) time.Time {
	t, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsToday reports whether the event date falls on the same calendar day as now.
func IsToday(date string, now time.Time) bool {
	d := parseEventDate(date)
	return !d.IsZero() && startOfDay(d).Equal(startOfDay(now))
}

// IsTomorrow reports whether the event date is exactly one day after now.
func IsTomorrow(date string, now time.Time) bool {
	d := parseEventDate(date)
	return !d.IsZero() && startOfDay(d).Equal(startOfDay(now).AddDate(0, 0, 1))
}

// DateLabel renders the card badge: "Today", "Tomorrow", or the formatted
// date like "Monday, Jan 2".
func DateLabel(date string, now time.Time) string {
	switch {
	case IsToday(date, now):
		return labelToday
	case IsTomorrow(date, now):
		return labelTomorrow
	}
	d := parseEventDate(date)
	if d.IsZero() {
		return date
	}
	return d.Format("Monday, Jan 2")
}

// UpcomingEvent is an event decorated for the public listing.
type UpcomingEvent struct {
	content.Event
	DateLabel   string `json:"date_label"`
	IsHighlight bool   `json:"is_highlight"`
}

// UpcomingSchedule is the public events payload: section heading plus the
// decorated, date-ascending list.
type UpcomingSchedule struct {
	Heading string          `json:"heading"`
	Events  []UpcomingEvent `json:"events"`
}

// BuildSchedule drops past events (anything before the start of today),
// sorts the rest soonest-first, and flags today/tomorrow entries. The
// heading switches to "Happening Soon" whenever a highlight exists.
func BuildSchedule(events []content.Event, now time.Time) UpcomingSchedule {
	today := startOfDay(now)

	upcoming := make([]UpcomingEvent, 0, len(events))
	for _, ev := range events {
		d := parseEventDate(ev.Date)
		if d.IsZero() || d.Before(today) {
			continue
		}
		upcoming = append(upcoming, UpcomingEvent{
			Event:       ev,
			DateLabel:   DateLabel(ev.Date, now),
			IsHighlight: IsToday(ev.Date, now) || IsTomorrow(ev.Date, now),
		})
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date < upcoming[j].Date
	})

	heading := "Upcoming Events"
	for _, ev := range upcoming {
		if ev.IsHighlight {
			heading = "Happening Soon"
			break
		}
	}

	return UpcomingSchedule{Heading: heading, Events: upcoming}
}
