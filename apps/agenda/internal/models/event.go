package models

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"site.ateliermosaique.fr/apps/agenda/pkg/feed"
)

// Event is a validated agenda entry. Date is midnight local time; Title and
// Description are trimmed and non-empty.
type Event struct {
	Date        time.Time
	Title       string
	Description string
}

var datePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseDate parses a strict YYYY-MM-DD value into midnight local time.
// Impossible calendar dates (2024-02-30, month 13) are rejected instead of
// being rolled over into the next month.
func ParseDate(value string) (time.Time, bool) {
	match := datePattern.FindStringSubmatch(value)
	if match == nil {
		return time.Time{}, false
	}

	year, _ := strconv.Atoi(match[1])
	month, _ := strconv.Atoi(match[2])
	day, _ := strconv.Atoi(match[3])

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	if date.Year() != year || date.Month() != time.Month(month) ||
		date.Day() != day {
		return time.Time{}, false
	}

	return date, true
}

type rawFields struct {
	Date        string `json:"date"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// NormalizeEvent validates one raw feed record. A record survives only when
// it is an object whose date parses and whose title and description remain
// non-empty after trimming. Anything else yields no event, never a partial
// one.
func NormalizeEvent(raw feed.RawEvent) (Event, bool) {
	var fields rawFields
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Event{}, false
	}

	date, ok := ParseDate(fields.Date)
	title := strings.TrimSpace(fields.Title)
	description := strings.TrimSpace(fields.Description)

	if !ok || title == "" || description == "" {
		return Event{}, false
	}

	return Event{
		Date:        date,
		Title:       title,
		Description: description,
	}, true
}

// DisplayDate renders the event date the way the site shows it,
// e.g. "7 mars 2024".
func (e Event) DisplayDate() string {
	return monday.Format(e.Date, "2 January 2006", monday.LocaleFrFR)
}
