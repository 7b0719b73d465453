package models

import (
	"strings"
	"time"
)

// AttendeeColumns is the column set of every attendee table. Order and names
// are fixed for the lifetime of the store; the on-disk CSV and both export
// formats follow it.
var AttendeeColumns = []string{"event_type", "timestamp", "date", "name", "company", "photo_consent"}

const (
	ConsentYes = "yes"
	ConsentNo  = "no"
)

// Attendee is one sign-up row. EventType is copied from the owning event at
// submission time and not re-validated afterwards.
type Attendee struct {
	EventType    string
	Timestamp    string
	Date         string
	Name         string
	Company      string
	PhotoConsent string
}

// NewAttendee builds a row for a submission made at now. Name and company are
// trimmed; validation of required fields happens before this.
func NewAttendee(eventType, name, company, consent string, now time.Time) Attendee {
	return Attendee{
		EventType:    eventType,
		Timestamp:    now.Format(CreatedAtFormat),
		Date:         now.Format("02.01.2006"),
		Name:         strings.TrimSpace(name),
		Company:      strings.TrimSpace(company),
		PhotoConsent: consent,
	}
}

func ValidConsent(s string) bool {
	return s == ConsentYes || s == ConsentNo
}

// Row returns the attendee as a CSV record in AttendeeColumns order.
func (a Attendee) Row() []string {
	return []string{a.EventType, a.Timestamp, a.Date, a.Name, a.Company, a.PhotoConsent}
}

// AttendeeFromRow is the inverse of Row. Short records are padded so a table
// written by an older build still loads.
func AttendeeFromRow(rec []string) Attendee {
	for len(rec) < len(AttendeeColumns) {
		rec = append(rec, "")
	}
	return Attendee{
		EventType:    rec[0],
		Timestamp:    rec[1],
		Date:         rec[2],
		Name:         rec[3],
		Company:      rec[4],
		PhotoConsent: rec[5],
	}
}
