package models

// CreatedAtFormat is the timestamp layout stored in event metadata. Second
// resolution, lexicographically sortable.
const CreatedAtFormat = "2006-01-02T15:04:05"

// EventTypes is the fixed set of event categories an organizer can pick from.
var EventTypes = []string{
	"Brandschutzhelfer-Seminar",
	"Feuerlöschtraining",
}

// Event is one configured sign-up session. Events are created once and never
// updated or deleted; only their attendee table can be reset.
type Event struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	EventType string `json:"event_type"`
	CreatedAt string `json:"created_at"`
}

// IsZero reports whether the event carries no stored metadata, i.e. it came
// back from a soft miss on an unknown id.
func (e Event) IsZero() bool {
	return e.Title == "" && e.Date == "" && e.Location == "" && e.EventType == "" && e.CreatedAt == ""
}

func ValidEventType(s string) bool {
	for _, t := range EventTypes {
		if s == t {
			return true
		}
	}
	return false
}
