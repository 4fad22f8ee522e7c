package collection

// Status is the persisted shelf status. The set is closed: any other
// value is dropped at load time rather than rendered.
type Status string

// The three persisted statuses, in shelf display order.
const (
	StatusWantToRead Status = "WANT_TO_READ"
	StatusReading    Status = "READING"
	StatusRead       Status = "READ"
)

var displayNames = map[Status]string{
	StatusWantToRead: "Want to Read",
	StatusReading:    "Currently Reading",
	StatusRead:       "Read",
}

// Statuses returns the three shelves in display order.
func Statuses() []Status {
	return []Status{StatusWantToRead, StatusReading, StatusRead}
}

// Valid reports whether s is one of the three recognized statuses.
func (s Status) Valid() bool {
	_, ok := displayNames[s]
	return ok
}

// Display returns the user-facing shelf name for the status.
// Unknown statuses return their raw value; callers must not persist it.
func (s Status) Display() string {
	if name, ok := displayNames[s]; ok {
		return name
	}
	return string(s)
}

// StatusFromDisplay maps a shelf display name back to its persisted form.
func StatusFromDisplay(name string) (Status, bool) {
	for s, d := range displayNames {
		if d == name {
			return s, true
		}
	}
	return "", false
}
