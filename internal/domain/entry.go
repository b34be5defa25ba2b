package domain

import "time"

// PaymentStatus is the entry-log payment flag, stored as "0" or "1".
type PaymentStatus string

const (
	StatusUnpaid PaymentStatus = "0"
	StatusPaid   PaymentStatus = "1"
)

// Entry represents one parking session in the entry log.
// Entries are created by the gate-side entry logger; this process only
// transitions them from unpaid to paid.
type Entry struct {
	Timestamp time.Time
	Plate     string
	Status    PaymentStatus
}

// Open reports whether the entry still awaits payment.
func (e *Entry) Open() bool {
	return e.Status == StatusUnpaid
}

// Entry timestamps are written by the external entry logger with the host's
// local clock, in ISO-8601 without a zone. Fractional seconds show up when
// the logger includes them.
var entryTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	time.RFC3339Nano,
	time.RFC3339,
}

// ParseEntryTime parses an entry-log timestamp.
func ParseEntryTime(s string) (time.Time, error) {
	var err error
	for _, layout := range entryTimeLayouts {
		var t time.Time
		if t, err = time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// FormatEntryTime renders a timestamp the way the entry logger does.
func FormatEntryTime(t time.Time) string {
	return t.Format("2006-01-02T15:04:05")
}
