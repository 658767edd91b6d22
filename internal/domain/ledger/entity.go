package ledger

// RecordKind distinguishes the two attendance event kinds. The literal
// sheet values are kept as the wire format.
type RecordKind string

const (
	KindCheckIn  RecordKind = "출근"
	KindCheckOut RecordKind = "퇴근"
)

// AttendanceRecord is one immutable row of the attendance log.
// Date and Time are ledger-local civil values, already rendered.
type AttendanceRecord struct {
	Date       string // YYYY-MM-DD
	WorkerName string
	Time       string // HH:MM:SS
	Kind       RecordKind
	Location   string // site address annotation, check-in only
}

// A date qualifies as a work-day only when the worker has at least one
// check-in AND one check-out on it. dayMarks accumulates that per date.
type dayMarks struct {
	checkIn  bool
	checkOut bool
}

func (m dayMarks) qualifies() bool { return m.checkIn && m.checkOut }

// QualifyingDates groups records by date and returns the dates carrying
// both kinds, unsorted. Records of other workers must be filtered out by
// the caller beforehand.
func QualifyingDates(records []AttendanceRecord) []string {
	marks := make(map[string]dayMarks)
	for _, rec := range records {
		if rec.Date == "" {
			continue
		}
		m := marks[rec.Date]
		switch rec.Kind {
		case KindCheckIn:
			m.checkIn = true
		case KindCheckOut:
			m.checkOut = true
		default:
			continue
		}
		marks[rec.Date] = m
	}

	var dates []string
	for date, m := range marks {
		if m.qualifies() {
			dates = append(dates, date)
		}
	}
	return dates
}
