package event

// Company event type values.
const (
	TypeMeeting   = "meeting"
	TypeTraining  = "training"
	TypeHoliday   = "holiday"
	TypeGathering = "gathering"
)

// CompanyEvent is broadcast reference data: not tied to any employee, no
// lifecycle beyond create and list.
type CompanyEvent struct {
	ID          int64
	Title       string
	Description *string
	Date        string // "YYYY-MM-DD"
	Time        *string
	Location    *string
	Type        string
}
