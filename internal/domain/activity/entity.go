package activity

import "time"

// Activity is one time-bounded schedule entry for an employee. Values are
// immutable once constructed; edits produce a new Activity.
type Activity struct {
	ID          int64
	EmployeeID  int64
	Type        string
	Interval    Interval
	Description string
	CreatedAt   time.Time
}

// Well-known activity types. The set is open: unrecognized types are kept
// as-is and fall back to the default presentation style.
const (
	TypeVacation   = "Vacation"
	TypeSickLeave  = "Sick Leave"
	TypeRemoteWork = "Remote Work"
	TypeTraining   = "Training"
	TypeMeeting    = "Meeting"
	TypeProject    = "Project"
	TypeOther      = "Other"
)

// KnownTypes lists the types offered by the submission form, in display
// order.
var KnownTypes = []string{
	TypeVacation,
	TypeSickLeave,
	TypeRemoteWork,
	TypeTraining,
	TypeMeeting,
	TypeProject,
	TypeOther,
}
