package types

// OverdueUnit selects how elapsed time since submission is measured
type OverdueUnit string

const (
	OverdueUnitHours        OverdueUnit = "hours"
	OverdueUnitCalendarDays OverdueUnit = "calendar-days"
)

// String returns the string representation of the unit
func (u OverdueUnit) String() string {
	return string(u)
}

// IsValid checks if the unit is one of the supported values
func (u OverdueUnit) IsValid() bool {
	switch u {
	case OverdueUnitHours, OverdueUnitCalendarDays:
		return true
	default:
		return false
	}
}

// TutorStatus is the outcome of checking one tutor's dashboard
type TutorStatus string

const (
	TutorStatusChecked             TutorStatus = "checked"
	TutorStatusNoItems             TutorStatus = "no_items"
	TutorStatusImpersonationFailed TutorStatus = "impersonation_failed"
	TutorStatusDashboardFailed     TutorStatus = "dashboard_failed"
)

// String returns the string representation of the status
func (s TutorStatus) String() string {
	return string(s)
}
