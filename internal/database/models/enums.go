package models

// ShiftStatus defines the lifecycle states of a shift assignment
type ShiftStatus string

const (
	ShiftStatusScheduled ShiftStatus = "scheduled"
	ShiftStatusActive    ShiftStatus = "active"
	ShiftStatusCompleted ShiftStatus = "completed"
	ShiftStatusMissed    ShiftStatus = "missed"
	ShiftStatusCancelled ShiftStatus = "cancelled"
)

// IsValid checks if the ShiftStatus is valid
func (s ShiftStatus) IsValid() bool {
	switch s {
	case ShiftStatusScheduled, ShiftStatusActive, ShiftStatusCompleted, ShiftStatusMissed, ShiftStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether the status allows no further transitions
func (s ShiftStatus) IsTerminal() bool {
	switch s {
	case ShiftStatusCompleted, ShiftStatusMissed, ShiftStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo checks whether a transition from s to target is legal.
// scheduled -> active -> completed is the on-path flow; scheduled -> cancelled
// and active -> missed are operator-recorded exceptions.
func (s ShiftStatus) CanTransitionTo(target ShiftStatus) bool {
	switch s {
	case ShiftStatusScheduled:
		return target == ShiftStatusActive || target == ShiftStatusCancelled
	case ShiftStatusActive:
		return target == ShiftStatusCompleted || target == ShiftStatusMissed
	}
	return false
}

// CoverageStatus defines the derived coverage state of a gate
type CoverageStatus string

const (
	CoverageStatusVacant    CoverageStatus = "vacant"
	CoverageStatusScheduled CoverageStatus = "scheduled"
	CoverageStatusActive    CoverageStatus = "active"
)

// StaffRole represents the role of a security staff member
type StaffRole string

const (
	StaffRoleGuard      StaffRole = "guard"
	StaffRoleSupervisor StaffRole = "supervisor"
	StaffRoleManager    StaffRole = "manager"
)

// IsValid checks if the StaffRole is valid
func (r StaffRole) IsValid() bool {
	switch r {
	case StaffRoleGuard, StaffRoleSupervisor, StaffRoleManager:
		return true
	}
	return false
}
