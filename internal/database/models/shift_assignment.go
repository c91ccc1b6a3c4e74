package models

import (
	"github.com/google/uuid"
)

// DateFormat is the layout for ShiftDate values (site-local calendar date).
const DateFormat = "2006-01-02"

// TimeFormat is the layout for StartTime/EndTime values. Zero-padded HH:MM
// compares lexicographically in chronological order.
const TimeFormat = "15:04"

// ShiftAssignment represents a time-boxed duty assignment of one staff member
// to one gate on one date. EndTime is exclusive; shifts never cross midnight.
type ShiftAssignment struct {
	BaseModel
	StaffID          uuid.UUID   `json:"staff_id" gorm:"type:uuid;not null;index:idx_shifts_staff_date" validate:"required"`
	StaffName        string      `json:"staff_name" gorm:"size:200;not null"`
	GateLocation     string      `json:"gate_location" gorm:"size:50;not null;index" validate:"required,max=50"`
	ShiftDate        string      `json:"shift_date" gorm:"size:10;not null;index:idx_shifts_staff_date" validate:"required"`
	StartTime        string      `json:"start_time" gorm:"size:5;not null" validate:"required"`
	EndTime          string      `json:"end_time" gorm:"size:5;not null" validate:"required"`
	Status           ShiftStatus `json:"status" gorm:"type:varchar(20);not null;default:'scheduled';index"`
	RequiresHandover bool        `json:"requires_handover" gorm:"default:false"`
	HandoverNotes    string      `json:"handover_notes" gorm:"type:text"`

	// Relationships
	StaffMember StaffMember `json:"staff_member,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShiftAssignment
func (ShiftAssignment) TableName() string {
	return "shift_assignments"
}
