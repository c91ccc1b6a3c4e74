package models

// StaffMember represents a security staff member. Scheduling and coverage
// consume these records read-only; only active staff may be assigned shifts.
type StaffMember struct {
	BaseModel
	FirstName   string    `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName    string    `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	FullName    string    `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	BadgeNumber string    `json:"badge_number" gorm:"size:50;uniqueIndex" validate:"max=50"`
	Email       string    `json:"email" gorm:"size:255;uniqueIndex" validate:"omitempty,email,max=255"`
	PhoneNumber string    `json:"phone_number" gorm:"size:20"`
	Role        StaffRole `json:"role" gorm:"type:varchar(50);not null;default:'guard'" validate:"required"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`

	// Relationships
	ShiftAssignments []ShiftAssignment `json:"shift_assignments,omitempty" gorm:"foreignKey:StaffID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for StaffMember
func (StaffMember) TableName() string {
	return "staff_members"
}
