package testutils

import (
	"fmt"
	"sync/atomic"
	"testing"

	"site-security-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var factorySeq int64

func nextSeq() int64 { return atomic.AddInt64(&factorySeq, 1) }

// FactorySet bundles the entity factories for a test database
type FactorySet struct {
	Staff  *StaffMemberFactory
	Gates  *GateFactory
	Shifts *ShiftAssignmentFactory
}

// NewFactorySet creates factories bound to the given database
func NewFactorySet(db *gorm.DB) *FactorySet {
	return &FactorySet{
		Staff:  &StaffMemberFactory{db: db},
		Gates:  &GateFactory{db: db},
		Shifts: &ShiftAssignmentFactory{db: db},
	}
}

// ------------------------------
// StaffMember factory
// ------------------------------

type StaffMemberFactory struct {
	db *gorm.DB
}

// Build returns an unsaved staff member with unique badge and email
func (f *StaffMemberFactory) Build(overrides ...func(*models.StaffMember)) *models.StaffMember {
	n := nextSeq()
	m := &models.StaffMember{
		FirstName:   "Test",
		LastName:    fmt.Sprintf("Guard%d", n),
		FullName:    fmt.Sprintf("Test Guard%d", n),
		BadgeNumber: fmt.Sprintf("BDG-%04d", n),
		Email:       fmt.Sprintf("guard%d@example.com", n),
		PhoneNumber: "555-0100",
		Role:        models.StaffRoleGuard,
		IsActive:    true,
	}
	for _, o := range overrides {
		o(m)
	}
	return m
}

// Create persists a staff member built from Build plus overrides
func (f *StaffMemberFactory) Create(t *testing.T, overrides ...func(*models.StaffMember)) *models.StaffMember {
	t.Helper()
	m := f.Build(overrides...)
	if err := f.db.Create(m).Error; err != nil {
		t.Fatalf("create staff member: %v", err)
	}
	return m
}

// Inactive marks the staff member as not assignable
func Inactive() func(*models.StaffMember) {
	return func(m *models.StaffMember) { m.IsActive = false }
}

// WithRole sets the staff role
func WithRole(role models.StaffRole) func(*models.StaffMember) {
	return func(m *models.StaffMember) { m.Role = role }
}

// ------------------------------
// Gate factory
// ------------------------------

type GateFactory struct {
	db *gorm.DB
}

// Build returns an unsaved custom gate with a unique location
func (f *GateFactory) Build(overrides ...func(*models.Gate)) *models.Gate {
	n := nextSeq()
	g := &models.Gate{
		Location:    fmt.Sprintf("test_gate_%d", n),
		Description: "Test gate",
		Builtin:     false,
	}
	for _, o := range overrides {
		o(g)
	}
	return g
}

// Create persists a gate built from Build plus overrides
func (f *GateFactory) Create(t *testing.T, overrides ...func(*models.Gate)) *models.Gate {
	t.Helper()
	g := f.Build(overrides...)
	if err := f.db.Create(g).Error; err != nil {
		t.Fatalf("create gate: %v", err)
	}
	return g
}

// WithLocation sets the gate location code
func WithLocation(location string) func(*models.Gate) {
	return func(g *models.Gate) { g.Location = location }
}

// SeedBuiltinGates inserts the builtin catalogue for tests that exercise it
func (f *GateFactory) SeedBuiltinGates(t *testing.T) {
	t.Helper()
	for _, g := range models.BuiltinGates() {
		gate := g
		if err := f.db.Create(&gate).Error; err != nil {
			t.Fatalf("seed builtin gate %s: %v", gate.Location, err)
		}
	}
}

// ------------------------------
// ShiftAssignment factory
// ------------------------------

type ShiftAssignmentFactory struct {
	db *gorm.DB
}

// Build returns an unsaved shift. Callers usually override the staff
// binding, the gate location and the time window.
func (f *ShiftAssignmentFactory) Build(overrides ...func(*models.ShiftAssignment)) *models.ShiftAssignment {
	n := nextSeq()
	sh := &models.ShiftAssignment{
		StaffName:    fmt.Sprintf("Test Guard%d", n),
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "08:00",
		EndTime:      "16:00",
		Status:       models.ShiftStatusScheduled,
	}
	for _, o := range overrides {
		o(sh)
	}
	return sh
}

// Create persists a shift built from Build plus overrides. If no staff
// member was bound via ForStaff a fresh one is provisioned so the foreign
// key holds.
func (f *ShiftAssignmentFactory) Create(t *testing.T, overrides ...func(*models.ShiftAssignment)) *models.ShiftAssignment {
	t.Helper()
	sh := f.Build(overrides...)
	if sh.StaffID == uuid.Nil {
		staff := (&StaffMemberFactory{db: f.db}).Create(t)
		sh.StaffID = staff.ID
		sh.StaffName = staff.FullName
	}
	if err := f.db.Create(sh).Error; err != nil {
		t.Fatalf("create shift assignment: %v", err)
	}
	return sh
}

// ForStaff binds the shift to an existing staff member
func ForStaff(staff *models.StaffMember) func(*models.ShiftAssignment) {
	return func(sh *models.ShiftAssignment) {
		sh.StaffID = staff.ID
		sh.StaffName = staff.FullName
	}
}

// AtGate sets the shift gate location
func AtGate(location string) func(*models.ShiftAssignment) {
	return func(sh *models.ShiftAssignment) { sh.GateLocation = location }
}

// OnDate sets the shift date
func OnDate(date string) func(*models.ShiftAssignment) {
	return func(sh *models.ShiftAssignment) { sh.ShiftDate = date }
}

// Between sets the time window
func Between(start, end string) func(*models.ShiftAssignment) {
	return func(sh *models.ShiftAssignment) {
		sh.StartTime = start
		sh.EndTime = end
	}
}

// WithStatus sets the lifecycle status
func WithStatus(status models.ShiftStatus) func(*models.ShiftAssignment) {
	return func(sh *models.ShiftAssignment) { sh.Status = status }
}
