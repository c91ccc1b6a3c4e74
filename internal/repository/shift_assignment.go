package repository

import (
	"site-security-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ShiftFilter narrows List queries. Zero values mean "no filter".
type ShiftFilter struct {
	ShiftDate    string
	GateLocation string
	StaffID      *uuid.UUID
	Status       models.ShiftStatus
}

// ShiftAssignmentRepository handles database operations for shift assignments
type ShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewShiftAssignmentRepository creates a new shift assignment repository
func NewShiftAssignmentRepository(db *gorm.DB) *ShiftAssignmentRepository {
	return &ShiftAssignmentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction so conflict
// re-validation and the write share one critical section.
func (r *ShiftAssignmentRepository) WithTx(tx *gorm.DB) ShiftAssignmentRepositoryInterface {
	return &ShiftAssignmentRepository{db: tx}
}

// Create creates a new shift assignment
func (r *ShiftAssignmentRepository) Create(shift *models.ShiftAssignment) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift assignment by ID
func (r *ShiftAssignmentRepository) GetByID(id uuid.UUID) (*models.ShiftAssignment, error) {
	var shift models.ShiftAssignment
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// Update updates a shift assignment
func (r *ShiftAssignmentRepository) Update(shift *models.ShiftAssignment) error {
	return r.db.Save(shift).Error
}

// List retrieves shift assignments matching the filter, newest date first
func (r *ShiftAssignmentRepository) List(filter ShiftFilter, limit, offset int) ([]models.ShiftAssignment, int64, error) {
	var shifts []models.ShiftAssignment
	var total int64

	query := r.db.Model(&models.ShiftAssignment{})
	if filter.ShiftDate != "" {
		query = query.Where("shift_date = ?", filter.ShiftDate)
	}
	if filter.GateLocation != "" {
		query = query.Where("gate_location = ?", filter.GateLocation)
	}
	if filter.StaffID != nil {
		query = query.Where("staff_id = ?", *filter.StaffID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("shift_date DESC, start_time ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}

// LockStaffDate serializes writers for one staff member and date via a
// transaction-scoped advisory lock. Must be called on a repository bound to a
// transaction; the lock is released automatically at commit or rollback.
func (r *ShiftAssignmentRepository) LockStaffDate(staffID uuid.UUID, shiftDate string) error {
	return r.db.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", staffID.String()+":"+shiftDate).Error
}

// GetConflictCandidates retrieves the non-cancelled shifts of one staff member
// on one date, excluding excludeID when editing an existing shift.
func (r *ShiftAssignmentRepository) GetConflictCandidates(staffID uuid.UUID, shiftDate string, excludeID *uuid.UUID) ([]models.ShiftAssignment, error) {
	var shifts []models.ShiftAssignment
	query := r.db.Where("staff_id = ? AND shift_date = ? AND status != ?", staffID, shiftDate, models.ShiftStatusCancelled)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	err := query.Find(&shifts).Error
	return shifts, err
}

// GetByGateAndDate retrieves all shifts for a gate on a date, earliest first
func (r *ShiftAssignmentRepository) GetByGateAndDate(gateLocation, shiftDate string) ([]models.ShiftAssignment, error) {
	var shifts []models.ShiftAssignment
	err := r.db.Where("gate_location = ? AND shift_date = ?", gateLocation, shiftDate).
		Order("start_time ASC").Find(&shifts).Error
	return shifts, err
}

// ActivateDue promotes scheduled shifts whose window contains now to active
func (r *ShiftAssignmentRepository) ActivateDue(shiftDate, now string) (int64, error) {
	res := r.db.Model(&models.ShiftAssignment{}).
		Where("status = ? AND shift_date = ? AND start_time <= ? AND end_time > ?",
			models.ShiftStatusScheduled, shiftDate, now, now).
		Update("status", models.ShiftStatusActive)
	return res.RowsAffected, res.Error
}

// CompleteElapsed closes active shifts whose end time has passed
func (r *ShiftAssignmentRepository) CompleteElapsed(shiftDate, now string) (int64, error) {
	res := r.db.Model(&models.ShiftAssignment{}).
		Where("status = ? AND (shift_date < ? OR (shift_date = ? AND end_time <= ?))",
			models.ShiftStatusActive, shiftDate, shiftDate, now).
		Update("status", models.ShiftStatusCompleted)
	return res.RowsAffected, res.Error
}

// ExpireOverdueScheduled closes scheduled shifts whose whole window elapsed
// between sync ticks, so they never matched ActivateDue.
func (r *ShiftAssignmentRepository) ExpireOverdueScheduled(shiftDate, now string) (int64, error) {
	res := r.db.Model(&models.ShiftAssignment{}).
		Where("status = ? AND (shift_date < ? OR (shift_date = ? AND end_time <= ?))",
			models.ShiftStatusScheduled, shiftDate, shiftDate, now).
		Update("status", models.ShiftStatusCompleted)
	return res.RowsAffected, res.Error
}
