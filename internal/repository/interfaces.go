package repository

import (
	"site-security-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ShiftAssignmentRepositoryInterface defines the interface for shift assignment repository operations
type ShiftAssignmentRepositoryInterface interface {
	WithTx(tx *gorm.DB) ShiftAssignmentRepositoryInterface
	Create(shift *models.ShiftAssignment) error
	GetByID(id uuid.UUID) (*models.ShiftAssignment, error)
	Update(shift *models.ShiftAssignment) error
	List(filter ShiftFilter, limit, offset int) ([]models.ShiftAssignment, int64, error)
	LockStaffDate(staffID uuid.UUID, shiftDate string) error
	GetConflictCandidates(staffID uuid.UUID, shiftDate string, excludeID *uuid.UUID) ([]models.ShiftAssignment, error)
	GetByGateAndDate(gateLocation, shiftDate string) ([]models.ShiftAssignment, error)
	ActivateDue(shiftDate, now string) (int64, error)
	CompleteElapsed(shiftDate, now string) (int64, error)
	ExpireOverdueScheduled(shiftDate, now string) (int64, error)
}

// GateRepositoryInterface defines the interface for gate repository operations
type GateRepositoryInterface interface {
	Create(gate *models.Gate) error
	GetByLocation(location string) (*models.Gate, error)
	GetAll() ([]models.Gate, error)
	Exists(location string) (bool, error)
	Delete(location string) error
	Seed(gates []models.Gate) error
}

// StaffMemberRepositoryInterface defines the interface for staff member repository operations
type StaffMemberRepositoryInterface interface {
	Create(staff *models.StaffMember) error
	GetByID(id uuid.UUID) (*models.StaffMember, error)
	GetAll(limit, offset int) ([]models.StaffMember, int64, error)
	GetActive(limit, offset int) ([]models.StaffMember, int64, error)
	Update(staff *models.StaffMember) error
}
