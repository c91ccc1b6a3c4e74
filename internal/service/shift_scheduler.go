package service

import (
	"errors"
	"fmt"
	"time"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/logger"
	"site-security-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageInvalidator drops cached coverage views after a shift mutation so
// the next read recomputes from the updated store.
type CoverageInvalidator interface {
	InvalidateCoverage()
}

// ShiftSchedulerService orchestrates create/update/cancel of shift
// assignments, enforcing the conflict rule and the status lifecycle.
type ShiftSchedulerService struct {
	db          *gorm.DB
	shiftRepo   repository.ShiftAssignmentRepositoryInterface
	staffRepo   repository.StaffMemberRepositoryInterface
	gateRepo    repository.GateRepositoryInterface
	detector    *ConflictDetector
	validator   *validator.Validate
	invalidator CoverageInvalidator
	log         *logger.Logger
}

// NewShiftSchedulerService creates a new shift scheduler service
func NewShiftSchedulerService(
	db *gorm.DB,
	shiftRepo repository.ShiftAssignmentRepositoryInterface,
	staffRepo repository.StaffMemberRepositoryInterface,
	gateRepo repository.GateRepositoryInterface,
	validator *validator.Validate,
	invalidator CoverageInvalidator,
) *ShiftSchedulerService {
	return &ShiftSchedulerService{
		db:          db,
		shiftRepo:   shiftRepo,
		staffRepo:   staffRepo,
		gateRepo:    gateRepo,
		detector:    NewConflictDetector(shiftRepo),
		validator:   validator,
		invalidator: invalidator,
		log:         logger.New().WithField("service", "shift_scheduler"),
	}
}

// CreateShiftRequest represents the request to create a shift assignment
type CreateShiftRequest struct {
	StaffID          uuid.UUID `json:"staff_id" validate:"required"`
	GateLocation     string    `json:"gate_location" validate:"required,max=50"`
	ShiftDate        string    `json:"shift_date" validate:"required"`
	StartTime        string    `json:"start_time" validate:"required"`
	EndTime          string    `json:"end_time" validate:"required"`
	RequiresHandover bool      `json:"requires_handover"`
	HandoverNotes    string    `json:"handover_notes,omitempty"`
}

// UpdateShiftRequest represents a partial update of a shift assignment.
// Only set fields are re-validated and applied.
type UpdateShiftRequest struct {
	StaffID          *uuid.UUID `json:"staff_id,omitempty"`
	GateLocation     *string    `json:"gate_location,omitempty"`
	ShiftDate        *string    `json:"shift_date,omitempty"`
	StartTime        *string    `json:"start_time,omitempty"`
	EndTime          *string    `json:"end_time,omitempty"`
	RequiresHandover *bool      `json:"requires_handover,omitempty"`
	HandoverNotes    *string    `json:"handover_notes,omitempty"`
}

// ShiftResponse represents the response for shift assignment operations
type ShiftResponse struct {
	ID               uuid.UUID          `json:"id"`
	StaffID          uuid.UUID          `json:"staff_id"`
	StaffName        string             `json:"staff_name"`
	GateLocation     string             `json:"gate_location"`
	ShiftDate        string             `json:"shift_date"`
	StartTime        string             `json:"start_time"`
	EndTime          string             `json:"end_time"`
	Status           models.ShiftStatus `json:"status"`
	RequiresHandover bool               `json:"requires_handover"`
	HandoverNotes    string             `json:"handover_notes,omitempty"`
	CreatedAt        string             `json:"created_at"`
	UpdatedAt        string             `json:"updated_at"`
}

// ShiftListResponse represents a paginated list of shift assignments
type ShiftListResponse struct {
	Shifts   []ShiftResponse `json:"shifts"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// ShiftListFilter narrows List results
type ShiftListFilter struct {
	ShiftDate    string
	GateLocation string
	StaffID      *uuid.UUID
	Status       string
}

// Create validates a shift proposal and persists it in scheduled state.
// The insert transaction takes an advisory lock on the staff/date pair before
// the conflict check, so two operators racing to book the same staff member
// serialize and the second sees the first's row.
func (s *ShiftSchedulerService) Create(req *CreateShiftRequest) (*ShiftResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if err := validateWindow(req.ShiftDate, req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	known, err := s.gateRepo.Exists(req.GateLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to verify gate: %w", err)
	}
	if !known {
		return nil, apperrors.NewValidationError("gate_location", "unknown gate location")
	}

	// Staff activity is checked before any conflict evaluation.
	staff, err := s.staffRepo.GetByID(req.StaffID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidationError("staff_id", "unknown staff member")
		}
		return nil, fmt.Errorf("failed to verify staff member: %w", err)
	}
	if !staff.IsActive {
		return nil, apperrors.NewValidationError("staff_id", "staff member is not active")
	}

	shift := &models.ShiftAssignment{
		StaffID:          req.StaffID,
		StaffName:        staff.FullName,
		GateLocation:     req.GateLocation,
		ShiftDate:        req.ShiftDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Status:           models.ShiftStatusScheduled,
		RequiresHandover: req.RequiresHandover,
		HandoverNotes:    req.HandoverNotes,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.shiftRepo.WithTx(tx)
		if err := txRepo.LockStaffDate(req.StaffID, req.ShiftDate); err != nil {
			return fmt.Errorf("failed to lock schedule: %w", err)
		}
		conflict, existing, err := s.detector.WithTx(tx).HasConflict(req.ShiftDate, req.StartTime, req.EndTime, req.StaffID, nil)
		if err != nil {
			return err
		}
		if conflict {
			return apperrors.NewConflictError(staff.FullName, existing.ShiftDate, existing.StartTime+"-"+existing.EndTime)
		}
		return txRepo.Create(shift)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"shift_id": shift.ID,
		"staff_id": shift.StaffID,
		"gate":     shift.GateLocation,
		"date":     shift.ShiftDate,
	}).Info("shift created")

	s.invalidate()
	return toShiftResponse(shift), nil
}

// GetByID retrieves a shift assignment by ID
func (s *ShiftSchedulerService) GetByID(id uuid.UUID) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(shift), nil
}

// List retrieves shift assignments matching the filter
func (s *ShiftSchedulerService) List(filter ShiftListFilter, page, pageSize int) (*ShiftListResponse, error) {
	if filter.Status != "" && !models.ShiftStatus(filter.Status).IsValid() {
		return nil, apperrors.NewValidationError("status", apperrors.ErrInvalidStatusFilter.Error())
	}
	if filter.ShiftDate != "" {
		if _, err := time.Parse(models.DateFormat, filter.ShiftDate); err != nil {
			return nil, apperrors.NewValidationError("date", "date must be formatted YYYY-MM-DD")
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	shifts, total, err := s.shiftRepo.List(repository.ShiftFilter{
		ShiftDate:    filter.ShiftDate,
		GateLocation: filter.GateLocation,
		StaffID:      filter.StaffID,
		Status:       models.ShiftStatus(filter.Status),
	}, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		responses[i] = *toShiftResponse(&shifts[i])
	}

	return &ShiftListResponse{
		Shifts:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update re-validates touched fields and applies a partial update. The
// conflict re-check excludes the shift's own id so a window edit never
// conflicts with itself.
func (s *ShiftSchedulerService) Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}

	if shift.Status.IsTerminal() {
		return nil, apperrors.NewInvalidStateError("shift assignment", string(shift.Status), "updated")
	}

	if req.StaffID != nil && *req.StaffID != shift.StaffID {
		staff, err := s.staffRepo.GetByID(*req.StaffID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.NewValidationError("staff_id", "unknown staff member")
			}
			return nil, fmt.Errorf("failed to verify staff member: %w", err)
		}
		if !staff.IsActive {
			return nil, apperrors.NewValidationError("staff_id", "staff member is not active")
		}
		shift.StaffID = staff.ID
		shift.StaffName = staff.FullName
	}

	if req.GateLocation != nil {
		known, err := s.gateRepo.Exists(*req.GateLocation)
		if err != nil {
			return nil, fmt.Errorf("failed to verify gate: %w", err)
		}
		if !known {
			return nil, apperrors.NewValidationError("gate_location", "unknown gate location")
		}
		shift.GateLocation = *req.GateLocation
	}

	if req.ShiftDate != nil {
		shift.ShiftDate = *req.ShiftDate
	}
	if req.StartTime != nil {
		shift.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		shift.EndTime = *req.EndTime
	}
	if req.RequiresHandover != nil {
		shift.RequiresHandover = *req.RequiresHandover
	}
	if req.HandoverNotes != nil {
		shift.HandoverNotes = *req.HandoverNotes
	}

	if err := validateWindow(shift.ShiftDate, shift.StartTime, shift.EndTime); err != nil {
		return nil, err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.shiftRepo.WithTx(tx)
		if err := txRepo.LockStaffDate(shift.StaffID, shift.ShiftDate); err != nil {
			return fmt.Errorf("failed to lock schedule: %w", err)
		}
		conflict, existing, err := s.detector.WithTx(tx).HasConflict(shift.ShiftDate, shift.StartTime, shift.EndTime, shift.StaffID, &shift.ID)
		if err != nil {
			return err
		}
		if conflict {
			return apperrors.NewConflictError(shift.StaffName, existing.ShiftDate, existing.StartTime+"-"+existing.EndTime)
		}
		return txRepo.Update(shift)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate()
	return toShiftResponse(shift), nil
}

// Cancel moves a scheduled shift to cancelled. History is retained rather
// than removed once any activity has occurred, so only scheduled shifts may
// be cancelled.
func (s *ShiftSchedulerService) Cancel(id uuid.UUID) error {
	return s.transition(id, models.ShiftStatusCancelled)
}

// MarkMissed records an operator-observed no-show on an active shift
func (s *ShiftSchedulerService) MarkMissed(id uuid.UUID) error {
	return s.transition(id, models.ShiftStatusMissed)
}

func (s *ShiftSchedulerService) transition(id uuid.UUID, target models.ShiftStatus) error {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrShiftNotFound
		}
		return fmt.Errorf("failed to get shift: %w", err)
	}

	if !shift.Status.CanTransitionTo(target) {
		return apperrors.NewInvalidStateError("shift assignment", string(shift.Status), string(target))
	}

	shift.Status = target
	if err := s.shiftRepo.Update(shift); err != nil {
		return fmt.Errorf("failed to update shift status: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"shift_id": shift.ID,
		"status":   target,
	}).Info("shift status changed")

	s.invalidate()
	return nil
}

// SyncStatuses applies the time-driven lifecycle transitions as of the given
// instant: scheduled shifts whose window has opened become active, active
// shifts whose window has closed become completed. Scheduled shifts whose
// whole window elapsed between ticks (sync downtime) are closed too, so
// nothing stays scheduled in history. Called periodically by the server's
// ticker goroutine; dashboards poll, nothing is pushed.
func (s *ShiftSchedulerService) SyncStatuses(asOf time.Time) error {
	date := asOf.Format(models.DateFormat)
	now := asOf.Format(models.TimeFormat)

	activated, err := s.shiftRepo.ActivateDue(date, now)
	if err != nil {
		return fmt.Errorf("failed to activate due shifts: %w", err)
	}

	completed, err := s.shiftRepo.CompleteElapsed(date, now)
	if err != nil {
		return fmt.Errorf("failed to complete elapsed shifts: %w", err)
	}

	expired, err := s.shiftRepo.ExpireOverdueScheduled(date, now)
	if err != nil {
		return fmt.Errorf("failed to expire overdue scheduled shifts: %w", err)
	}

	if activated > 0 || completed > 0 || expired > 0 {
		s.log.WithFields(map[string]interface{}{
			"activated": activated,
			"completed": completed,
			"expired":   expired,
		}).Info("shift statuses synced")
		s.invalidate()
	}
	return nil
}

func (s *ShiftSchedulerService) invalidate() {
	if s.invalidator != nil {
		s.invalidator.InvalidateCoverage()
	}
}

// validateWindow checks date/time formats and interval ordering. EndTime is
// exclusive and shifts never cross midnight.
func validateWindow(shiftDate, startTime, endTime string) error {
	if _, err := time.Parse(models.DateFormat, shiftDate); err != nil {
		return apperrors.NewValidationError("shift_date", "date must be formatted YYYY-MM-DD")
	}
	if _, err := time.Parse(models.TimeFormat, startTime); err != nil {
		return apperrors.NewValidationError("start_time", "time must be formatted HH:MM")
	}
	if _, err := time.Parse(models.TimeFormat, endTime); err != nil {
		return apperrors.NewValidationError("end_time", "time must be formatted HH:MM")
	}
	if endTime < startTime {
		return apperrors.NewValidationError("end_time", apperrors.ErrCrossMidnightShift.Error())
	}
	if startTime >= endTime {
		return apperrors.NewValidationError("end_time", apperrors.ErrInvalidTimeRange.Error())
	}
	return nil
}

// toShiftResponse converts a shift assignment model to a response
func toShiftResponse(shift *models.ShiftAssignment) *ShiftResponse {
	return &ShiftResponse{
		ID:               shift.ID,
		StaffID:          shift.StaffID,
		StaffName:        shift.StaffName,
		GateLocation:     shift.GateLocation,
		ShiftDate:        shift.ShiftDate,
		StartTime:        shift.StartTime,
		EndTime:          shift.EndTime,
		Status:           shift.Status,
		RequiresHandover: shift.RequiresHandover,
		HandoverNotes:    shift.HandoverNotes,
		CreatedAt:        shift.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        shift.UpdatedAt.Format(time.RFC3339),
	}
}
