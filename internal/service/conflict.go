package service

import (
	"fmt"

	"site-security-backend/internal/database/models"
	"site-security-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Overlaps reports whether two half-open time windows [aStart,aEnd) and
// [bStart,bEnd) intersect. Windows that touch at a boundary do not overlap,
// so a shift ending 16:00 never conflicts with one starting 16:00.
// Times are zero-padded HH:MM strings, which compare lexicographically in
// chronological order.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart < bEnd && bStart < aEnd
}

// ConflictDetector decides whether a proposed shift window overlaps an
// existing non-cancelled shift of the same staff member on the same date.
// It is a pure predicate over store state and has no side effects.
type ConflictDetector struct {
	shiftRepo repository.ShiftAssignmentRepositoryInterface
}

// NewConflictDetector creates a new conflict detector
func NewConflictDetector(shiftRepo repository.ShiftAssignmentRepositoryInterface) *ConflictDetector {
	return &ConflictDetector{shiftRepo: shiftRepo}
}

// WithTx returns a detector reading through the given transaction, so the
// scheduler can re-validate inside the same critical section as the write.
func (d *ConflictDetector) WithTx(tx *gorm.DB) *ConflictDetector {
	return &ConflictDetector{shiftRepo: d.shiftRepo.WithTx(tx)}
}

// HasConflict reports whether [startTime,endTime) on shiftDate overlaps any
// existing non-cancelled shift of staffID. excludeShiftID skips the shift's
// own record when an edit re-checks its new window.
func (d *ConflictDetector) HasConflict(shiftDate, startTime, endTime string, staffID uuid.UUID, excludeShiftID *uuid.UUID) (bool, *models.ShiftAssignment, error) {
	candidates, err := d.shiftRepo.GetConflictCandidates(staffID, shiftDate, excludeShiftID)
	if err != nil {
		return false, nil, fmt.Errorf("load conflict candidates: %w", err)
	}

	for i := range candidates {
		if Overlaps(startTime, endTime, candidates[i].StartTime, candidates[i].EndTime) {
			return true, &candidates[i], nil
		}
	}
	return false, nil, nil
}
