package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/logger"
	"site-security-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageAssignment is the staff-resolved view of one shift on a gate
type CoverageAssignment struct {
	ShiftID          uuid.UUID          `json:"shift_id"`
	StaffID          uuid.UUID          `json:"staff_id"`
	StaffName        string             `json:"staff_name"`
	BadgeNumber      string             `json:"badge_number,omitempty"`
	StartTime        string             `json:"start_time"`
	EndTime          string             `json:"end_time"`
	Status           models.ShiftStatus `json:"status"`
	RequiresHandover bool               `json:"requires_handover"`
}

// CoverageView is the derived live state of one gate
type CoverageView struct {
	GateLocation      string                `json:"gate_location"`
	GateDescription   string                `json:"gate_description"`
	Status            models.CoverageStatus `json:"status"`
	CurrentAssignment *CoverageAssignment   `json:"current_assignment,omitempty"`
	NextAssignment    *CoverageAssignment   `json:"next_assignment,omitempty"`
	AsOf              string                `json:"as_of"`
}

// CoverageSummaryResponse aggregates per-gate coverage into an
// organization-wide rate
type CoverageSummaryResponse struct {
	CoveredGates int     `json:"covered_gates"`
	TotalGates   int     `json:"total_gates"`
	Rate         float64 `json:"rate"`
	AsOf         string  `json:"as_of"`
}

type coverageCacheEntry struct {
	view      *CoverageView
	summary   *CoverageSummaryResponse
	expiresAt time.Time
}

// CoverageService derives per-gate coverage and the organization coverage
// rate from the shift store. Reads go through a short-lived cache that shift
// mutations invalidate; readers never block writers.
type CoverageService struct {
	shiftRepo     repository.ShiftAssignmentRepositoryInterface
	gateRepo      repository.GateRepositoryInterface
	directory     StaffDirectory
	cacheTTL      time.Duration
	lookupTimeout time.Duration
	log           *logger.Logger

	mu    sync.RWMutex
	cache map[string]coverageCacheEntry
}

// summaryCacheKey is reserved; gate location codes never collide with it.
const summaryCacheKey = "\x00summary"

// NewCoverageService creates a new coverage service
func NewCoverageService(
	shiftRepo repository.ShiftAssignmentRepositoryInterface,
	gateRepo repository.GateRepositoryInterface,
	directory StaffDirectory,
	cacheTTL time.Duration,
	lookupTimeout time.Duration,
) *CoverageService {
	return &CoverageService{
		shiftRepo:     shiftRepo,
		gateRepo:      gateRepo,
		directory:     directory,
		cacheTTL:      cacheTTL,
		lookupTimeout: lookupTimeout,
		log:           logger.New().WithField("service", "coverage"),
		cache:         make(map[string]coverageCacheEntry),
	}
}

// InvalidateCoverage drops every cached coverage view
func (s *CoverageService) InvalidateCoverage() {
	s.mu.Lock()
	s.cache = make(map[string]coverageCacheEntry)
	s.mu.Unlock()
}

// CoverageFor derives the live coverage state of one gate as of the given
// instant: active when a shift is on duty, scheduled when today still has an
// upcoming shift, vacant otherwise.
func (s *CoverageService) CoverageFor(ctx context.Context, gateLocation string, asOf time.Time) (*CoverageView, error) {
	if view := s.cachedView(gateLocation); view != nil {
		return view, nil
	}

	gate, err := s.gateRepo.GetByLocation(gateLocation)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGateNotFound
		}
		return nil, fmt.Errorf("failed to get gate: %w", err)
	}

	date := asOf.Format(models.DateFormat)
	now := asOf.Format(models.TimeFormat)

	shifts, err := s.shiftRepo.GetByGateAndDate(gateLocation, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for gate: %w", err)
	}

	current, next := partitionShifts(shifts, now)

	view := &CoverageView{
		GateLocation:    gate.Location,
		GateDescription: gate.Description,
		Status:          models.CoverageStatusVacant,
		AsOf:            asOf.Format(time.RFC3339),
	}
	if current != nil {
		view.Status = models.CoverageStatusActive
		view.CurrentAssignment = s.resolveAssignment(ctx, current)
	} else if next != nil {
		view.Status = models.CoverageStatusScheduled
	}
	if next != nil {
		view.NextAssignment = s.resolveAssignment(ctx, next)
	}

	s.storeView(gateLocation, view)
	return view, nil
}

// CoverageSummary aggregates per-gate status into the organization coverage
// rate. A gate counts as covered only when a shift is actively on duty.
// With zero gates the rate is 0, never a division error.
func (s *CoverageService) CoverageSummary(ctx context.Context, asOf time.Time) (*CoverageSummaryResponse, error) {
	if summary := s.cachedSummary(); summary != nil {
		return summary, nil
	}

	gates, err := s.gateRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load gate catalogue: %w", err)
	}

	date := asOf.Format(models.DateFormat)
	now := asOf.Format(models.TimeFormat)

	covered := 0
	for _, gate := range gates {
		shifts, err := s.shiftRepo.GetByGateAndDate(gate.Location, date)
		if err != nil {
			return nil, fmt.Errorf("failed to load shifts for gate %s: %w", gate.Location, err)
		}
		if current, _ := partitionShifts(shifts, now); current != nil {
			covered++
		}
	}

	summary := &CoverageSummaryResponse{
		CoveredGates: covered,
		TotalGates:   len(gates),
		Rate:         0,
		AsOf:         asOf.Format(time.RFC3339),
	}
	if len(gates) > 0 {
		summary.Rate = float64(covered) / float64(len(gates))
	}

	s.storeSummary(summary)
	return summary, nil
}

// partitionShifts picks the on-duty shift and the next upcoming shift from a
// gate's shifts for one date, both already sorted by start time. A shift is
// effectively active when its stored status says so or when it is scheduled
// and its window contains now (the time-driven transition may not have been
// persisted yet). Several staff may be active on one gate at once; the
// earliest start wins as the current assignment.
func partitionShifts(shifts []models.ShiftAssignment, now string) (current, next *models.ShiftAssignment) {
	for i := range shifts {
		shift := &shifts[i]
		switch shift.Status {
		case models.ShiftStatusActive:
			if current == nil {
				current = shift
			}
		case models.ShiftStatusScheduled:
			if shift.StartTime <= now && now < shift.EndTime {
				if current == nil {
					current = shift
				}
			} else if shift.StartTime >= now && next == nil {
				next = shift
			}
		}
	}
	return current, next
}

// resolveAssignment joins a shift against the staff directory for a fresh
// display name and badge number. A directory failure degrades to the
// denormalized name (or the raw id) rather than failing the whole view.
func (s *CoverageService) resolveAssignment(ctx context.Context, shift *models.ShiftAssignment) *CoverageAssignment {
	assignment := &CoverageAssignment{
		ShiftID:          shift.ID,
		StaffID:          shift.StaffID,
		StaffName:        shift.StaffName,
		StartTime:        shift.StartTime,
		EndTime:          shift.EndTime,
		Status:           shift.Status,
		RequiresHandover: shift.RequiresHandover,
	}
	if assignment.StaffName == "" {
		assignment.StaffName = shift.StaffID.String()
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.lookupTimeout)
	defer cancel()

	staff, err := s.directory.GetStaff(lookupCtx, shift.StaffID)
	if err != nil {
		s.log.WithField("staff_id", shift.StaffID).WithField("error", err.Error()).
			Warn("staff directory lookup failed, using stored identifier")
		return assignment
	}

	assignment.StaffName = staff.FullName
	assignment.BadgeNumber = staff.BadgeNumber
	return assignment
}

func (s *CoverageService) cachedView(gateLocation string) *CoverageView {
	if s.cacheTTL <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.cache[gateLocation]; ok && time.Now().Before(entry.expiresAt) {
		return entry.view
	}
	return nil
}

func (s *CoverageService) cachedSummary() *CoverageSummaryResponse {
	if s.cacheTTL <= 0 {
		return nil
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if entry, ok := s.cache[summaryCacheKey]; ok && time.Now().Before(entry.expiresAt) {
		return entry.summary
	}
	return nil
}

func (s *CoverageService) storeView(gateLocation string, view *CoverageView) {
	if s.cacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	s.cache[gateLocation] = coverageCacheEntry{view: view, expiresAt: time.Now().Add(s.cacheTTL)}
	s.mu.Unlock()
}

func (s *CoverageService) storeSummary(summary *CoverageSummaryResponse) {
	if s.cacheTTL <= 0 {
		return
	}
	s.mu.Lock()
	s.cache[summaryCacheKey] = coverageCacheEntry{summary: summary, expiresAt: time.Now().Add(s.cacheTTL)}
	s.mu.Unlock()
}
