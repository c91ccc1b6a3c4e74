package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffDirectory is the read-only collaborator scheduling and coverage use to
// resolve staff members. Lookups respect the caller's context deadline.
type StaffDirectory interface {
	GetStaff(ctx context.Context, id uuid.UUID) (*models.StaffMember, error)
	GetActiveStaff(ctx context.Context, limit, offset int) ([]models.StaffMember, int64, error)
}

// StaffService handles business logic for staff members and implements
// StaffDirectory for the coverage calculator.
type StaffService struct {
	repo      repository.StaffMemberRepositoryInterface
	validator *validator.Validate
}

// NewStaffService creates a new staff service
func NewStaffService(repo repository.StaffMemberRepositoryInterface, validator *validator.Validate) *StaffService {
	return &StaffService{repo: repo, validator: validator}
}

// CreateStaffRequest represents the request to register a staff member
type CreateStaffRequest struct {
	FirstName   string           `json:"first_name" validate:"required,max=100"`
	LastName    string           `json:"last_name" validate:"required,max=100"`
	BadgeNumber string           `json:"badge_number" validate:"max=50"`
	Email       string           `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber string           `json:"phone_number" validate:"max=20"`
	Role        models.StaffRole `json:"role,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// UpdateStaffRequest represents a partial update of a staff member
type UpdateStaffRequest struct {
	FirstName   *string           `json:"first_name,omitempty"`
	LastName    *string           `json:"last_name,omitempty"`
	BadgeNumber *string           `json:"badge_number,omitempty"`
	Email       *string           `json:"email,omitempty"`
	PhoneNumber *string           `json:"phone_number,omitempty"`
	Role        *models.StaffRole `json:"role,omitempty"`
	IsActive    *bool             `json:"is_active,omitempty"`
}

// StaffResponse represents the response for staff member operations
type StaffResponse struct {
	ID          uuid.UUID        `json:"id"`
	FirstName   string           `json:"first_name"`
	LastName    string           `json:"last_name"`
	FullName    string           `json:"full_name"`
	BadgeNumber string           `json:"badge_number,omitempty"`
	Email       string           `json:"email,omitempty"`
	PhoneNumber string           `json:"phone_number,omitempty"`
	Role        models.StaffRole `json:"role"`
	IsActive    bool             `json:"is_active"`
}

// StaffListResponse represents a paginated list of staff members
type StaffListResponse struct {
	Staff    []StaffResponse `json:"staff"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// CreateStaffMember registers a new staff member
func (s *StaffService) CreateStaffMember(req *CreateStaffRequest) (*StaffResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	role := req.Role
	if role == "" {
		role = models.StaffRoleGuard
	}
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "invalid staff role")
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	staff := &models.StaffMember{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		BadgeNumber: req.BadgeNumber,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Role:        role,
		IsActive:    isActive,
	}
	staff.FullName = staff.FirstName + " " + staff.LastName

	if err := s.repo.Create(staff); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrStaffMemberExists
		}
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	return toStaffResponse(staff), nil
}

// GetStaffMember retrieves a staff member by ID
func (s *StaffService) GetStaffMember(id uuid.UUID) (*StaffResponse, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffMemberNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	return toStaffResponse(staff), nil
}

// ListStaffMembers retrieves staff members with pagination. activeOnly
// restricts the list to assignable staff.
func (s *StaffService) ListStaffMembers(activeOnly bool, page, pageSize int) (*StaffListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	var (
		staff []models.StaffMember
		total int64
		err   error
	)
	if activeOnly {
		staff, total, err = s.repo.GetActive(pageSize, offset)
	} else {
		staff, total, err = s.repo.GetAll(pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list staff members: %w", err)
	}

	responses := make([]StaffResponse, len(staff))
	for i := range staff {
		responses[i] = *toStaffResponse(&staff[i])
	}

	return &StaffListResponse{
		Staff:    responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// UpdateStaffMember applies a partial update, including activation toggles
func (s *StaffService) UpdateStaffMember(id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStaffMemberNotFound
		}
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}

	if req.FirstName != nil {
		staff.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		staff.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.FirstName != nil || req.LastName != nil {
		staff.FullName = staff.FirstName + " " + staff.LastName
	}
	if req.BadgeNumber != nil {
		staff.BadgeNumber = *req.BadgeNumber
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		staff.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		if !req.Role.IsValid() {
			return nil, apperrors.NewValidationError("role", "invalid staff role")
		}
		staff.Role = *req.Role
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}

	if staff.FirstName == "" || staff.LastName == "" {
		return nil, apperrors.NewValidationError("name", "first and last name are required")
	}

	if err := s.repo.Update(staff); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	return toStaffResponse(staff), nil
}

// GetStaff implements StaffDirectory. The lookup is bounded by the caller's
// context deadline so a slow store never stalls a coverage read.
func (s *StaffService) GetStaff(ctx context.Context, id uuid.UUID) (*models.StaffMember, error) {
	type result struct {
		staff *models.StaffMember
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		staff, err := s.repo.GetByID(id)
		ch <- result{staff, err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.err != nil {
			if errors.Is(res.err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrStaffMemberNotFound
			}
			return nil, res.err
		}
		return res.staff, nil
	}
}

// GetActiveStaff implements StaffDirectory
func (s *StaffService) GetActiveStaff(ctx context.Context, limit, offset int) ([]models.StaffMember, int64, error) {
	type result struct {
		staff []models.StaffMember
		total int64
		err   error
	}
	ch := make(chan result, 1)
	go func() {
		staff, total, err := s.repo.GetActive(limit, offset)
		ch <- result{staff, total, err}
	}()

	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	case res := <-ch:
		return res.staff, res.total, res.err
	}
}

// toStaffResponse converts a staff member model to a response
func toStaffResponse(staff *models.StaffMember) *StaffResponse {
	return &StaffResponse{
		ID:          staff.ID,
		FirstName:   staff.FirstName,
		LastName:    staff.LastName,
		FullName:    staff.FullName,
		BadgeNumber: staff.BadgeNumber,
		Email:       staff.Email,
		PhoneNumber: staff.PhoneNumber,
		Role:        staff.Role,
		IsActive:    staff.IsActive,
	}
}
