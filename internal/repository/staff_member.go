package repository

import (
	"site-security-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StaffMemberRepository handles database operations for staff members
type StaffMemberRepository struct {
	db *gorm.DB
}

// NewStaffMemberRepository creates a new staff member repository
func NewStaffMemberRepository(db *gorm.DB) *StaffMemberRepository {
	return &StaffMemberRepository{db: db}
}

// Create creates a new staff member
func (r *StaffMemberRepository) Create(staff *models.StaffMember) error {
	return r.db.Create(staff).Error
}

// GetByID retrieves a staff member by ID
func (r *StaffMemberRepository) GetByID(id uuid.UUID) (*models.StaffMember, error) {
	var staff models.StaffMember
	err := r.db.First(&staff, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

// GetAll retrieves all staff members
func (r *StaffMemberRepository) GetAll(limit, offset int) ([]models.StaffMember, int64, error) {
	var staff []models.StaffMember
	var total int64

	if err := r.db.Model(&models.StaffMember{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&staff).Error
	return staff, total, err
}

// GetActive retrieves active staff members only
func (r *StaffMemberRepository) GetActive(limit, offset int) ([]models.StaffMember, int64, error) {
	var staff []models.StaffMember
	var total int64

	query := r.db.Model(&models.StaffMember{}).Where("is_active = ?", true)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&staff).Error
	return staff, total, err
}

// Update updates a staff member
func (r *StaffMemberRepository) Update(staff *models.StaffMember) error {
	return r.db.Save(staff).Error
}
