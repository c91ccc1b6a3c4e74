package repository

import (
	"errors"

	"site-security-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GateRepository handles database operations for the gate catalogue
type GateRepository struct {
	db *gorm.DB
}

// NewGateRepository creates a new gate repository
func NewGateRepository(db *gorm.DB) *GateRepository {
	return &GateRepository{db: db}
}

// Create creates a new gate
func (r *GateRepository) Create(gate *models.Gate) error {
	return r.db.Create(gate).Error
}

// GetByLocation retrieves a gate by its location code
func (r *GateRepository) GetByLocation(location string) (*models.Gate, error) {
	var gate models.Gate
	err := r.db.First(&gate, "location = ?", location).Error
	if err != nil {
		return nil, err
	}
	return &gate, nil
}

// GetAll retrieves the full gate catalogue, builtin gates first
func (r *GateRepository) GetAll() ([]models.Gate, error) {
	var gates []models.Gate
	err := r.db.Order("builtin DESC, location ASC").Find(&gates).Error
	return gates, err
}

// Exists reports whether a location code is part of the catalogue
func (r *GateRepository) Exists(location string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Gate{}).Where("location = ?", location).Count(&count).Error
	return count > 0, err
}

// Delete removes a custom gate by location
func (r *GateRepository) Delete(location string) error {
	res := r.db.Delete(&models.Gate{}, "location = ?", location)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Seed upserts the given gates by location, keeping existing descriptions.
// Used at startup for the builtin set and the optional custom catalogue file.
func (r *GateRepository) Seed(gates []models.Gate) error {
	for i := range gates {
		err := r.db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "location"}},
			DoNothing: true,
		}).Create(&gates[i]).Error
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return err
		}
	}
	return nil
}
