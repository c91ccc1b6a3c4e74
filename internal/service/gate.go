package service

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/logger"
	"site-security-backend/internal/repository"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// gateCatalogueFile is the optional on-disk catalogue of organization-defined
// gate codes layered on top of the builtin set.
type gateCatalogueFile struct {
	Gates []struct {
		Location    string `yaml:"location"`
		Description string `yaml:"description"`
	} `yaml:"gates"`
}

var gateLocationPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{1,49}$`)

// GateService handles the gate catalogue: the fixed builtin set plus
// organization-defined custom codes.
type GateService struct {
	repo repository.GateRepositoryInterface
	log  *logger.Logger
}

// NewGateService creates a new gate service
func NewGateService(repo repository.GateRepositoryInterface) *GateService {
	return &GateService{
		repo: repo,
		log:  logger.New().WithField("service", "gate"),
	}
}

// CreateGateRequest represents the request to register a custom gate code
type CreateGateRequest struct {
	Location    string `json:"location" validate:"required,max=50"`
	Description string `json:"description" validate:"max=200"`
}

// GateResponse represents the response for gate operations
type GateResponse struct {
	Location    string `json:"location"`
	Description string `json:"description"`
	Builtin     bool   `json:"builtin"`
}

// SeedCatalogue installs the builtin gate set and merges the optional custom
// catalogue file. Existing rows keep their descriptions. Called at startup.
func (s *GateService) SeedCatalogue(cataloguePath string) error {
	gates := models.BuiltinGates()

	if cataloguePath != "" {
		custom, err := loadGateCatalogue(cataloguePath)
		if err != nil {
			return err
		}
		gates = append(gates, custom...)
	}

	if err := s.repo.Seed(gates); err != nil {
		return fmt.Errorf("failed to seed gate catalogue: %w", err)
	}

	s.log.WithField("gates", len(gates)).Info("gate catalogue seeded")
	return nil
}

func loadGateCatalogue(path string) ([]models.Gate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read gate catalogue %s: %w", path, err)
	}

	var file gateCatalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse gate catalogue %s: %w", path, err)
	}

	gates := make([]models.Gate, 0, len(file.Gates))
	for _, g := range file.Gates {
		if !gateLocationPattern.MatchString(g.Location) {
			return nil, fmt.Errorf("gate catalogue %s: invalid location code %q", path, g.Location)
		}
		gates = append(gates, models.Gate{Location: g.Location, Description: g.Description})
	}
	return gates, nil
}

// CreateGate registers an organization-defined gate code
func (s *GateService) CreateGate(req *CreateGateRequest) (*GateResponse, error) {
	if !gateLocationPattern.MatchString(req.Location) {
		return nil, apperrors.NewValidationError("location", "location must be a lowercase snake_case code")
	}

	exists, err := s.repo.Exists(req.Location)
	if err != nil {
		return nil, fmt.Errorf("failed to check gate: %w", err)
	}
	if exists {
		return nil, apperrors.ErrGateExists
	}

	gate := &models.Gate{
		Location:    req.Location,
		Description: req.Description,
		Builtin:     false,
	}
	if err := s.repo.Create(gate); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrGateExists
		}
		return nil, fmt.Errorf("failed to create gate: %w", err)
	}

	return toGateResponse(gate), nil
}

// GetGate retrieves a gate by its location code
func (s *GateService) GetGate(location string) (*GateResponse, error) {
	gate, err := s.repo.GetByLocation(location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGateNotFound
		}
		return nil, fmt.Errorf("failed to get gate: %w", err)
	}
	return toGateResponse(gate), nil
}

// ListGates retrieves the full catalogue, builtin gates first
func (s *GateService) ListGates() ([]GateResponse, error) {
	gates, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list gates: %w", err)
	}

	responses := make([]GateResponse, len(gates))
	for i := range gates {
		responses[i] = *toGateResponse(&gates[i])
	}
	return responses, nil
}

// DeleteGate removes a custom gate code. Builtin gates are immutable
// reference data and cannot be removed.
func (s *GateService) DeleteGate(location string) error {
	gate, err := s.repo.GetByLocation(location)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGateNotFound
		}
		return fmt.Errorf("failed to get gate: %w", err)
	}
	if gate.Builtin {
		return apperrors.ErrBuiltinGateReadOnly
	}

	if err := s.repo.Delete(location); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrGateNotFound
		}
		return fmt.Errorf("failed to delete gate: %w", err)
	}
	return nil
}

// toGateResponse converts a gate model to a response
func toGateResponse(gate *models.Gate) *GateResponse {
	return &GateResponse{
		Location:    gate.Location,
		Description: gate.Description,
		Builtin:     gate.Builtin,
	}
}
