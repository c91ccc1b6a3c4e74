package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ShiftServiceInterface defines the interface for the shift scheduler service
type ShiftServiceInterface interface {
	Create(req *CreateShiftRequest) (*ShiftResponse, error)
	GetByID(id uuid.UUID) (*ShiftResponse, error)
	List(filter ShiftListFilter, page, pageSize int) (*ShiftListResponse, error)
	Update(id uuid.UUID, req *UpdateShiftRequest) (*ShiftResponse, error)
	Cancel(id uuid.UUID) error
	MarkMissed(id uuid.UUID) error
}

// CoverageServiceInterface defines the interface for the coverage service
type CoverageServiceInterface interface {
	CoverageFor(ctx context.Context, gateLocation string, asOf time.Time) (*CoverageView, error)
	CoverageSummary(ctx context.Context, asOf time.Time) (*CoverageSummaryResponse, error)
}

// GateServiceInterface defines the interface for the gate catalogue service
type GateServiceInterface interface {
	CreateGate(req *CreateGateRequest) (*GateResponse, error)
	GetGate(location string) (*GateResponse, error)
	ListGates() ([]GateResponse, error)
	DeleteGate(location string) error
}

// StaffServiceInterface defines the interface for the staff service
type StaffServiceInterface interface {
	CreateStaffMember(req *CreateStaffRequest) (*StaffResponse, error)
	GetStaffMember(id uuid.UUID) (*StaffResponse, error)
	ListStaffMembers(activeOnly bool, page, pageSize int) (*StaffListResponse, error)
	UpdateStaffMember(id uuid.UUID, req *UpdateStaffRequest) (*StaffResponse, error)
}

// LDAPServiceInterface defines the interface for the corporate directory search
type LDAPServiceInterface interface {
	SearchUsersByCN(cn string) ([]DirectoryUser, error)
}
