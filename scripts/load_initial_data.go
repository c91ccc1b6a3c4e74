package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"site-security-backend/internal/config"
	"site-security-backend/internal/database"
	"site-security-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type StaffData struct {
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	BadgeNumber string `yaml:"badge_number"`
	Email       string `yaml:"email,omitempty"`
	PhoneNumber string `yaml:"phone_number,omitempty"`
	Role        string `yaml:"role"`
	IsActive    bool   `yaml:"is_active"`
}

type ShiftData struct {
	BadgeNumber      string `yaml:"badge_number"`
	GateLocation     string `yaml:"gate_location"`
	ShiftDate        string `yaml:"shift_date"`
	StartTime        string `yaml:"start_time"`
	EndTime          string `yaml:"end_time"`
	Status           string `yaml:"status,omitempty"`
	RequiresHandover bool   `yaml:"requires_handover,omitempty"`
	HandoverNotes    string `yaml:"handover_notes,omitempty"`
}

// File structures
type StaffFile struct {
	Staff []StaffData `yaml:"staff"`
}

type ShiftsFile struct {
	Shifts []ShiftData `yaml:"shifts"`
}

func main() {
	log.Println("Loading initial roster data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial roster data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	staff, err := loadStaff(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load staff: %w", err)
	}

	shifts, err := loadShifts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load shifts: %w", err)
	}

	// Create staff members first, keyed by badge number for shift binding
	staffMap := make(map[string]*models.StaffMember)
	staffCreated := 0
	for _, staffData := range staff {
		member, created, err := createStaffMember(db, staffData)
		if err != nil {
			return fmt.Errorf("failed to create staff member %s: %w", staffData.BadgeNumber, err)
		}
		staffMap[staffData.BadgeNumber] = member
		if created {
			staffCreated++
		}
	}
	log.Printf("Staff members: %d created, %d total", staffCreated, len(staff))

	shiftCreated := 0
	for _, shiftData := range shifts {
		_, created, err := createShift(db, shiftData, staffMap)
		if err != nil {
			log.Printf("Warning: failed to create shift for %s on %s: %v", shiftData.BadgeNumber, shiftData.ShiftDate, err)
			continue
		}
		if created {
			shiftCreated++
		}
	}
	log.Printf("Shift assignments: %d created, %d total", shiftCreated, len(shifts))

	return nil
}

func loadStaff(dataDir string) ([]StaffData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "staff.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file StaffFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Staff, nil
}

func loadShifts(dataDir string) ([]ShiftData, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, "shifts.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var file ShiftsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Shifts, nil
}

// createStaffMember finds or creates a staff member by badge number
func createStaffMember(db *gorm.DB, data StaffData) (*models.StaffMember, bool, error) {
	var existing models.StaffMember
	err := db.First(&existing, "badge_number = ?", data.BadgeNumber).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	role := models.StaffRole(data.Role)
	if role == "" {
		role = models.StaffRoleGuard
	}
	if !role.IsValid() {
		return nil, false, fmt.Errorf("invalid role %q", data.Role)
	}

	member := &models.StaffMember{
		FirstName:   data.FirstName,
		LastName:    data.LastName,
		FullName:    data.FirstName + " " + data.LastName,
		BadgeNumber: data.BadgeNumber,
		Email:       data.Email,
		PhoneNumber: data.PhoneNumber,
		Role:        role,
		IsActive:    data.IsActive,
	}
	if err := db.Create(member).Error; err != nil {
		return nil, false, err
	}
	return member, true, nil
}

// createShift finds or creates a shift by staff, date and start time
func createShift(db *gorm.DB, data ShiftData, staffMap map[string]*models.StaffMember) (*models.ShiftAssignment, bool, error) {
	member, ok := staffMap[data.BadgeNumber]
	if !ok {
		return nil, false, fmt.Errorf("unknown badge number %q", data.BadgeNumber)
	}

	var existing models.ShiftAssignment
	err := db.First(&existing, "staff_id = ? AND shift_date = ? AND start_time = ?",
		member.ID, data.ShiftDate, data.StartTime).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	status := models.ShiftStatus(data.Status)
	if status == "" {
		status = models.ShiftStatusScheduled
	}
	if !status.IsValid() {
		return nil, false, fmt.Errorf("invalid status %q", data.Status)
	}

	shift := &models.ShiftAssignment{
		StaffID:          member.ID,
		StaffName:        member.FullName,
		GateLocation:     data.GateLocation,
		ShiftDate:        data.ShiftDate,
		StartTime:        data.StartTime,
		EndTime:          data.EndTime,
		Status:           status,
		RequiresHandover: data.RequiresHandover,
		HandoverNotes:    data.HandoverNotes,
	}
	if err := db.Create(shift).Error; err != nil {
		return nil, false, err
	}
	return shift, true, nil
}
