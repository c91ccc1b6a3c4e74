//go:build integration

package service_test

import (
	"sync"
	"testing"
	"time"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/repository"
	"site-security-backend/internal/service"
	"site-security-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type ShiftSchedulerTestSuite struct {
	*testutils.BaseTestSuite
	scheduler *service.ShiftSchedulerService
	factories *testutils.FactorySet
}

func TestShiftSchedulerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &ShiftSchedulerTestSuite{BaseTestSuite: base})
}

func (s *ShiftSchedulerTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.factories = testutils.NewFactorySet(s.DB)
	s.factories.Gates.SeedBuiltinGates(s.T())

	shiftRepo := repository.NewShiftAssignmentRepository(s.DB)
	staffRepo := repository.NewStaffMemberRepository(s.DB)
	gateRepo := repository.NewGateRepository(s.DB)
	s.scheduler = service.NewShiftSchedulerService(s.DB, shiftRepo, staffRepo, gateRepo, validator.New(), nil)
}

func (s *ShiftSchedulerTestSuite) TestCreateShift() {
	staff := s.factories.Staff.Create(s.T())

	resp, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "08:00",
		EndTime:      "16:00",
	})
	s.Require().NoError(err)
	s.Equal(models.ShiftStatusScheduled, resp.Status)
	s.Equal(staff.FullName, resp.StaffName)

	fetched, err := s.scheduler.GetByID(resp.ID)
	s.Require().NoError(err)
	s.Equal(resp.ID, fetched.ID)
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftRejectsOverlap() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("06:00", "14:00"),
	)

	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateSide,
		ShiftDate:    "2026-03-15",
		StartTime:    "12:00",
		EndTime:      "20:00",
	})
	s.Require().Error(err)
	s.True(apperrors.IsConflict(err))
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftAllowsBackToBack() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("00:00", "08:00"),
	)

	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "08:00",
		EndTime:      "16:00",
	})
	s.NoError(err)
}

func (s *ShiftSchedulerTestSuite) TestConcurrentCreatesForSameStaffAdmitOne() {
	staff := s.factories.Staff.Create(s.T())

	// Both requests overlap; without serialization both reads happen before
	// either write commits and both would be admitted.
	requests := []*service.CreateShiftRequest{
		{StaffID: staff.ID, GateLocation: models.GateMain, ShiftDate: "2026-03-15", StartTime: "08:00", EndTime: "16:00"},
		{StaffID: staff.ID, GateLocation: models.GateSide, ShiftDate: "2026-03-15", StartTime: "12:00", EndTime: "20:00"},
	}

	errs := make([]error, len(requests))
	var wg sync.WaitGroup
	for i, req := range requests {
		wg.Add(1)
		go func(i int, req *service.CreateShiftRequest) {
			defer wg.Done()
			_, errs[i] = s.scheduler.Create(req)
		}(i, req)
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case apperrors.IsConflict(err):
			conflicted++
		default:
			s.Require().NoError(err)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, conflicted)

	var count int64
	s.Require().NoError(s.DB.Model(&models.ShiftAssignment{}).Where("staff_id = ?", staff.ID).Count(&count).Error)
	s.EqualValues(1, count)
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftIgnoresCancelledShifts() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("08:00", "16:00"),
		testutils.WithStatus(models.ShiftStatusCancelled),
	)

	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "08:00",
		EndTime:      "16:00",
	})
	s.NoError(err)
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftInactiveStaffBeatsConflict() {
	staff := s.factories.Staff.Create(s.T(), testutils.Inactive())
	s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("08:00", "16:00"),
	)

	// The overlapping window also exists, but the inactive staff member must
	// surface as a validation error, not a conflict.
	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "10:00",
		EndTime:      "18:00",
	})
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
	s.False(apperrors.IsConflict(err))
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftUnknownGate() {
	staff := s.factories.Staff.Create(s.T())

	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: "no_such_gate",
		ShiftDate:    "2026-03-15",
		StartTime:    "08:00",
		EndTime:      "16:00",
	})
	s.True(apperrors.IsValidation(err))
}

func (s *ShiftSchedulerTestSuite) TestCreateShiftCrossMidnight() {
	staff := s.factories.Staff.Create(s.T())

	_, err := s.scheduler.Create(&service.CreateShiftRequest{
		StaffID:      staff.ID,
		GateLocation: models.GateMain,
		ShiftDate:    "2026-03-15",
		StartTime:    "22:00",
		EndTime:      "06:00",
	})
	s.Require().Error(err)
	s.True(apperrors.IsValidation(err))
	s.Contains(err.Error(), "crossing midnight")
}

func (s *ShiftSchedulerTestSuite) TestUpdateShiftWindow() {
	shift := s.factories.Shifts.Create(s.T(), testutils.Between("08:00", "16:00"))

	// Shrinking the window must not conflict with the shift itself.
	start, end := "09:00", "15:00"
	resp, err := s.scheduler.Update(shift.ID, &service.UpdateShiftRequest{StartTime: &start, EndTime: &end})
	s.Require().NoError(err)
	s.Equal("09:00", resp.StartTime)
	s.Equal("15:00", resp.EndTime)
}

func (s *ShiftSchedulerTestSuite) TestUpdateShiftConflictsWithOtherShift() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("06:00", "10:00"),
	)
	victim := s.factories.Shifts.Create(s.T(),
		testutils.ForStaff(staff),
		testutils.OnDate("2026-03-15"),
		testutils.Between("12:00", "16:00"),
	)

	start := "09:00"
	_, err := s.scheduler.Update(victim.ID, &service.UpdateShiftRequest{StartTime: &start})
	s.Require().Error(err)
	s.True(apperrors.IsConflict(err))
}

func (s *ShiftSchedulerTestSuite) TestUpdateTerminalShift() {
	for _, status := range []models.ShiftStatus{models.ShiftStatusCompleted, models.ShiftStatusMissed, models.ShiftStatusCancelled} {
		shift := s.factories.Shifts.Create(s.T(), testutils.WithStatus(status))
		notes := "late relief"
		_, err := s.scheduler.Update(shift.ID, &service.UpdateShiftRequest{HandoverNotes: &notes})
		s.Require().Error(err)
		s.True(apperrors.IsInvalidState(err), "status %s must be immutable", status)
	}
}

func (s *ShiftSchedulerTestSuite) TestCancelShift() {
	shift := s.factories.Shifts.Create(s.T())
	s.Require().NoError(s.scheduler.Cancel(shift.ID))

	fetched, err := s.scheduler.GetByID(shift.ID)
	s.Require().NoError(err)
	s.Equal(models.ShiftStatusCancelled, fetched.Status)
}

func (s *ShiftSchedulerTestSuite) TestCancelActiveShift() {
	shift := s.factories.Shifts.Create(s.T(), testutils.WithStatus(models.ShiftStatusActive))
	err := s.scheduler.Cancel(shift.ID)
	s.Require().Error(err)
	s.True(apperrors.IsInvalidState(err))
}

func (s *ShiftSchedulerTestSuite) TestMarkMissed() {
	active := s.factories.Shifts.Create(s.T(), testutils.WithStatus(models.ShiftStatusActive))
	s.Require().NoError(s.scheduler.MarkMissed(active.ID))

	fetched, err := s.scheduler.GetByID(active.ID)
	s.Require().NoError(err)
	s.Equal(models.ShiftStatusMissed, fetched.Status)

	scheduled := s.factories.Shifts.Create(s.T())
	err = s.scheduler.MarkMissed(scheduled.ID)
	s.True(apperrors.IsInvalidState(err))
}

func (s *ShiftSchedulerTestSuite) TestListShiftsFilters() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-15"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-16"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.AtGate(models.GateSide))

	byDate, err := s.scheduler.List(service.ShiftListFilter{ShiftDate: "2026-03-15"}, 1, 20)
	s.Require().NoError(err)
	s.Equal(int64(2), byDate.Total)

	byStaff, err := s.scheduler.List(service.ShiftListFilter{StaffID: &staff.ID}, 1, 20)
	s.Require().NoError(err)
	s.Equal(int64(2), byStaff.Total)

	byGate, err := s.scheduler.List(service.ShiftListFilter{GateLocation: models.GateSide}, 1, 20)
	s.Require().NoError(err)
	s.Equal(int64(1), byGate.Total)

	_, err = s.scheduler.List(service.ShiftListFilter{Status: "unknown"}, 1, 20)
	s.True(apperrors.IsValidation(err))
}

func (s *ShiftSchedulerTestSuite) TestSyncStatuses() {
	asOf := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	due := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.Between("08:00", "16:00"))
	upcoming := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.Between("14:00", "22:00"))
	elapsed := s.factories.Shifts.Create(s.T(),
		testutils.OnDate("2026-03-15"),
		testutils.Between("00:00", "08:00"),
		testutils.WithStatus(models.ShiftStatusActive),
	)
	yesterday := s.factories.Shifts.Create(s.T(),
		testutils.OnDate("2026-03-14"),
		testutils.Between("08:00", "16:00"),
		testutils.WithStatus(models.ShiftStatusActive),
	)
	// Never activated because no tick ran while their windows were open.
	staleScheduled := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-14"), testutils.Between("08:00", "16:00"))
	overdueScheduled := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.Between("02:00", "06:00"))

	s.Require().NoError(s.scheduler.SyncStatuses(asOf))

	expect := map[string]models.ShiftStatus{
		due.ID.String():              models.ShiftStatusActive,
		upcoming.ID.String():         models.ShiftStatusScheduled,
		elapsed.ID.String():          models.ShiftStatusCompleted,
		yesterday.ID.String():        models.ShiftStatusCompleted,
		staleScheduled.ID.String():   models.ShiftStatusCompleted,
		overdueScheduled.ID.String(): models.ShiftStatusCompleted,
	}
	for _, shift := range []*models.ShiftAssignment{due, upcoming, elapsed, yesterday, staleScheduled, overdueScheduled} {
		fetched, err := s.scheduler.GetByID(shift.ID)
		s.Require().NoError(err)
		s.Equal(expect[shift.ID.String()], fetched.Status, "shift %s", shift.ID)
	}
}
