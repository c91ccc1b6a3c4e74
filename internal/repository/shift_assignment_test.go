//go:build integration

package repository_test

import (
	"testing"

	"site-security-backend/internal/database/models"
	"site-security-backend/internal/repository"
	"site-security-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ShiftAssignmentRepositoryTestSuite struct {
	*testutils.BaseTestSuite
	repo      *repository.ShiftAssignmentRepository
	factories *testutils.FactorySet
}

func TestShiftAssignmentRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	base := testutils.SetupTestSuite(t)
	suite.Run(t, &ShiftAssignmentRepositoryTestSuite{BaseTestSuite: base})
}

func (s *ShiftAssignmentRepositoryTestSuite) SetupTest() {
	s.BaseTestSuite.SetupTest()
	s.repo = repository.NewShiftAssignmentRepository(s.DB)
	s.factories = testutils.NewFactorySet(s.DB)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestCreateAndGetByID() {
	staff := s.factories.Staff.Create(s.T())
	shift := s.factories.Shifts.Build(testutils.ForStaff(staff))
	s.Require().NoError(s.repo.Create(shift))

	fetched, err := s.repo.GetByID(shift.ID)
	s.Require().NoError(err)
	s.Equal(shift.GateLocation, fetched.GateLocation)
	s.Equal(models.ShiftStatusScheduled, fetched.Status)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestGetByIDNotFound() {
	shift := s.factories.Shifts.Build()
	_, err := s.repo.GetByID(shift.StaffID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestListFilters() {
	staff := s.factories.Staff.Create(s.T())
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-15"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-16"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.AtGate(models.GateSide), testutils.WithStatus(models.ShiftStatusCancelled))

	byDate, total, err := s.repo.List(repository.ShiftFilter{ShiftDate: "2026-03-15"}, 20, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(byDate, 2)

	byStatus, total, err := s.repo.List(repository.ShiftFilter{Status: models.ShiftStatusCancelled}, 20, 0)
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Len(byStatus, 1)

	byStaff, total, err := s.repo.List(repository.ShiftFilter{StaffID: &staff.ID}, 20, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(byStaff, 2)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestListPagination() {
	staff := s.factories.Staff.Create(s.T())
	for _, window := range [][2]string{{"06:00", "08:00"}, {"10:00", "12:00"}, {"14:00", "16:00"}} {
		s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.Between(window[0], window[1]))
	}

	page, total, err := s.repo.List(repository.ShiftFilter{StaffID: &staff.ID}, 2, 0)
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Len(page, 2)

	rest, _, err := s.repo.List(repository.ShiftFilter{StaffID: &staff.ID}, 2, 2)
	s.Require().NoError(err)
	s.Len(rest, 1)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestGetConflictCandidates() {
	staff := s.factories.Staff.Create(s.T())
	kept := s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-15"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-15"), testutils.Between("16:00", "22:00"), testutils.WithStatus(models.ShiftStatusCancelled))
	s.factories.Shifts.Create(s.T(), testutils.ForStaff(staff), testutils.OnDate("2026-03-16"), testutils.Between("08:00", "16:00"))
	s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-15"), testutils.Between("08:00", "16:00"))

	candidates, err := s.repo.GetConflictCandidates(staff.ID, "2026-03-15", nil)
	s.Require().NoError(err)
	s.Require().Len(candidates, 1)
	s.Equal(kept.ID, candidates[0].ID)

	excluded, err := s.repo.GetConflictCandidates(staff.ID, "2026-03-15", &kept.ID)
	s.Require().NoError(err)
	s.Empty(excluded)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestGetByGateAndDateOrdering() {
	gate := s.factories.Gates.Create(s.T())
	s.factories.Shifts.Create(s.T(), testutils.AtGate(gate.Location), testutils.Between("14:00", "22:00"))
	s.factories.Shifts.Create(s.T(), testutils.AtGate(gate.Location), testutils.Between("06:00", "14:00"))

	shifts, err := s.repo.GetByGateAndDate(gate.Location, "2026-03-15")
	s.Require().NoError(err)
	s.Require().Len(shifts, 2)
	s.Equal("06:00", shifts[0].StartTime)
	s.Equal("14:00", shifts[1].StartTime)
}

func (s *ShiftAssignmentRepositoryTestSuite) TestActivateDue() {
	due := s.factories.Shifts.Create(s.T(), testutils.Between("08:00", "16:00"))
	upcoming := s.factories.Shifts.Create(s.T(), testutils.Between("14:00", "22:00"))
	cancelled := s.factories.Shifts.Create(s.T(), testutils.Between("08:00", "16:00"), testutils.WithStatus(models.ShiftStatusCancelled))

	affected, err := s.repo.ActivateDue("2026-03-15", "12:00")
	s.Require().NoError(err)
	s.Equal(int64(1), affected)

	for id, want := range map[string]models.ShiftStatus{
		due.ID.String():       models.ShiftStatusActive,
		upcoming.ID.String():  models.ShiftStatusScheduled,
		cancelled.ID.String(): models.ShiftStatusCancelled,
	} {
		var got models.ShiftAssignment
		s.Require().NoError(s.DB.First(&got, "id = ?", id).Error)
		s.Equal(want, got.Status)
	}
}

func (s *ShiftAssignmentRepositoryTestSuite) TestCompleteElapsed() {
	elapsed := s.factories.Shifts.Create(s.T(), testutils.Between("00:00", "08:00"), testutils.WithStatus(models.ShiftStatusActive))
	running := s.factories.Shifts.Create(s.T(), testutils.Between("08:00", "16:00"), testutils.WithStatus(models.ShiftStatusActive))
	stale := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-14"), testutils.Between("08:00", "16:00"), testutils.WithStatus(models.ShiftStatusActive))

	affected, err := s.repo.CompleteElapsed("2026-03-15", "12:00")
	s.Require().NoError(err)
	s.Equal(int64(2), affected)

	for id, want := range map[string]models.ShiftStatus{
		elapsed.ID.String(): models.ShiftStatusCompleted,
		running.ID.String(): models.ShiftStatusActive,
		stale.ID.String():   models.ShiftStatusCompleted,
	} {
		var got models.ShiftAssignment
		s.Require().NoError(s.DB.First(&got, "id = ?", id).Error)
		s.Equal(want, got.Status)
	}
}

func (s *ShiftAssignmentRepositoryTestSuite) TestExpireOverdueScheduled() {
	overdue := s.factories.Shifts.Create(s.T(), testutils.Between("00:00", "08:00"))
	stale := s.factories.Shifts.Create(s.T(), testutils.OnDate("2026-03-14"), testutils.Between("08:00", "16:00"))
	running := s.factories.Shifts.Create(s.T(), testutils.Between("08:00", "16:00"))
	active := s.factories.Shifts.Create(s.T(), testutils.Between("00:00", "08:00"), testutils.WithStatus(models.ShiftStatusActive))
	cancelled := s.factories.Shifts.Create(s.T(), testutils.Between("00:00", "08:00"), testutils.WithStatus(models.ShiftStatusCancelled))

	affected, err := s.repo.ExpireOverdueScheduled("2026-03-15", "12:00")
	s.Require().NoError(err)
	s.Equal(int64(2), affected)

	for id, want := range map[string]models.ShiftStatus{
		overdue.ID.String():   models.ShiftStatusCompleted,
		stale.ID.String():     models.ShiftStatusCompleted,
		running.ID.String():   models.ShiftStatusScheduled,
		active.ID.String():    models.ShiftStatusActive,
		cancelled.ID.String(): models.ShiftStatusCancelled,
	} {
		var got models.ShiftAssignment
		s.Require().NoError(s.DB.First(&got, "id = ?", id).Error)
		s.Equal(want, got.Status)
	}
}

func (s *ShiftAssignmentRepositoryTestSuite) TestLockStaffDateReleasedAtCommit() {
	staff := s.factories.Staff.Create(s.T())

	// The advisory lock is transaction scoped, so a later transaction can
	// take the same key once the first commits.
	for i := 0; i < 2; i++ {
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.repo.WithTx(tx).LockStaffDate(staff.ID, "2026-03-15")
		})
		s.Require().NoError(err)
	}
}

func (s *ShiftAssignmentRepositoryTestSuite) TestWithTxRollback() {
	staff := s.factories.Staff.Create(s.T())
	shift := s.factories.Shifts.Build(testutils.ForStaff(staff))

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(shift); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	s.Error(err)

	_, err = s.repo.GetByID(shift.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}
