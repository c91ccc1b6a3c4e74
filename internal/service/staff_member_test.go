package service_test

import (
	"context"
	"testing"
	"time"

	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/mocks"
	"site-security-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func TestStaffService_CreateStaffMember(t *testing.T) {
	v := validator.New()

	t.Run("defaults role and composes the full name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(staff *models.StaffMember) error {
			staff.ID = uuid.New()
			return nil
		})

		svc := service.NewStaffService(repo, v)
		resp, err := svc.CreateStaffMember(&service.CreateStaffRequest{
			FirstName: "  Dana ",
			LastName:  " Reyes  ",
		})
		require.NoError(t, err)
		assert.Equal(t, "Dana Reyes", resp.FullName)
		assert.Equal(t, models.StaffRoleGuard, resp.Role)
		assert.True(t, resp.IsActive)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)

		svc := service.NewStaffService(repo, v)
		_, err := svc.CreateStaffMember(&service.CreateStaffRequest{
			FirstName: "Dana",
			LastName:  "Reyes",
			Role:      models.StaffRole("janitor"),
		})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects missing names", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)

		svc := service.NewStaffService(repo, v)
		_, err := svc.CreateStaffMember(&service.CreateStaffRequest{FirstName: "Dana"})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestStaffService_GetStaffMember(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		id := uuid.New()
		repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewStaffService(repo, validator.New())
		_, err := svc.GetStaffMember(id)
		assert.ErrorIs(t, err, apperrors.ErrStaffMemberNotFound)
	})
}

func TestStaffService_UpdateStaffMember(t *testing.T) {
	v := validator.New()
	id := uuid.New()
	existing := func() *models.StaffMember {
		return &models.StaffMember{
			FirstName: "Dana",
			LastName:  "Reyes",
			FullName:  "Dana Reyes",
			Role:      models.StaffRoleGuard,
			IsActive:  true,
		}
	}

	t.Run("deactivation toggle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		repo.EXPECT().GetByID(id).Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any()).Return(nil)

		svc := service.NewStaffService(repo, v)
		inactive := false
		resp, err := svc.UpdateStaffMember(id, &service.UpdateStaffRequest{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, resp.IsActive)
	})

	t.Run("name change recomposes the full name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		repo.EXPECT().GetByID(id).Return(existing(), nil)
		repo.EXPECT().Update(gomock.Any()).Return(nil)

		svc := service.NewStaffService(repo, v)
		last := "Alvarez"
		resp, err := svc.UpdateStaffMember(id, &service.UpdateStaffRequest{LastName: &last})
		require.NoError(t, err)
		assert.Equal(t, "Dana Alvarez", resp.FullName)
	})

	t.Run("rejects clearing a name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		repo.EXPECT().GetByID(id).Return(existing(), nil)

		svc := service.NewStaffService(repo, v)
		empty := "  "
		_, err := svc.UpdateStaffMember(id, &service.UpdateStaffRequest{FirstName: &empty})
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestStaffService_GetStaff(t *testing.T) {
	t.Run("respects the caller's deadline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		id := uuid.New()
		repo.EXPECT().GetByID(id).DoAndReturn(func(uuid.UUID) (*models.StaffMember, error) {
			time.Sleep(200 * time.Millisecond)
			return &models.StaffMember{}, nil
		}).MaxTimes(1)

		svc := service.NewStaffService(repo, validator.New())
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := svc.GetStaff(ctx, id)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("maps a missing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockStaffMemberRepositoryInterface(ctrl)
		id := uuid.New()
		repo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

		svc := service.NewStaffService(repo, validator.New())
		_, err := svc.GetStaff(context.Background(), id)
		assert.ErrorIs(t, err, apperrors.ErrStaffMemberNotFound)
	})
}
