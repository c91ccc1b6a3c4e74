package handlers_test

import (
	"net/http"
	"testing"

	"site-security-backend/internal/api/handlers"
	"site-security-backend/internal/database/models"
	apperrors "site-security-backend/internal/errors"
	"site-security-backend/internal/mocks"
	"site-security-backend/internal/service"
	"site-security-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupShiftRouter(t *testing.T) (*testutils.HTTPTestSuite, *mocks.MockShiftServiceInterface) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockShiftServiceInterface(ctrl)
	handler := handlers.NewShiftHandler(svc)

	h := testutils.SetupHTTPTest()
	h.Router.POST("/shifts", handler.CreateShift)
	h.Router.GET("/shifts", handler.ListShifts)
	h.Router.GET("/shifts/:id", handler.GetShift)
	h.Router.PATCH("/shifts/:id", handler.UpdateShift)
	h.Router.POST("/shifts/:id/cancel", handler.CancelShift)
	h.Router.POST("/shifts/:id/missed", handler.MarkShiftMissed)
	return h, svc
}

func TestShiftHandler_CreateShift(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		staffID := uuid.New()
		svc.EXPECT().Create(gomock.Any()).Return(&service.ShiftResponse{
			ID:           uuid.New(),
			StaffID:      staffID,
			GateLocation: models.GateMain,
			Status:       models.ShiftStatusScheduled,
		}, nil)

		rec := h.MakeRequest(t, http.MethodPost, "/shifts", service.CreateShiftRequest{
			StaffID:      staffID,
			GateLocation: models.GateMain,
			ShiftDate:    "2026-03-15",
			StartTime:    "08:00",
			EndTime:      "16:00",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp service.ShiftResponse
		testutils.DecodeJSON(t, rec, &resp)
		assert.Equal(t, models.ShiftStatusScheduled, resp.Status)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := setupShiftRouter(t)
		rec := h.MakeRequest(t, http.MethodPost, "/shifts", "not a shift")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("overlap maps to 409", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		svc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewConflictError("Dana Reyes", "2026-03-15", "08:00-16:00"))

		rec := h.MakeRequest(t, http.MethodPost, "/shifts", service.CreateShiftRequest{
			StaffID:      uuid.New(),
			GateLocation: models.GateMain,
			ShiftDate:    "2026-03-15",
			StartTime:    "08:00",
			EndTime:      "16:00",
		})
		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp handlers.ErrorResponse
		testutils.DecodeJSON(t, rec, &resp)
		assert.Contains(t, resp.Error, "Dana Reyes")
	})

	t.Run("validation maps to 400", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		svc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.NewValidationError("staff_id", "staff member is not active"))

		rec := h.MakeRequest(t, http.MethodPost, "/shifts", service.CreateShiftRequest{
			StaffID:      uuid.New(),
			GateLocation: models.GateMain,
			ShiftDate:    "2026-03-15",
			StartTime:    "08:00",
			EndTime:      "16:00",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestShiftHandler_GetShift(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		h, _ := setupShiftRouter(t)
		rec := h.MakeRequest(t, http.MethodGet, "/shifts/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found maps to 404", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		id := uuid.New()
		svc.EXPECT().GetByID(id).Return(nil, apperrors.ErrShiftNotFound)

		rec := h.MakeRequest(t, http.MethodGet, "/shifts/"+id.String(), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestShiftHandler_ListShifts(t *testing.T) {
	t.Run("passes filters through", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		staffID := uuid.New()
		svc.EXPECT().List(gomock.Any(), 2, 10).DoAndReturn(
			func(filter service.ShiftListFilter, page, pageSize int) (*service.ShiftListResponse, error) {
				assert.Equal(t, "2026-03-15", filter.ShiftDate)
				assert.Equal(t, models.GateMain, filter.GateLocation)
				assert.Equal(t, staffID, *filter.StaffID)
				assert.Equal(t, "scheduled", filter.Status)
				return &service.ShiftListResponse{Page: page, PageSize: pageSize}, nil
			})

		rec := h.MakeRequest(t, http.MethodGet,
			"/shifts?date=2026-03-15&gate=main_gate&staff_id="+staffID.String()+"&status=scheduled&page=2&page_size=10", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid staff id", func(t *testing.T) {
		h, _ := setupShiftRouter(t)
		rec := h.MakeRequest(t, http.MethodGet, "/shifts?staff_id=nope", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestShiftHandler_UpdateShift(t *testing.T) {
	t.Run("terminal shift maps to 409", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		id := uuid.New()
		svc.EXPECT().Update(id, gomock.Any()).Return(nil, apperrors.NewInvalidStateError("shift assignment", "completed", "updated"))

		rec := h.MakeRequest(t, http.MethodPatch, "/shifts/"+id.String(), map[string]string{"start_time": "09:00"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestShiftHandler_CancelShift(t *testing.T) {
	t.Run("cancelled", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		id := uuid.New()
		svc.EXPECT().Cancel(id).Return(nil)

		rec := h.MakeRequest(t, http.MethodPost, "/shifts/"+id.String()+"/cancel", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("active shift maps to 409", func(t *testing.T) {
		h, svc := setupShiftRouter(t)
		id := uuid.New()
		svc.EXPECT().Cancel(id).Return(apperrors.NewInvalidStateError("shift assignment", "active", "cancelled"))

		rec := h.MakeRequest(t, http.MethodPost, "/shifts/"+id.String()+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestShiftHandler_MarkShiftMissed(t *testing.T) {
	h, svc := setupShiftRouter(t)
	id := uuid.New()
	svc.EXPECT().MarkMissed(id).Return(nil)

	rec := h.MakeRequest(t, http.MethodPost, "/shifts/"+id.String()+"/missed", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
