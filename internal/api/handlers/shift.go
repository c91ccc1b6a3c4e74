package handlers

import (
	"net/http"

	"site-security-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ShiftHandler handles HTTP requests for shift assignments
type ShiftHandler struct {
	shiftService service.ShiftServiceInterface
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(shiftService service.ShiftServiceInterface) *ShiftHandler {
	return &ShiftHandler{
		shiftService: shiftService,
	}
}

// CreateShift creates a new shift assignment
// @Summary Create a shift assignment
// @Description Assign a staff member to a gate for a time-boxed shift. The staff member must be active and must not already hold an overlapping shift on the same date.
// @Tags shifts
// @Accept json
// @Produce json
// @Param shift body service.CreateShiftRequest true "Shift data"
// @Success 201 {object} service.ShiftResponse "Successfully created shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or fields"
// @Failure 409 {object} ErrorResponse "Overlapping shift for this staff member"
// @Router /shifts [post]
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req service.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	shift, err := h.shiftService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shift)
}

// GetShift retrieves a shift assignment by ID
// @Summary Get shift by ID
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} service.ShiftResponse "Successfully retrieved shift"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Router /shifts/{id} [get]
func (h *ShiftHandler) GetShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	shift, err := h.shiftService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// ListShifts retrieves shift assignments with optional filters
// @Summary List shift assignments
// @Description List shifts filtered by date, gate, staff member and status, with pagination.
// @Tags shifts
// @Accept json
// @Produce json
// @Param date query string false "Shift date (YYYY-MM-DD)"
// @Param gate query string false "Gate location code"
// @Param staff_id query string false "Staff member ID (UUID)"
// @Param status query string false "Shift status" Enums(scheduled, active, completed, missed, cancelled)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.ShiftListResponse "Successfully retrieved shifts"
// @Failure 400 {object} ErrorResponse "Invalid filter parameters"
// @Router /shifts [get]
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	filter := service.ShiftListFilter{
		ShiftDate:    c.Query("date"),
		GateLocation: c.Query("gate"),
		Status:       c.Query("status"),
	}

	if staffIDStr := c.Query("staff_id"); staffIDStr != "" {
		staffID, err := uuid.Parse(staffIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff ID"})
			return
		}
		filter.StaffID = &staffID
	}

	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 20)

	shifts, err := h.shiftService.List(filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shifts)
}

// UpdateShift applies a partial update to a shift assignment
// @Summary Update a shift assignment
// @Description Re-validates touched fields, re-checking conflicts against other shifts while excluding the shift's own window.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Param shift body service.UpdateShiftRequest true "Fields to update"
// @Success 200 {object} service.ShiftResponse "Successfully updated shift"
// @Failure 400 {object} ErrorResponse "Invalid request body or fields"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Overlapping shift or terminal status"
// @Router /shifts/{id} [patch]
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	var req service.UpdateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	shift, err := h.shiftService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shift)
}

// CancelShift cancels a scheduled shift
// @Summary Cancel a shift assignment
// @Description Moves a scheduled shift to cancelled. Shifts with recorded activity are retained for history and cannot be cancelled.
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} map[string]string "Shift cancelled"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift is not in scheduled status"
// @Router /shifts/{id}/cancel [post]
func (h *ShiftHandler) CancelShift(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	if err := h.shiftService.Cancel(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shift cancelled"})
}

// MarkShiftMissed records an operator-observed no-show
// @Summary Mark an active shift as missed
// @Tags shifts
// @Accept json
// @Produce json
// @Param id path string true "Shift ID (UUID)"
// @Success 200 {object} map[string]string "Shift marked missed"
// @Failure 400 {object} ErrorResponse "Invalid shift ID"
// @Failure 404 {object} ErrorResponse "Shift not found"
// @Failure 409 {object} ErrorResponse "Shift is not in active status"
// @Router /shifts/{id}/missed [post]
func (h *ShiftHandler) MarkShiftMissed(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid shift ID"})
		return
	}

	if err := h.shiftService.MarkMissed(id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "shift marked missed"})
}
