package handlers

import (
	"net/http"

	"site-security-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// StaffHandler handles HTTP requests for staff members
type StaffHandler struct {
	staffService service.StaffServiceInterface
	ldapService  service.LDAPServiceInterface
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staffService service.StaffServiceInterface, ldapService service.LDAPServiceInterface) *StaffHandler {
	return &StaffHandler{
		staffService: staffService,
		ldapService:  ldapService,
	}
}

// CreateStaff registers a new staff member
// @Summary Register a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Param staff body service.CreateStaffRequest true "Staff data"
// @Success 201 {object} service.StaffResponse "Successfully registered staff member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Badge number or email already registered"
// @Router /staff [post]
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req service.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	staff, err := h.staffService.CreateStaffMember(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, staff)
}

// GetStaff retrieves a staff member by ID
// @Summary Get staff member by ID
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID (UUID)"
// @Success 200 {object} service.StaffResponse "Successfully retrieved staff member"
// @Failure 400 {object} ErrorResponse "Invalid staff ID"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id} [get]
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff ID"})
		return
	}

	staff, err := h.staffService.GetStaffMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// ListStaff retrieves staff members with pagination
// @Summary List staff members
// @Tags staff
// @Accept json
// @Produce json
// @Param active query bool false "Only active (assignable) staff"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.StaffListResponse "Successfully retrieved staff list"
// @Router /staff [get]
func (h *StaffHandler) ListStaff(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "page_size", 20)

	staff, err := h.staffService.ListStaffMembers(activeOnly, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// UpdateStaff applies a partial update to a staff member
// @Summary Update a staff member
// @Description Partial update, including activating or deactivating a staff member. Deactivated staff keep their shift history but cannot receive new shifts.
// @Tags staff
// @Accept json
// @Produce json
// @Param id path string true "Staff member ID (UUID)"
// @Param staff body service.UpdateStaffRequest true "Fields to update"
// @Success 200 {object} service.StaffResponse "Successfully updated staff member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Staff member not found"
// @Router /staff/{id} [patch]
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid staff ID"})
		return
	}

	var req service.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	staff, err := h.staffService.UpdateStaffMember(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, staff)
}

// SearchDirectory searches the corporate directory by common name
// @Summary Search the corporate directory
// @Description Prefix search by common name, used when registering staff members from the corporate directory.
// @Tags staff
// @Accept json
// @Produce json
// @Param cn query string true "Common name prefix"
// @Success 200 {array} service.DirectoryUser "Directory matches"
// @Failure 400 {object} ErrorResponse "Missing cn parameter"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Router /staff/directory/search [get]
func (h *StaffHandler) SearchDirectory(c *gin.Context) {
	cn := c.Query("cn")
	if cn == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "query parameter 'cn' is required"})
		return
	}

	users, err := h.ldapService.SearchUsersByCN(cn)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
