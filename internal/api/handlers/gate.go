package handlers

import (
	"net/http"

	"site-security-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// GateHandler handles HTTP requests for the gate catalogue
type GateHandler struct {
	gateService service.GateServiceInterface
}

// NewGateHandler creates a new gate handler
func NewGateHandler(gateService service.GateServiceInterface) *GateHandler {
	return &GateHandler{
		gateService: gateService,
	}
}

// ListGates retrieves the gate catalogue
// @Summary List gates
// @Description List the full gate catalogue: the builtin checkpoint set plus organization-defined codes.
// @Tags gates
// @Accept json
// @Produce json
// @Success 200 {array} service.GateResponse "Gate catalogue"
// @Router /gates [get]
func (h *GateHandler) ListGates(c *gin.Context) {
	gates, err := h.gateService.ListGates()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gates)
}

// GetGate retrieves a gate by location code
// @Summary Get gate by location
// @Tags gates
// @Accept json
// @Produce json
// @Param location path string true "Gate location code"
// @Success 200 {object} service.GateResponse "Gate"
// @Failure 404 {object} ErrorResponse "Gate not found"
// @Router /gates/{location} [get]
func (h *GateHandler) GetGate(c *gin.Context) {
	gate, err := h.gateService.GetGate(c.Param("location"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gate)
}

// CreateGate registers a custom gate code
// @Summary Create a custom gate
// @Tags gates
// @Accept json
// @Produce json
// @Param gate body service.CreateGateRequest true "Gate data"
// @Success 201 {object} service.GateResponse "Successfully created gate"
// @Failure 400 {object} ErrorResponse "Invalid location code"
// @Failure 409 {object} ErrorResponse "Gate already exists"
// @Router /gates [post]
func (h *GateHandler) CreateGate(c *gin.Context) {
	var req service.CreateGateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	gate, err := h.gateService.CreateGate(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gate)
}

// DeleteGate removes a custom gate code
// @Summary Delete a custom gate
// @Description Builtin gates are immutable reference data and cannot be removed.
// @Tags gates
// @Accept json
// @Produce json
// @Param location path string true "Gate location code"
// @Success 200 {object} map[string]string "Gate deleted"
// @Failure 404 {object} ErrorResponse "Gate not found"
// @Failure 409 {object} ErrorResponse "Gate is builtin"
// @Router /gates/{location} [delete]
func (h *GateHandler) DeleteGate(c *gin.Context) {
	if err := h.gateService.DeleteGate(c.Param("location")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "gate deleted"})
}
