package handlers

import (
	"net/http"
	"time"

	"site-security-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoverageHandler handles HTTP requests for gate coverage views
type CoverageHandler struct {
	coverageService service.CoverageServiceInterface
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(coverageService service.CoverageServiceInterface) *CoverageHandler {
	return &CoverageHandler{
		coverageService: coverageService,
	}
}

// GetCoverage retrieves the live coverage state of one gate
// @Summary Gate coverage
// @Description Derive the current coverage state of a gate: who is on duty now and who is scheduled next. Dashboards poll this endpoint.
// @Tags coverage
// @Accept json
// @Produce json
// @Param location path string true "Gate location code"
// @Success 200 {object} service.CoverageView "Coverage state"
// @Failure 404 {object} ErrorResponse "Gate not found"
// @Router /coverage/{location} [get]
func (h *CoverageHandler) GetCoverage(c *gin.Context) {
	location := c.Param("location")

	view, err := h.coverageService.CoverageFor(c.Request.Context(), location, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// GetCoverageSummary retrieves the organization-wide coverage rate
// @Summary Coverage summary
// @Description Aggregate per-gate coverage into covered/total gate counts and a coverage rate in [0,1].
// @Tags coverage
// @Accept json
// @Produce json
// @Success 200 {object} service.CoverageSummaryResponse "Coverage summary"
// @Router /coverage [get]
func (h *CoverageHandler) GetCoverageSummary(c *gin.Context) {
	summary, err := h.coverageService.CoverageSummary(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
