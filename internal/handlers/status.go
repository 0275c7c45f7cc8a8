package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Roof status
// @Description  Vent position, toggles, latest reading and the current hazard verdict
// @Tags         roof
// @Produce      json
// @Success      200  {object}  service.Status
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/status [get]
func (h *Handler) getStatus(c *gin.Context) {
	st, err := h.services.GetStatus(c.Request.Context())
	if err != nil {
		h.respondServiceError(c, "status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}
