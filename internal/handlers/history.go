package handlers

import (
	"net/http"
	"strconv"

	"gnroof/internal/models"
	"gnroof/internal/service"

	"github.com/gin-gonic/gin"
)

// parseLimit reads ?limit=N. Absent means the default; range checks happen in the service.
func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return service.DefaultHistoryLimit, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit: must be an integer"})
		return 0, false
	}
	return n, true
}

// @Summary      Reading history
// @Description  Most recent readings, oldest first
// @Tags         history
// @Produce      json
// @Param        limit  query     int  false  "max rows (1..1000, default 50)"
// @Success      200    {array}   models.Reading
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/history/readings [get]
func (h *Handler) getReadings(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	rows, err := h.services.Readings(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, "history_readings_failed", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(rows))
}

// @Summary      Hazard history
// @Description  Rain or smoke samples as {ts, val}, oldest first
// @Tags         history
// @Produce      json
// @Param        kind   path      string  true   "rain or smoke"
// @Param        limit  query     int     false  "max rows (1..1000, default 50)"
// @Success      200    {array}   models.HazardSample
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/history/{kind} [get]
func (h *Handler) getHazardHistory(c *gin.Context) {
	kind := hazardParam(c)
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	rows, err := h.services.HazardSamples(c.Request.Context(), kind, limit)
	if err != nil {
		h.respondServiceError(c, "history_hazard_failed", err, "hazard", kind)
		return
	}
	c.JSON(http.StatusOK, nonNil(rows))
}

// @Summary      Control log
// @Description  Vent transitions and hazard resets, oldest first
// @Tags         history
// @Produce      json
// @Param        limit  query     int  false  "max rows (1..1000, default 50)"
// @Success      200    {array}   models.ControlLogEntry
// @Failure      400    {object}  map[string]string
// @Router       /api/v1/control-log [get]
func (h *Handler) getControlLog(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	rows, err := h.services.ControlLog(c.Request.Context(), limit)
	if err != nil {
		h.respondServiceError(c, "control_log_failed", err)
		return
	}
	c.JSON(http.StatusOK, nonNil(rows))
}

// hazardParam normalizes the :kind segment; unknown kinds are rejected by the service.
func hazardParam(c *gin.Context) models.HazardKind {
	if kind, ok := models.ParseHazardKind(c.Param("kind")); ok {
		return kind
	}
	return models.HazardKind(c.Param("kind"))
}

// nonNil renders an empty history as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
