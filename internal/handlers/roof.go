package handlers

import (
	"net/http"

	"gnroof/internal/models"

	"github.com/gin-gonic/gin"
)

// ReadingRequest is one sensor sample. Both fields are required numbers.
type ReadingRequest struct {
	Temp *float64 `json:"temp" example:"23.4"`
	Hum  *float64 `json:"hum" example:"61"`
}

// ToggleRequest sets a hazard toggle. Only true, 1, "1", "true" and "on" mean on.
type ToggleRequest struct {
	On any `json:"on" swaggertype:"boolean" example:"true"`
}

// VentRequest is an operator vent command; cmd is accepted as an alias.
type VentRequest struct {
	Command string `json:"command" example:"OPEN"`
	Cmd     string `json:"cmd,omitempty"`
}

// @Summary      Submit a sensor reading
// @Tags         roof
// @Accept       json
// @Produce      json
// @Param        body  body      ReadingRequest  true  "Reading"
// @Success      200   {object}  models.HazardVerdict
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/readings [post]
// @Security     BearerAuth
func (h *Handler) postReading(c *gin.Context) {
	var req ReadingRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	if req.Temp == nil || req.Hum == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + "temp and hum are required numbers"})
		return
	}

	v, err := h.services.SubmitReading(c.Request.Context(), *req.Temp, *req.Hum)
	if err != nil {
		h.respondServiceError(c, "reading_submit_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Set a hazard toggle
// @Tags         hazards
// @Accept       json
// @Produce      json
// @Param        kind  path      string         true  "rain or smoke"
// @Param        body  body      ToggleRequest  true  "Toggle"
// @Success      200   {object}  map[string]interface{}  "kind, on, verdict"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/hazards/{kind} [post]
// @Security     BearerAuth
func (h *Handler) setHazard(c *gin.Context) {
	kind := hazardParam(c)
	var req ToggleRequest
	if ok := h.bindOptionalJSON(c, &req); !ok {
		return
	}
	on := models.ParseToggle(req.On)

	v, err := h.services.SetHazardToggle(c.Request.Context(), kind, on)
	if err != nil {
		h.respondServiceError(c, "hazard_toggle_failed", err, "hazard", kind)
		return
	}
	c.JSON(http.StatusOK, gin.H{"kind": kind, "on": on, "verdict": v})
}

// @Summary      Clear rain and smoke
// @Description  Logs RESET_HAZARDS and re-evaluates; the vent is not opened
// @Tags         hazards
// @Produce      json
// @Success      200  {object}  models.HazardVerdict
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/v1/hazards/reset [post]
// @Security     BearerAuth
func (h *Handler) resetHazards(c *gin.Context) {
	v, err := h.services.ResetHazards(c.Request.Context(), actor(c))
	if err != nil {
		h.respondServiceError(c, "hazard_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary      Command the vent
// @Tags         roof
// @Accept       json
// @Produce      json
// @Param        body  body      VentRequest  true  "OPEN or CLOSE"
// @Success      200   {object}  service.VentResult
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/vent [post]
// @Security     BearerAuth
func (h *Handler) postVent(c *gin.Context) {
	var req VentRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	cmd := req.Command
	if cmd == "" {
		cmd = req.Cmd
	}

	res, err := h.services.IssueVentCommand(c.Request.Context(), cmd, actor(c))
	if err != nil {
		h.respondServiceError(c, "vent_command_failed", err, "command", cmd)
		return
	}
	c.JSON(http.StatusOK, res)
}
