package handlers

import (
	"net/http"

	"gnroof/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Pull current weather as a reading
// @Description  city and key fall back to the configured defaults
// @Tags         roof
// @Accept       json
// @Produce      json
// @Param        body  body      service.WeatherQuery  false  "Query"
// @Success      200   {object}  service.WeatherPull
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/weather/pull [post]
// @Security     BearerAuth
func (h *Handler) pullWeather(c *gin.Context) {
	var q service.WeatherQuery
	if ok := h.bindOptionalJSON(c, &q); !ok {
		return
	}

	p, err := h.services.Pull(c.Request.Context(), q)
	if err != nil {
		h.respondServiceError(c, "weather_pull_failed", err, "city", q.City)
		return
	}
	c.JSON(http.StatusOK, p)
}
