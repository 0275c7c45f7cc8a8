package handlers

import (
	"errors"
	"io"
	"net/http"

	"gnroof/internal/repository"
	"gnroof/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errInvalidBodyPref = "invalid body: "
	errStoreMsg        = "storage unavailable"
	errWeatherMsg      = "weather service unavailable"
	errInternalMsg     = "internal error"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// respondServiceError maps a service error kind to its status code.
// Validation messages are safe to show; store and upstream details are not.
func (h *Handler) respondServiceError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	switch {
	case errors.Is(err, service.ErrValidation):
		if h.log != nil {
			h.log.Infow(logKey, append([]interface{}{"err", err}, kv...)...)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotAuthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": service.ErrNotAuthenticated.Error()})
	case errors.Is(err, repository.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrStoreUnavailable):
		h.logAndJSONError(c, http.StatusServiceUnavailable, errStoreMsg, logKey, err, kv...)
	case errors.Is(err, service.ErrWeatherUnavailable):
		h.logAndJSONError(c, http.StatusBadGateway, errWeatherMsg, logKey, err, kv...)
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errInternalMsg, logKey, err, kv...)
	}
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return false
	}
	return true
}

// bindOptionalJSON is bindJSONOrBadRequest where an empty body reads as {}.
func (h *Handler) bindOptionalJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if h.log != nil {
		h.log.Infow("bad_request_body", "path", c.FullPath(), "err", err)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
	return false
}
