package http

import (
	"net/http"

	"github.com/blockguard/blockguard-backend/internal/api/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ScanPermissions runs the rule table over the submitted contract source.
// A missing contractCode is scanned as an empty string.
func (h *Handler) ScanPermissions(c *gin.Context) {
	var body ScanRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report := h.scanner.Scan(body.ContractCode)

	h.log.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c.Request.Context()),
		"score":      report.Score,
		"bytes":      len(body.ContractCode),
	}).Debug("permission scan completed")

	c.JSON(http.StatusOK, report)
}
