package http

import (
	"errors"
	"net/http"

	"github.com/blockguard/blockguard-backend/internal/attack_education/domain"
	"github.com/gin-gonic/gin"
)

// GenerateAttack returns the exploit template for the requested attack type.
// A missing or non-string type is treated as unknown.
func (h *Handler) GenerateAttack(c *gin.Context) {
	var body GenerateAttackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	attackType, _ := body.Type.(string)
	tpl, err := h.catalog.Lookup(attackType)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownAttackType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown attack type"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load attack template"})
		return
	}

	c.JSON(http.StatusOK, tpl)
}

func (h *Handler) EducateMalware(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog.Malware())
}

func (h *Handler) ListAttackTypes(c *gin.Context) {
	c.JSON(http.StatusOK, AttackTypesResponse{Types: h.catalog.Types()})
}
