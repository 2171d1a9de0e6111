package http

import "github.com/gin-gonic/gin"

// Register registers the attack education routes
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/generates-attack", h.GenerateAttack)
	r.GET("/educate-malware", h.EducateMalware)
	r.GET("/attack-types", h.ListAttackTypes)
}
