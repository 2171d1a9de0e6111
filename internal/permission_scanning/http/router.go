package http

import "github.com/gin-gonic/gin"

// Register registers the permission scan routes
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/scan-permissions", h.ScanPermissions)
}
