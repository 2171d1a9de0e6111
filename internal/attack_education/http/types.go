package http

import "github.com/blockguard/blockguard-backend/internal/attack_education/catalog"

type GenerateAttackRequest struct {
	Type any `json:"type"`
}

type AttackTypesResponse struct {
	Types []string `json:"types"`
}

// Handler serves the static attack education routes
type Handler struct {
	catalog *catalog.Catalog
}

// New creates a new Handler
func New(c *catalog.Catalog) *Handler {
	return &Handler{catalog: c}
}
