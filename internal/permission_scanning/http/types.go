package http

import (
	"github.com/blockguard/blockguard-backend/internal/permission_scanning/scanner"
	"github.com/sirupsen/logrus"
)

type ScanRequest struct {
	ContractCode string `json:"contractCode"`
}

// Handler serves the permission scan route
type Handler struct {
	scanner *scanner.Scanner
	log     logrus.FieldLogger
}

// New creates a new Handler
func New(s *scanner.Scanner, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{
		scanner: s,
		log:     log,
	}
}
