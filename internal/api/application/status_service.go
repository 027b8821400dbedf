package application

import (
	"context"

	monitorapp "downtimed/internal/monitor/application"
)

// StatusService handles status queries
type StatusService struct {
	monitor *monitorapp.Service
}

// NewStatusService creates a new status service
func NewStatusService(monitor *monitorapp.Service) *StatusService {
	return &StatusService{
		monitor: monitor,
	}
}

// GetStatus returns the monitor's current status
func (s *StatusService) GetStatus(ctx context.Context) (StatusResponse, error) {
	status, err := s.monitor.Status(ctx)
	if err != nil {
		return StatusResponse{}, err
	}

	return ToStatusResponse(status), nil
}
