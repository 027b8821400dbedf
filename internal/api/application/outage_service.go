package application

import (
	"context"

	monitorapp "downtimed/internal/monitor/application"
	monitordomain "downtimed/internal/monitor/domain"
)

// OutageService handles outage queries
type OutageService struct {
	monitor *monitorapp.Service
}

// NewOutageService creates a new outage service
func NewOutageService(monitor *monitorapp.Service) *OutageService {
	return &OutageService{
		monitor: monitor,
	}
}

// ListOutages returns outages matching the filters
func (s *OutageService) ListOutages(ctx context.Context, req ListOutagesRequest) ([]OutageResponse, error) {
	filters := monitordomain.OutageFilters{
		From:   req.From,
		To:     req.To,
		Limit:  req.Limit,
		Offset: req.Offset,
	}

	if filters.Limit <= 0 {
		filters.Limit = 100
	}

	outages, err := s.monitor.ListOutages(ctx, filters)
	if err != nil {
		return nil, err
	}

	responses := make([]OutageResponse, len(outages))
	for i, o := range outages {
		responses[i] = ToOutageResponse(o)
	}

	return responses, nil
}
