package application

import (
	"time"

	monitorapp "downtimed/internal/monitor/application"
	monitordomain "downtimed/internal/monitor/domain"
)

// StatusResponse represents the monitor status in API responses
type StatusResponse struct {
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	BootTime      *time.Time `json:"boot_time,omitempty"`
	IntervalSecs  int        `json:"interval_seconds"`
}

// OutageResponse represents one downtime interval in API responses. Started
// is absent for the no-prior-record startup case.
type OutageResponse struct {
	Started *time.Time `json:"started,omitempty"`
	Ended   time.Time  `json:"ended"`
	NoPrior bool       `json:"no_prior"`
}

// ListOutagesRequest represents query parameters for listing outages
type ListOutagesRequest struct {
	From   *time.Time `json:"from,omitempty"`
	To     *time.Time `json:"to,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}

// ErrorResponse represents an API error
type ErrorResponse struct {
	Error string `json:"error"`
}

// ToStatusResponse converts a monitor status to its API representation
func ToStatusResponse(status monitorapp.Status) StatusResponse {
	return StatusResponse{
		LastHeartbeat: status.LastHeartbeat,
		BootTime:      status.BootTime,
		IntervalSecs:  int(status.Interval / time.Second),
	}
}

// ToOutageResponse converts a domain outage to its API representation
func ToOutageResponse(outage monitordomain.Outage) OutageResponse {
	return OutageResponse{
		Started: outage.Started,
		Ended:   outage.Ended,
		NoPrior: outage.Started == nil,
	}
}
