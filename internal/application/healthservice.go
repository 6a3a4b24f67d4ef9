package application

import (
	"github.com/caffxin/studiosite/internal/domain/model"
)

// RelayMode names how contact submissions leave the server.
type RelayMode string

const (
	RelayModeEmailJS RelayMode = "emailjs"
	RelayModeLog     RelayMode = "log"
)

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
)

// HealthReport is the liveness view served by the health endpoint.
type HealthReport struct {
	Status  string
	Source  string
	Relay   RelayMode
	Content map[model.Kind]int
}

// HealthService reports what the running site has loaded. It depends only on
// the registry, so it never blocks.
type HealthService struct {
	registry *ContentRegistry
	source   string
	relay    RelayMode
}

// NewHealthService creates a HealthService. source names the content source
// the catalog came from ("embedded" or "sqlite").
func NewHealthService(registry *ContentRegistry, source string, relay RelayMode) *HealthService {
	return &HealthService{registry: registry, source: source, relay: relay}
}

// Report returns the current health. The site is "degraded" when it has no
// services or portfolio projects to show.
func (s *HealthService) Report() HealthReport {
	counts := s.registry.Counts()
	status := StatusOK
	if counts[model.KindServices] == 0 || counts[model.KindPortfolio] == 0 {
		status = StatusDegraded
	}
	return HealthReport{
		Status:  status,
		Source:  s.source,
		Relay:   s.relay,
		Content: counts,
	}
}
