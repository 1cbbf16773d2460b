package service

import (
	"context"
	"errors"
	"fmt"

	"prospector-api/internal/metrics"
	"prospector-api/internal/models"
	"prospector-api/internal/provider"
	"prospector-api/internal/repository"

	"github.com/rs/zerolog/log"
)

// ErrProspectSetNotFound is returned when a prospect set id is unknown.
var ErrProspectSetNotFound = errors.New("service: prospect set not found")

// ProspectService contains the core business logic for prospect searches
type ProspectService struct {
	repo     ProspectRepository
	provider provider.LeadProvider
}

// ProspectRepository interface for dependency injection
type ProspectRepository interface {
	CreateSet(ctx context.Context, service string, geo map[string]string, leads []models.LeadFields) (*models.ProspectSet, error)
	GetByID(ctx context.Context, id string) (*models.ProspectSet, error)
}

// NewProspectService creates a new prospect service
func NewProspectService(repo ProspectRepository, leadProvider provider.LeadProvider) *ProspectService {
	return &ProspectService{repo: repo, provider: leadProvider}
}

// SearchProspects asks the lead provider for leads and stores them as a new prospect set
func (s *ProspectService) SearchProspects(ctx context.Context, service string, geo models.GeoFilter) (*models.ProspectSet, error) {
	if service == "" {
		return nil, fmt.Errorf("service: service term cannot be empty")
	}

	leads, err := s.provider.FindLeads(ctx, service, geo)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find leads: %w", err)
	}
	leads = provider.Dedupe(leads)

	set, err := s.repo.CreateSet(ctx, service, geo.Fields(), leads)
	if err != nil {
		return nil, fmt.Errorf("service: failed to create prospect set: %w", err)
	}

	metrics.ProspectSetsCreated.Inc()
	for _, lead := range set.Leads {
		metrics.LeadsGenerated.WithLabelValues(lead.Source).Inc()
	}

	log.Debug().
		Str("prospect_set_id", set.ID).
		Str("service", service).
		Str("provider", s.provider.Name()).
		Int("leads", len(set.Leads)).
		Msg("prospect set created")

	return set, nil
}

// GetProspectSet returns the prospect set stored under id
func (s *ProspectService) GetProspectSet(ctx context.Context, id string) (*models.ProspectSet, error) {
	set, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			metrics.ProspectSetLookups.WithLabelValues("miss").Inc()
			return nil, fmt.Errorf("%w: %w", ErrProspectSetNotFound, err)
		}
		metrics.ProspectSetLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("service: failed to get prospect set: %w", err)
	}

	metrics.ProspectSetLookups.WithLabelValues("hit").Inc()
	return set, nil
}
