package provider

import (
	"context"
	"fmt"

	"prospector-api/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// MockName is the registry name and lead source tag of the mock provider.
	MockName = "mock"

	mockLeadCount = 5
)

// MockProvider synthesizes a fixed batch of fake leads without calling anything external.
type MockProvider struct{}

// NewMockProvider creates the mock lead provider
func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

// Name implements LeadProvider.
func (p *MockProvider) Name() string {
	return MockName
}

// FindLeads returns five leads numbered 1..5 whose addresses carry the geo descriptor
func (p *MockProvider) FindLeads(ctx context.Context, service string, geo models.GeoFilter) ([]models.LeadFields, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("provider: mock search: %w", err)
	}

	// a Caser is stateful and must not be shared between goroutines
	serviceTitle := cases.Title(language.English).String(service)
	location := geo.Descriptor()

	leads := make([]models.LeadFields, 0, mockLeadCount)
	for i := 1; i <= mockLeadCount; i++ {
		phone := fmt.Sprintf("+1-555-000-%04d", i)
		website := fmt.Sprintf("https://mock%d.com", i)

		leads = append(leads, models.LeadFields{
			Name:    fmt.Sprintf("Mock %s Service %d", serviceTitle, i),
			Address: fmt.Sprintf("Mock Address %d, %s", i, location),
			Phone:   &phone,
			Website: &website,
			Source:  MockName,
		})
	}

	return leads, nil
}
