// Package provider holds the lead sources a prospect search draws from.
//
// A LeadProvider turns a service term and a geo filter into lead field sets. The store assigns
// ids and builds the prospect set afterwards, so a provider never deals with identifiers or
// persistence. Only the mock provider is registered; real integrations plug in by registering
// another LeadProvider under its own name.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"prospector-api/internal/models"
)

// ErrUnknownProvider is returned when a provider name is not registered.
var ErrUnknownProvider = errors.New("provider: unknown lead provider")

// LeadProvider finds leads for a service around a location.
type LeadProvider interface {
	Name() string
	FindLeads(ctx context.Context, service string, geo models.GeoFilter) ([]models.LeadFields, error)
}

// Registry maps provider names to providers.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]LeadProvider
}

// NewRegistry returns a registry with the mock provider registered.
func NewRegistry() *Registry {
	r := &Registry{providers: make(map[string]LeadProvider)}
	r.Register(NewMockProvider())
	return r
}

// Register adds p under p.Name(), replacing any provider with the same name.
func (r *Registry) Register(p LeadProvider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[p.Name()] = p
}

// Get returns the provider registered under name.
func (r *Registry) Get(name string) (LeadProvider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, name)
	}
	return p, nil
}

// Names lists the registered provider names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
