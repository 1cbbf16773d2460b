package models

import (
	"fmt"
	"strconv"
)

// Lead represents a single business record belonging to a prospect set.
type Lead struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
	Website *string `json:"website"`
	Source  string  `json:"source"`
}

// LeadFields is what a lead provider returns for one lead, before the store assigns it an id.
type LeadFields struct {
	Name    string
	Address string
	Phone   *string
	Website *string
	Source  string
}

// ProspectSet is the immutable result of one search.
type ProspectSet struct {
	ID        string            `json:"id"`
	Service   string            `json:"service"`
	Geo       map[string]string `json:"geo"`
	CreatedAt float64           `json:"created_at"`
	Leads     []Lead            `json:"leads"`
}

// GeoKind tags which variant a GeoFilter holds.
type GeoKind int

const (
	GeoKindZip GeoKind = iota
	GeoKindCityState
)

// GeoFilter is either a zip code filter or a city/state filter, both with a radius in miles.
type GeoFilter struct {
	Kind        GeoKind
	Zip         string
	City        string
	State       string
	RadiusMiles int
}

// ZipFilter builds the zip variant.
func ZipFilter(zip string, radiusMiles int) GeoFilter {
	return GeoFilter{Kind: GeoKindZip, Zip: zip, RadiusMiles: radiusMiles}
}

// CityStateFilter builds the city/state variant.
func CityStateFilter(city, state string, radiusMiles int) GeoFilter {
	return GeoFilter{Kind: GeoKindCityState, City: city, State: state, RadiusMiles: radiusMiles}
}

// IsZip reports whether the filter is the zip variant.
func (g GeoFilter) IsZip() bool {
	return g.Kind == GeoKindZip
}

// Descriptor is the location label interpolated into lead addresses.
func (g GeoFilter) Descriptor() string {
	if g.IsZip() {
		return g.Zip
	}
	return fmt.Sprintf("%s, %s", g.City, g.State)
}

// Fields flattens the filter into the string map stored on a prospect set.
func (g GeoFilter) Fields() map[string]string {
	radius := strconv.Itoa(g.RadiusMiles)
	if g.IsZip() {
		return map[string]string{"zip": g.Zip, "radiusMiles": radius}
	}
	return map[string]string{"city": g.City, "state": g.State, "radiusMiles": radius}
}

// SearchRequest is a validated prospect search.
type SearchRequest struct {
	Service string
	Geo     GeoFilter
}
