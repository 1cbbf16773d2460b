package handler

import (
	"context"
	"errors"
	"net/http"

	"prospector-api/internal/models"
	"prospector-api/internal/schema"
	"prospector-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ProspectHandler handles prospect search and retrieval requests
type ProspectHandler struct {
	service ProspectService
}

// Service interface for dependency injection
type ProspectService interface {
	SearchProspects(ctx context.Context, service string, geo models.GeoFilter) (*models.ProspectSet, error)
	GetProspectSet(ctx context.Context, id string) (*models.ProspectSet, error)
}

// SearchRequest documents the search body; decoding goes through schema.ValidateSearchRequest.
type SearchRequest struct {
	Service string     `json:"service" example:"plumbing"`
	Geo     GeoRequest `json:"geo"`
}

// GeoRequest holds either zip or city and state, always with radiusMiles.
type GeoRequest struct {
	Zip         string `json:"zip,omitempty" example:"20878"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	RadiusMiles int    `json:"radiusMiles" example:"15"`
}

// SearchResponse is returned by a successful search.
type SearchResponse struct {
	ProspectSetID string `json:"prospectSetId"`
	Count         int    `json:"count"`
}

// ValidationErrorResponse is returned with 422 when a request body fails validation.
type ValidationErrorResponse struct {
	Error   string              `json:"error"`
	Details []schema.FieldError `json:"details"`
}

// NewProspectHandler creates a new prospect handler
func NewProspectHandler(svc ProspectService) *ProspectHandler {
	return &ProspectHandler{service: svc}
}

// RegisterRoutes mounts the prospect routes on rg
func (h *ProspectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/prospect/search", h.Search)
	rg.GET("/prospect/sets/:id", h.GetSet)
}

// Search handles POST /prospect/search requests
//
//	@Summary	Start a prospect search
//	@Tags		prospecting
//	@Accept		json
//	@Produce	json
//	@Param		request	body		SearchRequest	true	"service and geo filter"
//	@Success	200		{object}	SearchResponse
//	@Failure	422		{object}	ValidationErrorResponse
//	@Router		/prospect/search [post]
func (h *ProspectHandler) Search(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read request body"})
		return
	}

	req, err := schema.ValidateSearchRequest(raw)
	if err != nil {
		var verr *schema.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:   "validation failed",
				Details: verr.Errors,
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	set, err := h.service.SearchProspects(c.Request.Context(), req.Service, req.Geo)
	if err != nil {
		log.Error().Err(err).Str("service", req.Service).Msg("prospect search failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, SearchResponse{ProspectSetID: set.ID, Count: len(set.Leads)})
}

// GetSet handles GET /prospect/sets/:id requests
//
//	@Summary	Get a prospect set
//	@Tags		prospecting
//	@Produce	json
//	@Param		id	path		string	true	"prospect set id"
//	@Success	200	{object}	models.ProspectSet
//	@Failure	404	{object}	map[string]string
//	@Router		/prospect/sets/{id} [get]
func (h *ProspectHandler) GetSet(c *gin.Context) {
	id := c.Param("id")

	set, err := h.service.GetProspectSet(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProspectSetNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Prospect set not found"})
			return
		}
		log.Error().Err(err).Str("prospect_set_id", id).Msg("prospect set lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, set)
}
