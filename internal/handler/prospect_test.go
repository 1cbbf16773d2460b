package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"prospector-api/internal/models"
	"prospector-api/internal/repository"
	"prospector-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProspectService is a mock implementation of the ProspectService interface
type MockProspectService struct {
	mock.Mock
}

func (m *MockProspectService) SearchProspects(ctx context.Context, svc string, geo models.GeoFilter) (*models.ProspectSet, error) {
	args := m.Called(ctx, svc, geo)
	set, _ := args.Get(0).(*models.ProspectSet)
	return set, args.Error(1)
}

func (m *MockProspectService) GetProspectSet(ctx context.Context, id string) (*models.ProspectSet, error) {
	args := m.Called(ctx, id)
	set, _ := args.Get(0).(*models.ProspectSet)
	return set, args.Error(1)
}

func strPtr(s string) *string { return &s }

func sampleSet(n int) *models.ProspectSet {
	set := &models.ProspectSet{
		ID:        "set_1a2b3c4d",
		Service:   "plumbing",
		Geo:       map[string]string{"zip": "20878", "radiusMiles": "15"},
		CreatedAt: 1700000000.25,
	}
	for i := 1; i <= n; i++ {
		set.Leads = append(set.Leads, models.Lead{
			ID:      fmt.Sprintf("lead_0000000%d", i),
			Name:    fmt.Sprintf("Mock Plumbing Service %d", i),
			Address: fmt.Sprintf("Mock Address %d, 20878", i),
			Phone:   strPtr(fmt.Sprintf("+1-555-000-%04d", i)),
			Website: strPtr(fmt.Sprintf("https://mock%d.com", i)),
			Source:  "mock",
		})
	}
	return set
}

func TestProspectHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		expectCall     bool
		service        string
		geo            models.GeoFilter
		mockSet        *models.ProspectSet
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "successful zip search",
			body:           `{"service":"plumbing","geo":{"zip":"20878","radiusMiles":15}}`,
			expectCall:     true,
			service:        "plumbing",
			geo:            models.ZipFilter("20878", 15),
			mockSet:        sampleSet(5),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"prospectSetId":"set_1a2b3c4d","count":5}`,
		},
		{
			name:           "successful city and state search",
			body:           `{"service":"roofing","geo":{"city":"Austin","state":"TX","radiusMiles":20}}`,
			expectCall:     true,
			service:        "roofing",
			geo:            models.CityStateFilter("Austin", "TX", 20),
			mockSet:        sampleSet(3),
			expectedStatus: http.StatusOK,
			expectedBody:   `{"prospectSetId":"set_1a2b3c4d","count":3}`,
		},
		{
			name:           "service error",
			body:           `{"service":"plumbing","geo":{"zip":"20878","radiusMiles":15}}`,
			expectCall:     true,
			service:        "plumbing",
			geo:            models.ZipFilter("20878", 15),
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockProspectService)
			handler := NewProspectHandler(mockSvc)

			if tt.expectCall {
				mockSvc.On("SearchProspects", mock.Anything, tt.service, tt.geo).Return(tt.mockSet, tt.mockError)
			}

			req := httptest.NewRequest(http.MethodPost, "/prospect/search", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			// Execute
			handler.Search(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestProspectHandler_Search_ValidationErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bodies := map[string]string{
		"geo matches neither variant": `{"service":"plumbing","geo":{"foo":"bar"}}`,
		"missing service":             `{"geo":{"zip":"20878","radiusMiles":15}}`,
		"radius is a string":          `{"service":"plumbing","geo":{"zip":"20878","radiusMiles":"15"}}`,
		"malformed json":              `{"service":"plumbing"`,
		"empty body":                  ``,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			mockSvc := new(MockProspectService)
			handler := NewProspectHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/prospect/search", strings.NewReader(body))
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.Search(c)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

			var resp ValidationErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "validation failed", resp.Error)
			assert.NotEmpty(t, resp.Details)

			mockSvc.AssertNotCalled(t, "SearchProspects", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestProspectHandler_GetSet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	set := sampleSet(2)
	setJSON, err := json.Marshal(set)
	require.NoError(t, err)

	tests := []struct {
		name           string
		id             string
		mockSet        *models.ProspectSet
		mockError      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "found",
			id:             "set_1a2b3c4d",
			mockSet:        set,
			expectedStatus: http.StatusOK,
			expectedBody:   string(setJSON),
		},
		{
			name:           "not found",
			id:             "set_ffffffff",
			mockError:      fmt.Errorf("%w: %w", service.ErrProspectSetNotFound, repository.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Prospect set not found"}`,
		},
		{
			name:           "service error",
			id:             "set_1a2b3c4d",
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockProspectService)
			handler := NewProspectHandler(mockSvc)

			mockSvc.On("GetProspectSet", mock.Anything, tt.id).Return(tt.mockSet, tt.mockError)

			req := httptest.NewRequest(http.MethodGet, "/prospect/sets/"+tt.id, nil)
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{{Key: "id", Value: tt.id}}

			handler.GetSet(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestProspectHandler_GetSet_LeadShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	set := sampleSet(1)
	set.Leads[0].Phone = nil
	set.Leads[0].Website = nil

	mockSvc := new(MockProspectService)
	mockSvc.On("GetProspectSet", mock.Anything, set.ID).Return(set, nil)
	handler := NewProspectHandler(mockSvc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/prospect/sets/"+set.ID, nil)
	c.Params = gin.Params{{Key: "id", Value: set.ID}}

	handler.GetSet(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"id": "set_1a2b3c4d",
		"service": "plumbing",
		"geo": {"zip": "20878", "radiusMiles": "15"},
		"created_at": 1700000000.25,
		"leads": [{
			"id": "lead_00000001",
			"name": "Mock Plumbing Service 1",
			"address": "Mock Address 1, 20878",
			"phone": null,
			"website": null,
			"source": "mock"
		}]
	}`, w.Body.String())
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	Health(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","service":"prospector"}`, w.Body.String())
}

func TestRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Root(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Welcome to Seekan Prospector API"}`, w.Body.String())
}
