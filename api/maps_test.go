package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTrackingService struct {
	mock.Mock
}

func (m *mockTrackingService) Report(ctx context.Context, reference string, lat, lng float64) (*domain.Position, error) {
	args := m.Called(ctx, reference, lat, lng)
	if pos, ok := args.Get(0).(*domain.Position); ok {
		return pos, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrackingService) Latest(ctx context.Context, reference string) (*domain.Position, error) {
	args := m.Called(ctx, reference)
	if pos, ok := args.Get(0).(*domain.Position); ok {
		return pos, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockTrackingService) Watch(ctx context.Context, reference string) <-chan domain.Position {
	args := m.Called(ctx, reference)
	return args.Get(0).(<-chan domain.Position)
}

func (m *mockTrackingService) Sweep(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestMapsHandler_Track(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Params = gin.Params{{Key: "reference", Value: "TXN-1"}}

	service := new(mockTrackingService)
	service.On("Latest", mock.Anything, "TXN-1").Return(&domain.Position{
		Reference:  "TXN-1",
		Lat:        -1.2921,
		Lng:        36.8219,
		RecordedAt: time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
	}, nil)

	NewMapsHandler(service).track(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"reference":"TXN-1"`)
	service.AssertExpectations(t)
}

func TestMapsHandler_Track_NotFound(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Params = gin.Params{{Key: "reference", Value: "TXN-404"}}

	service := new(mockTrackingService)
	service.On("Latest", mock.Anything, "TXN-404").Return(nil, domain.ErrNotFound)

	NewMapsHandler(service).track(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestMapsHandler_Report(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Params = gin.Params{{Key: "reference", Value: "TXN-1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/position/TXN-1", strings.NewReader(`{"lat":-1.30,"lng":36.80}`))
	c.Request.Header.Set("Content-Type", "application/json")

	service := new(mockTrackingService)
	service.On("Report", mock.Anything, "TXN-1", -1.30, 36.80).Return(&domain.Position{
		Reference: "TXN-1", Lat: -1.30, Lng: 36.80, RecordedAt: time.Now(),
	}, nil)

	NewMapsHandler(service).report(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	service.AssertExpectations(t)
}

func TestMapsHandler_Report_BadPayload(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Params = gin.Params{{Key: "reference", Value: "TXN-1"}}
	c.Request = httptest.NewRequest(http.MethodPost, "/position/TXN-1", strings.NewReader("{broken"))
	c.Request.Header.Set("Content-Type", "application/json")

	service := new(mockTrackingService)
	NewMapsHandler(service).report(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	service.AssertNotCalled(t, "Report", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
