package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/peacekuria/smartmove/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockInventoryService struct {
	mock.Mock
}

func (m *mockInventoryService) List(ctx context.Context, actor *domain.UserSnapshot) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, actor)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) ApplyTemplate(ctx context.Context, actor *domain.UserSnapshot, name string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, actor, name)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) AddItem(ctx context.Context, actor *domain.UserSnapshot, text string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, actor, text)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) ToggleItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, actor, index)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockInventoryService) RemoveItem(ctx context.Context, actor *domain.UserSnapshot, index int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, actor, index)
	if items, ok := args.Get(0).([]domain.InventoryItem); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestInventoryHandler_List(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)

	service := new(mockInventoryService)
	service.On("List", mock.Anything, actor).Return([]domain.InventoryItem{
		{Text: "Bed", Done: true},
		{Text: "Sofa"},
	}, nil)

	NewInventoryHandler(service).list(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"completed":1`)
	assert.Contains(t, recorder.Body.String(), `"progress":50`)
	service.AssertExpectations(t)
}

func TestInventoryHandler_Add(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"Piano"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	service := new(mockInventoryService)
	service.On("AddItem", mock.Anything, actor, "Piano").Return([]domain.InventoryItem{{Text: "Piano"}}, nil)

	NewInventoryHandler(service).add(c)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"text":"Piano"`)
	service.AssertExpectations(t)
}

func TestInventoryHandler_Add_Blank(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"  "}`))
	c.Request.Header.Set("Content-Type", "application/json")

	service := new(mockInventoryService)
	service.On("AddItem", mock.Anything, actor, "  ").Return(nil, domain.ErrValidation)

	NewInventoryHandler(service).add(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestInventoryHandler_ApplyTemplate(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)
	c.Request = httptest.NewRequest(http.MethodPost, "/template", strings.NewReader(`{"name":"Bedsitter"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	items, _ := domain.TemplateItems("Bedsitter")
	service := new(mockInventoryService)
	service.On("ApplyTemplate", mock.Anything, actor, "Bedsitter").Return(items, nil)

	NewInventoryHandler(service).applyTemplate(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"text":"Wardrobe"`)
	assert.Contains(t, recorder.Body.String(), `"progress":0`)
}

func TestInventoryHandler_Toggle(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)
	c.Params = gin.Params{{Key: "index", Value: "1"}}

	service := new(mockInventoryService)
	service.On("ToggleItem", mock.Anything, actor, 1).Return([]domain.InventoryItem{
		{Text: "Bed"},
		{Text: "Sofa", Done: true},
	}, nil)

	NewInventoryHandler(service).toggle(c)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"done":true`)
	service.AssertExpectations(t)
}

func TestInventoryHandler_Toggle_BadIndex(t *testing.T) {
	c, recorder := newTestContext(t)
	c.Set(actorKey, testActor(domain.RoleClient))
	c.Params = gin.Params{{Key: "index", Value: "first"}}

	service := new(mockInventoryService)
	NewInventoryHandler(service).toggle(c)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	service.AssertNotCalled(t, "ToggleItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestInventoryHandler_Remove_OutOfRange(t *testing.T) {
	c, recorder := newTestContext(t)
	actor := testActor(domain.RoleClient)
	c.Set(actorKey, actor)
	c.Params = gin.Params{{Key: "index", Value: "9"}}

	service := new(mockInventoryService)
	service.On("RemoveItem", mock.Anything, actor, 9).Return(nil, domain.ErrNotFound)

	NewInventoryHandler(service).remove(c)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
