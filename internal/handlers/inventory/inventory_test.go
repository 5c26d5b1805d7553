package inventory

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cecyt19/biblioteca/internal/domain"
	inventoryrepo "github.com/cecyt19/biblioteca/internal/repo/inventory-repo"
	"github.com/cecyt19/biblioteca/internal/service/inventoryservice"
	"github.com/cecyt19/biblioteca/internal/service/personservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*InventoryHandler, *MockService, *MockPeople) {
	ctrl := gomock.NewController(t)
	inventoryService := NewMockService(ctrl)
	personService := NewMockPeople(ctrl)
	handler := New(inventoryService, personService)
	defer ctrl.Finish()
	return handler, inventoryService, personService
}

func TestListHandler(t *testing.T) {
	handler, inventoryService, _ := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "Filters and paging pass through",
			url:  "/api/inventory?page=2&page_size=10&author=Rulfo",
			prepareMock: func() {
				inventoryService.EXPECT().
					List(gomock.Any(), inventoryrepo.Filters{Author: "Rulfo"}, 2, 10).
					Return([]inventoryservice.Item{{Title: "Pedro Páramo", Author: "Juan Rulfo", Edition: "-"}}, 1, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[{"isbn":"","title":"Pedro Páramo","author":"Juan Rulfo","publisher":"","edition":"-","shelf":"","available":0}],"total":1,"page":2}`,
		},
		{
			name: "Empty result is an empty array",
			url:  "/api/inventory",
			prepareMock: func() {
				inventoryService.EXPECT().
					List(gomock.Any(), inventoryrepo.Filters{}, 0, 0).
					Return(nil, 0, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"items":[],"total":0,"page":1}`,
		},
		{
			name: "Service failure",
			url:  "/api/inventory",
			prepareMock: func() {
				inventoryService.EXPECT().
					List(gomock.Any(), inventoryrepo.Filters{}, 0, 0).
					Return(nil, 0, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.List(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
		})
	}
}

func TestRegisterHandler(t *testing.T) {
	handler, inventoryService, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Document stored as received",
			body: `{"TÍTULO":"Pedro Páramo","AUTOR":"Juan Rulfo","DISPONIBLES":4}`,
			prepareMock: func() {
				inventoryService.EXPECT().
					Register(gomock.Any(), domain.Document{"TÍTULO": "Pedro Páramo", "AUTOR": "Juan Rulfo", "DISPONIBLES": float64(4)}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Empty document rejected",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "Malformed body",
			body:         `not-json`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"TÍTULO":"Pedro Páramo"}`,
			prepareMock: func() {
				inventoryService.EXPECT().Register(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/inventory", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.Register(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestSearchHandler(t *testing.T) {
	handler, inventoryService, personService := NewMock(t)

	t.Run("Books and students in one response", func(t *testing.T) {
		inventoryService.EXPECT().Search(gomock.Any(), "garcia").
			Return([]inventoryservice.Item{{Title: "Cien años de soledad", Edition: "-"}}, nil)
		personService.EXPECT().SearchStudents(gomock.Any(), "garcia").
			Return([]personservice.Student{{Name: "Ana García", Boleta: "2023630123"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=garcia", nil)
		rec := httptest.NewRecorder()

		handler.Search(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Cien años de soledad")
		assert.Contains(t, rec.Body.String(), "Ana García")
	})

	t.Run("Empty result arrays are not null", func(t *testing.T) {
		inventoryService.EXPECT().Search(gomock.Any(), "nada").Return(nil, nil)
		personService.EXPECT().SearchStudents(gomock.Any(), "nada").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=nada", nil)
		rec := httptest.NewRecorder()

		handler.Search(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"books":[],"students":[]}`, rec.Body.String())
	})

	t.Run("Blank query rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/search?q=++", nil)
		rec := httptest.NewRecorder()

		handler.Search(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Book search failure", func(t *testing.T) {
		inventoryService.EXPECT().Search(gomock.Any(), "x").Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/search?q=x", nil)
		rec := httptest.NewRecorder()

		handler.Search(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
