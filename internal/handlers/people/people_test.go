package people

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/service/personservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*PersonHandler, *MockService) {
	ctrl := gomock.NewController(t)
	personService := NewMockService(ctrl)
	handler := New(personService)
	defer ctrl.Finish()
	return handler, personService
}

func TestListStudentsHandler(t *testing.T) {
	handler, personService := NewMock(t)

	t.Run("Paged listing", func(t *testing.T) {
		personService.EXPECT().ListStudents(gomock.Any(), 2, 0).
			Return([]personservice.Student{{Name: "Ana López", Boleta: "2023630123"}}, 51, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/students?page=2", nil)
		rec := httptest.NewRecorder()

		handler.ListStudents(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"total":51`)
		assert.Contains(t, rec.Body.String(), `"page":2`)
	})

	t.Run("Empty registry is an empty array", func(t *testing.T) {
		personService.EXPECT().ListStudents(gomock.Any(), 0, 0).Return(nil, 0, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
		rec := httptest.NewRecorder()

		handler.ListStudents(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"students":[],"total":0,"page":1}`, rec.Body.String())
	})

	t.Run("Service failure", func(t *testing.T) {
		personService.EXPECT().ListStudents(gomock.Any(), 0, 0).Return(nil, 0, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/students", nil)
		rec := httptest.NewRecorder()

		handler.ListStudents(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestListStaffHandler(t *testing.T) {
	handler, personService := NewMock(t)

	personService.EXPECT().ListStaff(gomock.Any()).
		Return([]personservice.Staff{{Name: "María Hernández", EmployeeNo: "E-0042"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/staff", nil)
	rec := httptest.NewRecorder()

	handler.ListStaff(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "María Hernández")
}

func TestRegisterStudentHandler(t *testing.T) {
	handler, personService := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Record accepted",
			body: `{"Nombre":"Ana López","Boleta":"2023630123"}`,
			prepareMock: func() {
				personService.EXPECT().
					RegisterStudent(gomock.Any(), domain.Document{"Nombre": "Ana López", "Boleta": "2023630123"}).
					Return(nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:         "Empty record rejected",
			body:         `{}`,
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Service failure",
			body: `{"Nombre":"Ana López"}`,
			prepareMock: func() {
				personService.EXPECT().RegisterStudent(gomock.Any(), gomock.Any()).Return(errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/students", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()

			handler.RegisterStudent(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestLookupStudentHandler(t *testing.T) {
	handler, personService := NewMock(t)

	tests := []struct {
		name         string
		url          string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Registered student",
			url:  "/api/students/lookup?boleta=2023630123",
			prepareMock: func() {
				personService.EXPECT().FindStudent(gomock.Any(), "2023630123").
					Return(&personservice.Student{Name: "Ana López", Boleta: "2023630123"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Missing boleta",
			url:  "/api/students/lookup",
			prepareMock: func() {
				personService.EXPECT().FindStudent(gomock.Any(), "").
					Return(nil, personservice.ErrIdentifierRequired)
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "Not registered",
			url:  "/api/students/lookup?boleta=999",
			prepareMock: func() {
				personService.EXPECT().FindStudent(gomock.Any(), "999").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "Service failure",
			url:  "/api/students/lookup?boleta=2023630123",
			prepareMock: func() {
				personService.EXPECT().FindStudent(gomock.Any(), "2023630123").
					Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := httptest.NewRecorder()

			handler.LookupStudent(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestLookupStaffHandler(t *testing.T) {
	handler, personService := NewMock(t)

	t.Run("Registered staff member", func(t *testing.T) {
		personService.EXPECT().FindStaff(gomock.Any(), "E-0042").
			Return(&personservice.Staff{Name: "María Hernández", EmployeeNo: "E-0042"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/staff/lookup?employee_no=E-0042", nil)
		rec := httptest.NewRecorder()

		handler.LookupStaff(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Not registered", func(t *testing.T) {
		personService.EXPECT().FindStaff(gomock.Any(), "X-1").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/staff/lookup?employee_no=X-1", nil)
		rec := httptest.NewRecorder()

		handler.LookupStaff(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Staff member not registered")
	})
}
