package loans

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/dto"
	loanservice "github.com/cecyt19/biblioteca/internal/service/loanservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*LoanHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service, 5)
	defer ctrl.Finish()
	return handler, service
}

func sampleLoan() *domain.Loan {
	return &domain.Loan{
		ID:           12,
		BorrowerKind: domain.BorrowerStudent,
		BorrowerID:   "2023630123",
		BorrowerName: "Ana Sánchez",
		Title:        "Pedro Páramo",
		Code:         "978-607-11-0255-2",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Status:       domain.LoanActive,
		CreatedAt:    time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestCheckoutHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful checkout",
			body: `{"kind":"student","name":"Ana Sánchez","id":"2023630123","title":"Pedro Páramo","isbn":"978-607-11-0255-2"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), loanservice.CheckoutRequest{
						BorrowerKind: domain.BorrowerStudent,
						BorrowerID:   "2023630123",
						BorrowerName: "Ana Sánchez",
						Title:        "Pedro Páramo",
						Code:         "978-607-11-0255-2",
					}).
					Return(sampleLoan(), nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:          "Malformed body",
			body:          `{"kind":`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Failed to parse request body",
		},
		{
			name: "Validation failure",
			body: `{"kind":"student"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), gomock.Any()).
					Return(nil, loanservice.ErrValidation)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: loanservice.ErrValidation.Error(),
		},
		{
			name: "Service failure",
			body: `{"kind":"student","name":"Ana","title":"Pedro Páramo"}`,
			prepareMock: func() {
				service.EXPECT().
					Checkout(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/loans", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Checkout(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp["message"])
				return
			}
			var resp dto.LoanResponseDTO
			assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, 12, resp.ID)
			assert.Equal(t, "2024-01-04", resp.DueDate)
			assert.Equal(t, "978-607-11-0255-2", resp.Book.ISBN)
		})
	}
}

func TestListHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Returns open loans", func(t *testing.T) {
		service.EXPECT().ListOpen(gomock.Any()).Return([]domain.Loan{*sampleLoan()}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/loans", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp []dto.LoanResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Len(t, resp, 1)
		assert.Equal(t, domain.LoanActive, resp[0].Status)
	})

	t.Run("Empty ledger yields an empty array", func(t *testing.T) {
		service.EXPECT().ListOpen(gomock.Any()).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/loans", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})

	t.Run("Service failure", func(t *testing.T) {
		service.EXPECT().ListOpen(gomock.Any()).Return(nil, errors.New("db error"))

		req := httptest.NewRequest(http.MethodGet, "/api/loans", nil)
		w := httptest.NewRecorder()
		handler.List(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestPendingReturnsHandler(t *testing.T) {
	handler, service := NewMock(t)

	late := sampleLoan()
	late.Status = domain.LoanOverdue

	service.EXPECT().ListOpen(gomock.Any()).Return([]domain.Loan{*late}, nil)
	service.EXPECT().DelinquentDays(gomock.Any()).Return(2)

	req := httptest.NewRequest(http.MethodGet, "/api/returns", nil)
	w := httptest.NewRecorder()
	handler.PendingReturns(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []dto.PendingReturnDTO
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 2, resp[0].DaysLate)
	assert.Equal(t, 10.0, resp[0].FineAmount)
}

func TestReturnHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Return by id",
			body: `{"loan_id":12}`,
			prepareMock: func() {
				service.EXPECT().
					Return(gomock.Any(), loanservice.Matcher{LoanID: 12}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Return by matcher with start date",
			body: `{"title":"Pedro Páramo","borrower_id":"2023630123","start_date":"2024-01-01"}`,
			prepareMock: func() {
				start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
				service.EXPECT().
					Return(gomock.Any(), loanservice.Matcher{
						Title:      "Pedro Páramo",
						BorrowerID: "2023630123",
						StartDate:  &start,
					}).
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid start date",
			body:          `{"loan_id":12,"start_date":"01/01/2024"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid start date",
		},
		{
			name: "No matching loan",
			body: `{"loan_id":99}`,
			prepareMock: func() {
				service.EXPECT().
					Return(gomock.Any(), gomock.Any()).
					Return(loanservice.ErrNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: loanservice.ErrNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			req := httptest.NewRequest(http.MethodPost, "/api/loans/return", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Return(w, req)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				var resp map[string]string
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp["message"])
			}
		})
	}
}

func TestUpcomingHandler(t *testing.T) {
	handler, service := NewMock(t)

	service.EXPECT().UpcomingReturns(gomock.Any(), 10).Return([]loanservice.UpcomingReturn{
		{Title: "Pedro Páramo", BorrowerName: "Ana", DueDate: "2024-01-04", DaysLeft: 3},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/loans/upcoming", nil)
	w := httptest.NewRecorder()
	handler.Upcoming(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []loanservice.UpcomingReturn
	assert.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Len(t, resp, 1)
	assert.Equal(t, 3, resp[0].DaysLeft)
}
