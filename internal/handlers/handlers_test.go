package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cecyt19/biblioteca/internal/config"
	"github.com/cecyt19/biblioteca/internal/pg"
	"github.com/cecyt19/biblioteca/internal/repo"
	"github.com/cecyt19/biblioteca/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	cfg := &config.Config{
		Timezone:          "America/Mexico_City",
		FineRatePerDay:    5,
		DefaultLoanDays:   3,
		SiteRetentionDays: 30,
	}
	services := service.New(repo.New(mockDB, pg.NewMockTXManager(ctrl)), cfg)

	h := New(services, cfg)
	assert.NotNil(t, h, "Handlers should not be nil")
	assert.NotNil(t, h.LoanHandler)
	assert.NotNil(t, h.FineHandler)
	assert.NotNil(t, h.InventoryHandler)
	assert.NotNil(t, h.PersonHandler)
	assert.NotNil(t, h.SiteHandler)
	assert.NotNil(t, h.ChessHandler)
	assert.NotNil(t, h.DashboardHandler)
}

func TestInitRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLoanHandler := NewMockLoanHandler(ctrl)
	mockFineHandler := NewMockFineHandler(ctrl)
	mockInventoryHandler := NewMockInventoryHandler(ctrl)
	mockPersonHandler := NewMockPersonHandler(ctrl)
	mockSiteHandler := NewMockSiteHandler(ctrl)
	mockChessHandler := NewMockChessHandler(ctrl)
	mockDashboardHandler := NewMockDashboardHandler(ctrl)

	mockLoanHandler.EXPECT().Checkout(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Upcoming(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Return(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().Restart(gomock.Any(), gomock.Any()).AnyTimes()
	mockLoanHandler.EXPECT().PendingReturns(gomock.Any(), gomock.Any()).AnyTimes()
	mockFineHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockFineHandler.EXPECT().Settle(gomock.Any(), gomock.Any()).AnyTimes()
	mockInventoryHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockInventoryHandler.EXPECT().Register(gomock.Any(), gomock.Any()).AnyTimes()
	mockInventoryHandler.EXPECT().Search(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().ListStudents(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().RegisterStudent(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().LookupStudent(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().ListStaff(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().RegisterStaff(gomock.Any(), gomock.Any()).AnyTimes()
	mockPersonHandler.EXPECT().LookupStaff(gomock.Any(), gomock.Any()).AnyTimes()
	mockSiteHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockSiteHandler.EXPECT().CheckIn(gomock.Any(), gomock.Any()).AnyTimes()
	mockSiteHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockSiteHandler.EXPECT().Restart(gomock.Any(), gomock.Any()).AnyTimes()
	mockSiteHandler.EXPECT().AddObservation(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().List(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().Lookup(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().Start(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().Finish(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().Restart(gomock.Any(), gomock.Any()).AnyTimes()
	mockChessHandler.EXPECT().Delete(gomock.Any(), gomock.Any()).AnyTimes()
	mockDashboardHandler.EXPECT().Snapshot(gomock.Any(), gomock.Any()).AnyTimes()

	h := &Handlers{
		LoanHandler:      mockLoanHandler,
		FineHandler:      mockFineHandler,
		InventoryHandler: mockInventoryHandler,
		PersonHandler:    mockPersonHandler,
		SiteHandler:      mockSiteHandler,
		ChessHandler:     mockChessHandler,
		DashboardHandler: mockDashboardHandler,
	}

	router := chi.NewRouter()
	h.InitRoutes(router)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/loans", http.StatusOK},
		{"GET", "/api/loans", http.StatusOK},
		{"GET", "/api/loans/upcoming", http.StatusOK},
		{"POST", "/api/loans/return", http.StatusOK},
		{"POST", "/api/loans/restart", http.StatusOK},
		{"GET", "/api/returns", http.StatusOK},
		{"GET", "/api/fines", http.StatusOK},
		{"POST", "/api/fines/settle", http.StatusOK},
		{"GET", "/api/inventory", http.StatusOK},
		{"POST", "/api/inventory", http.StatusOK},
		{"GET", "/api/search", http.StatusOK},
		{"GET", "/api/students", http.StatusOK},
		{"POST", "/api/students", http.StatusOK},
		{"GET", "/api/students/lookup", http.StatusOK},
		{"GET", "/api/staff", http.StatusOK},
		{"POST", "/api/staff", http.StatusOK},
		{"GET", "/api/staff/lookup", http.StatusOK},
		{"GET", "/api/site", http.StatusOK},
		{"POST", "/api/site/checkin", http.StatusOK},
		{"POST", "/api/site/delete", http.StatusOK},
		{"POST", "/api/site/restart", http.StatusOK},
		{"POST", "/api/site/observation", http.StatusOK},
		{"GET", "/api/chess", http.StatusOK},
		{"GET", "/api/chess/lookup", http.StatusOK},
		{"POST", "/api/chess/start", http.StatusOK},
		{"POST", "/api/chess/finish", http.StatusOK},
		{"POST", "/api/chess/restart", http.StatusOK},
		{"POST", "/api/chess/delete", http.StatusOK},
		{"GET", "/api/dashboard", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.url, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
