package dashboardservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 1, 15, 9, 20, 0, 0, time.UTC)

func NewMock(t *testing.T) (*Service, *MockLoanRepo, *MockShelf, *MockPeople) {
	ctrl := gomock.NewController(t)
	loans := NewMockLoanRepo(ctrl)
	shelf := NewMockShelf(ctrl)
	people := NewMockPeople(ctrl)
	service := New(loans, shelf, people, time.UTC)
	service.now = func() time.Time { return testNow }
	defer ctrl.Finish()
	return service, loans, shelf, people
}

func TestSnapshot(t *testing.T) {
	service, loans, shelf, people := NewMock(t)

	today := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("Aggregates all four figures", func(t *testing.T) {
		loans.EXPECT().CountCreatedBetween(gomock.Any(), today, tomorrow).Return(4, nil)
		shelf.EXPECT().ShelfTotal(gomock.Any()).Return(230, nil)
		loans.EXPECT().FindOpen(gomock.Any()).Return([]domain.Loan{
			{ID: 1, DueDate: today.AddDate(0, 0, -2)},
			{ID: 2, DueDate: today},
			{ID: 3, DueDate: tomorrow},
		}, nil)
		people.EXPECT().CountStudents(gomock.Any()).Return(812, nil)

		dash := service.Snapshot(context.Background())
		assert.Equal(t, 4, dash.LoansToday)
		assert.Equal(t, 230, dash.ShelfAvailable)
		assert.Equal(t, 1, dash.OverdueReturns)
		assert.Equal(t, 812, dash.Students)
	})

	t.Run("Date-typed due date on the due day is not overdue", func(t *testing.T) {
		loc, err := time.LoadLocation("America/Mexico_City")
		assert.NoError(t, err)
		service.loc = loc
		service.now = func() time.Time { return time.Date(2024, 1, 15, 9, 20, 0, 0, loc) }
		localToday := time.Date(2024, 1, 15, 0, 0, 0, 0, loc)

		loans.EXPECT().CountCreatedBetween(gomock.Any(), localToday, localToday.AddDate(0, 0, 1)).Return(0, nil)
		shelf.EXPECT().ShelfTotal(gomock.Any()).Return(0, nil)
		// DATE columns scan as midnight UTC, six hours ahead of local midnight.
		loans.EXPECT().FindOpen(gomock.Any()).Return([]domain.Loan{
			{ID: 1, DueDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
			{ID: 2, DueDate: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)},
		}, nil)
		people.EXPECT().CountStudents(gomock.Any()).Return(0, nil)

		dash := service.Snapshot(context.Background())
		assert.Equal(t, 1, dash.OverdueReturns)

		service.loc = time.UTC
		service.now = func() time.Time { return testNow }
	})

	t.Run("Each figure degrades to zero on its own failure", func(t *testing.T) {
		loans.EXPECT().CountCreatedBetween(gomock.Any(), today, tomorrow).Return(0, errors.New("db error"))
		shelf.EXPECT().ShelfTotal(gomock.Any()).Return(0, errors.New("db error"))
		loans.EXPECT().FindOpen(gomock.Any()).Return(nil, errors.New("db error"))
		people.EXPECT().CountStudents(gomock.Any()).Return(812, nil)

		dash := service.Snapshot(context.Background())
		assert.Equal(t, 0, dash.LoansToday)
		assert.Equal(t, 0, dash.ShelfAvailable)
		assert.Equal(t, 0, dash.OverdueReturns)
		assert.Equal(t, 812, dash.Students)
	})
}
