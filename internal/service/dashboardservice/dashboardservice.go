package dashboardservice

import (
	"context"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/businessdays"
	"go.uber.org/zap"
)

type LoanRepo interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
	FindOpen(ctx context.Context) ([]domain.Loan, error)
}

type Shelf interface {
	ShelfTotal(ctx context.Context) (int, error)
}

type People interface {
	CountStudents(ctx context.Context) (int, error)
}

type Service struct {
	loans  LoanRepo
	shelf  Shelf
	people People
	loc    *time.Location
	now    func() time.Time
}

func New(loans LoanRepo, shelf Shelf, people People, loc *time.Location) *Service {
	return &Service{loans: loans, shelf: shelf, people: people, loc: loc, now: time.Now}
}

// Snapshot builds the landing-page aggregates. Each figure degrades to zero
// on its own failure instead of failing the whole dashboard.
func (s *Service) Snapshot(ctx context.Context) domain.Dashboard {
	var dash domain.Dashboard

	today := businessdays.Truncate(s.now().In(s.loc))
	loansToday, err := s.loans.CountCreatedBetween(ctx, today, today.AddDate(0, 0, 1))
	if err != nil {
		zap.L().Error("dashboard: loans-today count failed", zap.Error(err))
	}
	dash.LoansToday = loansToday

	shelf, err := s.shelf.ShelfTotal(ctx)
	if err != nil {
		zap.L().Error("dashboard: shelf total failed", zap.Error(err))
	}
	dash.ShelfAvailable = shelf

	open, err := s.loans.FindOpen(ctx)
	if err != nil {
		zap.L().Error("dashboard: open loans failed", zap.Error(err))
	}
	for _, loan := range open {
		if businessdays.Civil(loan.DueDate, s.loc).Before(today) {
			dash.OverdueReturns++
		}
	}

	students, err := s.people.CountStudents(ctx)
	if err != nil {
		zap.L().Error("dashboard: student count failed", zap.Error(err))
	}
	dash.Students = students

	return dash
}
