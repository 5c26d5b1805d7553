package fineservice

import (
	"context"
	"errors"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/businessdays"
	"go.uber.org/zap"
)

type FineRepo interface {
	Save(ctx context.Context, fine *domain.Fine) error
	FindByID(ctx context.Context, id int) (*domain.Fine, error)
	FindPendingByLoanID(ctx context.Context, loanID int) (*domain.Fine, error)
	FindPending(ctx context.Context) ([]domain.Fine, error)
	UpdateAccrual(ctx context.Context, id, days int, amount float64) error
	MarkPaid(ctx context.Context, id int, paidAt time.Time) error
}

type LoanRepo interface {
	FindByStatus(ctx context.Context, status string) ([]domain.Loan, error)
	FindByID(ctx context.Context, id int) (*domain.Loan, error)
	Delete(ctx context.Context, id int) error
}

type ReturnRepo interface {
	DeleteByLoanID(ctx context.Context, loanID int) error
}

type Inventory interface {
	Adjust(ctx context.Context, code, title string, delta int) error
}

var ErrNotFound = errors.New("fine not found")

type Service struct {
	fineRepo   FineRepo
	loanRepo   LoanRepo
	returnRepo ReturnRepo
	inventory  Inventory
	rate       float64
	loc        *time.Location
	now        func() time.Time
}

func New(fineRepo FineRepo, loanRepo LoanRepo, returnRepo ReturnRepo, inventory Inventory, rate float64, loc *time.Location) *Service {
	return &Service{
		fineRepo:   fineRepo,
		loanRepo:   loanRepo,
		returnRepo: returnRepo,
		inventory:  inventory,
		rate:       rate,
		loc:        loc,
		now:        time.Now,
	}
}

func (s *Service) today() time.Time {
	return businessdays.Truncate(s.now().In(s.loc))
}

// Reconcile derives fines from overdue loans: one pending fine per loan at
// most, amount = delinquent business days times the per-day rate. Fines that
// already exist get their accrual refreshed instead.
func (s *Service) Reconcile(ctx context.Context) error {
	loans, err := s.loanRepo.FindByStatus(ctx, domain.LoanOverdue)
	if err != nil {
		zap.L().Error("failed to get overdue loans", zap.Error(err))
		return err
	}

	today := s.today()
	for _, loan := range loans {
		days := businessdays.CountBetween(loan.DueDate, today)
		amount := float64(days) * s.rate

		existing, err := s.fineRepo.FindPendingByLoanID(ctx, loan.ID)
		if err != nil {
			zap.L().Error("failed to look up pending fine", zap.Error(err), zap.Int("loanID", loan.ID))
			continue
		}
		if existing != nil {
			if existing.DelinquentDays == days {
				continue
			}
			if err := s.fineRepo.UpdateAccrual(ctx, existing.ID, days, amount); err != nil {
				zap.L().Error("failed to refresh fine", zap.Error(err), zap.Int("fineID", existing.ID))
			}
			continue
		}

		fine := &domain.Fine{
			LoanID:         loan.ID,
			BorrowerID:     loan.BorrowerID,
			BorrowerName:   loan.BorrowerName,
			Email:          loan.Email,
			ItemTitle:      loan.Title,
			DueDate:        loan.DueDate,
			DelinquentDays: days,
			Amount:         amount,
			Status:         domain.FinePending,
			CreatedAt:      s.now().In(s.loc),
		}
		if err := s.fineRepo.Save(ctx, fine); err != nil {
			zap.L().Error("failed to create fine", zap.Error(err), zap.Int("loanID", loan.ID))
			continue
		}
		zap.L().Info("fine created",
			zap.Int("loanID", loan.ID), zap.Int("days", days), zap.Float64("amount", amount))
	}
	return nil
}

// ListPending returns every pending fine with its accrual recomputed against
// today. The recompute is persisted: listing refreshes amounts as a side
// effect, which the front end depends on. Callers must not assume this is a
// read-only operation.
func (s *Service) ListPending(ctx context.Context) ([]domain.Fine, error) {
	fines, err := s.fineRepo.FindPending(ctx)
	if err != nil {
		zap.L().Error("failed to get pending fines", zap.Error(err))
		return nil, err
	}

	today := s.today()
	for i := range fines {
		days := businessdays.CountBetween(fines[i].DueDate, today)
		amount := float64(days) * s.rate
		if days != fines[i].DelinquentDays {
			if err := s.fineRepo.UpdateAccrual(ctx, fines[i].ID, days, amount); err != nil {
				zap.L().Error("failed to refresh fine", zap.Error(err), zap.Int("fineID", fines[i].ID))
			}
		}
		fines[i].DelinquentDays = days
		fines[i].Amount = amount
	}
	return fines, nil
}

// Settle marks a fine paid and closes out the originating loan: the loan row
// is deleted (tolerating it already being gone), its returns mirror is
// cascaded and the item's availability goes back up by one.
func (s *Service) Settle(ctx context.Context, fineID int) error {
	fine, err := s.fineRepo.FindByID(ctx, fineID)
	if err != nil {
		return err
	}
	if fine == nil {
		return ErrNotFound
	}

	if err := s.fineRepo.MarkPaid(ctx, fine.ID, s.now().In(s.loc)); err != nil {
		zap.L().Error("failed to mark fine paid", zap.Error(err), zap.Int("fineID", fine.ID))
		return err
	}

	loan, err := s.loanRepo.FindByID(ctx, fine.LoanID)
	if err != nil {
		zap.L().Error("failed to load fined loan", zap.Error(err), zap.Int("loanID", fine.LoanID))
		return nil
	}
	if loan == nil {
		// Already returned through the ledger; nothing left to close out.
		return nil
	}

	if err := s.loanRepo.Delete(ctx, loan.ID); err != nil {
		zap.L().Error("failed to delete fined loan", zap.Error(err), zap.Int("loanID", loan.ID))
		return nil
	}
	if err := s.returnRepo.DeleteByLoanID(ctx, loan.ID); err != nil {
		zap.L().Error("failed to cascade return mirror", zap.Error(err), zap.Int("loanID", loan.ID))
	}
	if err := s.inventory.Adjust(ctx, loan.Code, loan.Title, 1); err != nil {
		zap.L().Error("failed to restore availability", zap.Error(err), zap.Int("loanID", loan.ID))
	}

	zap.L().Info("fine settled", zap.Int("fineID", fine.ID), zap.Int("loanID", fine.LoanID))
	return nil
}
