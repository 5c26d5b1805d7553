package loanservice

import (
	"context"
	"errors"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/businessdays"
	"go.uber.org/zap"
)

type LoanRepo interface {
	Save(ctx context.Context, loan *domain.Loan) error
	FindByID(ctx context.Context, id int) (*domain.Loan, error)
	FindOpen(ctx context.Context) ([]domain.Loan, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Loan, error)
	FindOpenByMatcher(ctx context.Context, code, title, borrowerID string, startDate *time.Time) (*domain.Loan, error)
	MarkOverdue(ctx context.Context, today time.Time) (int, error)
	Delete(ctx context.Context, id int) error
}

type ReturnRepo interface {
	Save(ctx context.Context, rec *domain.ReturnRecord) error
	DeleteByLoanID(ctx context.Context, loanID int) error
}

type FineSettler interface {
	MarkPaidByLoanID(ctx context.Context, loanID int, paidAt time.Time) error
}

// Inventory is the availability collaborator. Adjust floors the counter at
// zero and tolerates missing items; the ledger never fails a checkout over
// inventory bookkeeping.
type Inventory interface {
	Adjust(ctx context.Context, code, title string, delta int) error
}

var (
	ErrValidation = errors.New("missing required checkout fields")
	ErrNotFound   = errors.New("loan not found")
)

type Service struct {
	repo      LoanRepo
	returns   ReturnRepo
	fines     FineSettler
	inventory Inventory
	loc       *time.Location
	loanDays  int
	now       func() time.Time
}

func New(repo LoanRepo, returns ReturnRepo, fines FineSettler, inventory Inventory, loc *time.Location, loanDays int) *Service {
	if loanDays <= 0 {
		loanDays = 3
	}
	return &Service{
		repo:      repo,
		returns:   returns,
		fines:     fines,
		inventory: inventory,
		loc:       loc,
		loanDays:  loanDays,
		now:       time.Now,
	}
}

func (s *Service) today() time.Time {
	return businessdays.Truncate(s.now().In(s.loc))
}

// CheckoutRequest carries the borrower and item identification for a new loan.
type CheckoutRequest struct {
	BorrowerKind string
	BorrowerID   string
	BorrowerName string
	Group        string
	Email        string
	Title        string
	Code         string
	LoanDays     int
}

// Checkout registers a loan starting today and due LoanDays business days
// out, then decrements the matched item's availability. A checkout with no
// copies on the shelf is not rejected; the counter just floors at zero.
func (s *Service) Checkout(ctx context.Context, req CheckoutRequest) (*domain.Loan, error) {
	if req.BorrowerKind == "" || req.BorrowerName == "" || req.Title == "" {
		return nil, ErrValidation
	}
	days := req.LoanDays
	if days <= 0 {
		days = s.loanDays
	}

	start := s.today()
	loan := &domain.Loan{
		BorrowerKind: req.BorrowerKind,
		BorrowerID:   req.BorrowerID,
		BorrowerName: req.BorrowerName,
		Group:        req.Group,
		Email:        req.Email,
		Title:        req.Title,
		Code:         req.Code,
		StartDate:    start,
		DueDate:      businessdays.Add(start, days),
		Status:       domain.LoanActive,
		CreatedAt:    s.now().In(s.loc),
	}

	if err := s.repo.Save(ctx, loan); err != nil {
		zap.L().Error("can't save loan", zap.Error(err))
		return nil, err
	}

	mirror := &domain.ReturnRecord{
		LoanID:     loan.ID,
		BorrowerID: loan.BorrowerID,
		Title:      loan.Title,
		Code:       loan.Code,
		DueDate:    loan.DueDate,
		CreatedAt:  loan.CreatedAt,
	}
	if err := s.returns.Save(ctx, mirror); err != nil {
		zap.L().Error("can't mirror loan into returns", zap.Error(err), zap.Int("loanID", loan.ID))
	}

	if err := s.inventory.Adjust(ctx, loan.Code, loan.Title, -1); err != nil {
		zap.L().Error("can't decrement availability", zap.Error(err), zap.Int("loanID", loan.ID))
	}

	return loan, nil
}

// ListOpen returns every loan not yet returned with its effective state as of
// today. A loan past due reads as OVERDUE here even before the background
// sweep has persisted the transition.
func (s *Service) ListOpen(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.repo.FindOpen(ctx)
	if err != nil {
		zap.L().Error("failed to get open loans", zap.Error(err))
		return nil, err
	}

	today := s.today()
	for i := range loans {
		due := businessdays.Civil(loans[i].DueDate, s.loc)
		if loans[i].Status == domain.LoanActive && due.Before(today) {
			loans[i].Status = domain.LoanOverdue
		}
	}
	return loans, nil
}

// DelinquentDays reports how many business days the loan is past due as of
// today, zero when it is not.
func (s *Service) DelinquentDays(loan *domain.Loan) int {
	return businessdays.CountBetween(loan.DueDate, s.today())
}

// Matcher identifies a loan for return: by ID when the caller has one, or by
// catalog code or title plus borrower id, optionally narrowed by start date.
type Matcher struct {
	LoanID     int
	Code       string
	Title      string
	BorrowerID string
	StartDate  *time.Time
}

// Return closes out a loan: the row is deleted (no history is kept), the
// returns mirror is cascaded, any pending fine is marked paid and the item's
// availability goes back up by one.
func (s *Service) Return(ctx context.Context, m Matcher) error {
	var loan *domain.Loan
	var err error
	if m.LoanID != 0 {
		loan, err = s.repo.FindByID(ctx, m.LoanID)
	} else {
		loan, err = s.repo.FindOpenByMatcher(ctx, m.Code, m.Title, m.BorrowerID, m.StartDate)
	}
	if err != nil {
		return err
	}
	if loan == nil {
		return ErrNotFound
	}

	if err := s.repo.Delete(ctx, loan.ID); err != nil {
		zap.L().Error("can't delete returned loan", zap.Error(err), zap.Int("loanID", loan.ID))
		return err
	}
	if err := s.returns.DeleteByLoanID(ctx, loan.ID); err != nil {
		zap.L().Error("can't cascade return mirror", zap.Error(err), zap.Int("loanID", loan.ID))
	}
	if err := s.fines.MarkPaidByLoanID(ctx, loan.ID, s.now().In(s.loc)); err != nil {
		zap.L().Error("can't settle fine on return", zap.Error(err), zap.Int("loanID", loan.ID))
	}
	if err := s.inventory.Adjust(ctx, loan.Code, loan.Title, 1); err != nil {
		zap.L().Error("can't increment availability", zap.Error(err), zap.Int("loanID", loan.ID))
	}

	zap.L().Info("loan returned", zap.Int("loanID", loan.ID), zap.String("title", loan.Title))
	return nil
}

// MarkOverdue persists the ACTIVE -> OVERDUE transition for every loan past
// its due date and reports how many changed. Idempotent.
func (s *Service) MarkOverdue(ctx context.Context) (int, error) {
	count, err := s.repo.MarkOverdue(ctx, s.today())
	if err != nil {
		zap.L().Error("failed to mark overdue loans", zap.Error(err))
		return 0, err
	}
	if count > 0 {
		zap.L().Info("loans marked overdue", zap.Int("count", count))
	}
	return count, nil
}

// Restart re-checkouts an overdue loan as a brand-new one. There is no
// OVERDUE -> ACTIVE transition on an existing record.
func (s *Service) Restart(ctx context.Context, loanID int) (*domain.Loan, error) {
	old, err := s.repo.FindByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if old == nil {
		return nil, ErrNotFound
	}
	if err := s.Return(ctx, Matcher{LoanID: old.ID}); err != nil {
		return nil, err
	}
	return s.Checkout(ctx, CheckoutRequest{
		BorrowerKind: old.BorrowerKind,
		BorrowerID:   old.BorrowerID,
		BorrowerName: old.BorrowerName,
		Group:        old.Group,
		Email:        old.Email,
		Title:        old.Title,
		Code:         old.Code,
	})
}

// UpcomingReturn is an active loan due soon, for the front end's reminder
// widget.
type UpcomingReturn struct {
	Title        string `json:"title"`
	BorrowerName string `json:"borrower"`
	DueDate      string `json:"due_date"`
	DaysLeft     int    `json:"days_left"`
}

// UpcomingReturns lists active loans due within the next five business days,
// soonest first.
func (s *Service) UpcomingReturns(ctx context.Context, limit int) ([]UpcomingReturn, error) {
	if limit <= 0 {
		limit = 10
	}
	loans, err := s.repo.FindByStatus(ctx, domain.LoanActive)
	if err != nil {
		zap.L().Error("failed to get active loans", zap.Error(err))
		return nil, err
	}

	today := s.today()
	var items []UpcomingReturn
	for _, loan := range loans {
		if len(items) >= limit {
			break
		}
		due := businessdays.Civil(loan.DueDate, s.loc)
		daysLeft := businessdays.CountBetween(today, due)
		if daysLeft > 5 || due.Before(today) {
			continue
		}
		items = append(items, UpcomingReturn{
			Title:        loan.Title,
			BorrowerName: loan.BorrowerName,
			DueDate:      loan.DueDate.Format("2006-01-02"),
			DaysLeft:     daysLeft,
		})
	}
	return items, nil
}
