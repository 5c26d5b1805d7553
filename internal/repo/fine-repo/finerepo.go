package finerepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

const fineColumns = `id, loan_id, borrower_id, borrower_name, email, item_title, due_date, delinquent_days, amount, status, created_at, paid_at`

func scanFine(row pgx.Row) (*domain.Fine, error) {
	var fine domain.Fine
	err := row.Scan(
		&fine.ID, &fine.LoanID, &fine.BorrowerID, &fine.BorrowerName,
		&fine.Email, &fine.ItemTitle, &fine.DueDate, &fine.DelinquentDays,
		&fine.Amount, &fine.Status, &fine.CreatedAt, &fine.PaidAt,
	)
	if err != nil {
		return nil, err
	}
	return &fine, nil
}

func (r *Repository) Save(ctx context.Context, fine *domain.Fine) error {
	query := `
        INSERT INTO fines (loan_id, borrower_id, borrower_name, email, item_title, due_date, delinquent_days, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		fine.LoanID, fine.BorrowerID, fine.BorrowerName, fine.Email, fine.ItemTitle,
		fine.DueDate, fine.DelinquentDays, fine.Amount, fine.Status, fine.CreatedAt,
	).Scan(&fine.ID)
	if err != nil {
		zap.L().Error("can't save fine", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Fine, error) {
	query := `
        SELECT ` + fineColumns + `
        FROM fines
        WHERE id = $1
    `
	fine, err := scanFine(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find fine", zap.Error(err))
		return nil, err
	}
	return fine, nil
}

func (r *Repository) FindPendingByLoanID(ctx context.Context, loanID int) (*domain.Fine, error) {
	query := `
        SELECT ` + fineColumns + `
        FROM fines
        WHERE loan_id = $1 AND status = $2
    `
	fine, err := scanFine(r.db.QueryRow(ctx, query, loanID, domain.FinePending))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find pending fine for loan", zap.Error(err))
		return nil, err
	}
	return fine, nil
}

func (r *Repository) FindPending(ctx context.Context) ([]domain.Fine, error) {
	query := `
        SELECT ` + fineColumns + `
        FROM fines
        WHERE status = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, domain.FinePending)
	if err != nil {
		zap.L().Error("can't get pending fines", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var fines []domain.Fine
	for rows.Next() {
		fine, err := scanFine(rows)
		if err != nil {
			zap.L().Error("can't scan fine row", zap.Error(err))
			return nil, err
		}
		fines = append(fines, *fine)
	}
	return fines, nil
}

// UpdateAccrual persists a recomputed delinquency for a still-pending fine.
func (r *Repository) UpdateAccrual(ctx context.Context, id, days int, amount float64) error {
	query := `
        UPDATE fines
        SET delinquent_days = $1, amount = $2
        WHERE id = $3 AND status = $4
    `
	if _, err := r.db.Exec(ctx, query, days, amount, id, domain.FinePending); err != nil {
		zap.L().Error("can't update fine accrual", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkPaid(ctx context.Context, id int, paidAt time.Time) error {
	query := `
        UPDATE fines
        SET status = $1, paid_at = $2
        WHERE id = $3
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, domain.FinePaid, paidAt, id); err != nil {
			zap.L().Error("can't mark fine paid", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// MarkPaidByLoanID settles whatever pending fine points at the loan, if any.
// Returning a book resolves its fine bookkeeping.
func (r *Repository) MarkPaidByLoanID(ctx context.Context, loanID int, paidAt time.Time) error {
	query := `
        UPDATE fines
        SET status = $1, paid_at = $2
        WHERE loan_id = $3 AND status = $4
    `
	if _, err := r.db.Exec(ctx, query, domain.FinePaid, paidAt, loanID, domain.FinePending); err != nil {
		zap.L().Error("can't settle fine for loan", zap.Error(err))
		return err
	}
	return nil
}
