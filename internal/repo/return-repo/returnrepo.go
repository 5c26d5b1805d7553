package returnrepo

import (
	"context"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/pg"
	"go.uber.org/zap"
)

// Repository owns the returns mirror: one row per open loan for the front
// end's pending-returns table. Rows are cascaded away with their loan.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, rec *domain.ReturnRecord) error {
	query := `
        INSERT INTO returns (loan_id, borrower_id, title, catalog_code, due_date, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		rec.LoanID, rec.BorrowerID, rec.Title, rec.Code, rec.DueDate, rec.CreatedAt,
	).Scan(&rec.ID)
	if err != nil {
		zap.L().Error("can't save return record", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) DeleteByLoanID(ctx context.Context, loanID int) error {
	query := `
        DELETE FROM returns
        WHERE loan_id = $1
    `
	if _, err := r.db.Exec(ctx, query, loanID); err != nil {
		zap.L().Error("can't delete return records", zap.Error(err))
		return err
	}
	return nil
}
