package loanrepo

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

const loanColumns = `id, borrower_kind, borrower_id, borrower_name, group_name, email, title, catalog_code, start_date, due_date, status, created_at`

func scanLoan(row pgx.Row) (*domain.Loan, error) {
	var loan domain.Loan
	err := row.Scan(
		&loan.ID, &loan.BorrowerKind, &loan.BorrowerID, &loan.BorrowerName,
		&loan.Group, &loan.Email, &loan.Title, &loan.Code,
		&loan.StartDate, &loan.DueDate, &loan.Status, &loan.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *Repository) collect(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get loans", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			zap.L().Error("can't scan loan row", zap.Error(err))
			return nil, err
		}
		loans = append(loans, *loan)
	}
	return loans, nil
}

func (r *Repository) Save(ctx context.Context, loan *domain.Loan) error {
	query := `
        INSERT INTO loans (borrower_kind, borrower_id, borrower_name, group_name, email, title, catalog_code, start_date, due_date, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		loan.BorrowerKind, loan.BorrowerID, loan.BorrowerName, loan.Group, loan.Email,
		loan.Title, loan.Code, loan.StartDate, loan.DueDate, loan.Status, loan.CreatedAt,
	).Scan(&loan.ID)
	if err != nil {
		zap.L().Error("can't save loan", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE id = $1
    `
	loan, err := scanLoan(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// FindOpen returns every loan still on the books (returned loans are deleted
// rows, so that is simply all of them), oldest due date first.
func (r *Repository) FindOpen(ctx context.Context) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        ORDER BY due_date ASC, id ASC
    `
	return r.collect(ctx, query)
}

func (r *Repository) FindByStatus(ctx context.Context, status string) ([]domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE status = $1
        ORDER BY due_date ASC, id ASC
    `
	return r.collect(ctx, query, status)
}

// FindOpenByMatcher locates a loan without an id: by catalog code or title plus
// borrower id, optionally narrowed by start date. The earliest matching open
// loan wins.
func (r *Repository) FindOpenByMatcher(ctx context.Context, code, title, borrowerID string, startDate *time.Time) (*domain.Loan, error) {
	query := `
        SELECT ` + loanColumns + `
        FROM loans
        WHERE (($1 <> '' AND catalog_code = $1) OR ($2 <> '' AND title = $2))
          AND borrower_id = $3
          AND ($4::date IS NULL OR start_date = $4)
        ORDER BY due_date ASC, id ASC
        LIMIT 1
    `
	loan, err := scanLoan(r.db.QueryRow(ctx, query, code, title, borrowerID, startDate))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't match loan", zap.Error(err))
		return nil, err
	}
	return loan, nil
}

// MarkOverdue flips every active loan past its due date to OVERDUE and reports
// how many rows changed. Safe to run repeatedly.
func (r *Repository) MarkOverdue(ctx context.Context, today time.Time) (int, error) {
	query := `
        UPDATE loans
        SET status = $1
        WHERE status = $2 AND due_date < $3
    `
	tag, err := r.db.Exec(ctx, query, domain.LoanOverdue, domain.LoanActive, today)
	if err != nil {
		zap.L().Error("can't mark overdue loans", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) Delete(ctx context.Context, id int) error {
	query := `
        DELETE FROM loans
        WHERE id = $1
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, query, id); err != nil {
			zap.L().Error("can't delete loan", zap.Error(err))
			return err
		}
		return nil
	})
	return err
}

// CountCreatedBetween counts loans created in [from, to), used by the dashboard.
func (r *Repository) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM loans
        WHERE created_at >= $1 AND created_at < $2
    `
	var count int
	if err := r.db.QueryRow(ctx, query, from, to).Scan(&count); err != nil {
		zap.L().Error("can't count loans", zap.Error(err))
		return 0, err
	}
	return count, nil
}
