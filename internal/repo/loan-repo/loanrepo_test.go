package loanrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/pg"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func loanRows(loans ...domain.Loan) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "borrower_kind", "borrower_id", "borrower_name", "group_name", "email",
		"title", "catalog_code", "start_date", "due_date", "status", "created_at",
	})
	for _, l := range loans {
		rows.AddRow(l.ID, l.BorrowerKind, l.BorrowerID, l.BorrowerName, l.Group, l.Email,
			l.Title, l.Code, l.StartDate, l.DueDate, l.Status, l.CreatedAt)
	}
	return rows
}

func sampleLoan() domain.Loan {
	return domain.Loan{
		ID:           12,
		BorrowerKind: domain.BorrowerStudent,
		BorrowerID:   "2023630123",
		BorrowerName: "Ana Sánchez",
		Group:        "5IM03",
		Email:        "ana@example.com",
		Title:        "Pedro Páramo",
		Code:         "978-607-11-0255-2",
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DueDate:      time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		Status:       domain.LoanActive,
		CreatedAt:    time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Insert returns the new id",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans")).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO loans")).
					WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
						pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			loan := sampleLoan()
			loan.ID = 0
			err := repo.Save(context.Background(), &loan)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, 12, loan.ID)
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Loan exists",
			id:   12,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(12).
					WillReturnRows(loanRows(sampleLoan()))
			},
			found: true,
		},
		{
			name: "Loan does not exist",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			id:   12,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(12).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			loan, err := repo.FindByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, loan)
				assert.Equal(t, 12, loan.ID)
			} else {
				assert.Nil(t, loan)
			}
		})
	}
}

func TestRepository_FindOpenByMatcher(t *testing.T) {
	repo, mock, _ := NewMock(t)

	t.Run("Match on title and borrower", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("AND borrower_id = $3")).
			WithArgs("", "Pedro Páramo", "2023630123", pgxmock.AnyArg()).
			WillReturnRows(loanRows(sampleLoan()))

		loan, err := repo.FindOpenByMatcher(context.Background(), "", "Pedro Páramo", "2023630123", nil)
		assert.NoError(t, err)
		assert.NotNil(t, loan)
		assert.Equal(t, "Pedro Páramo", loan.Title)
	})

	t.Run("Start date narrows the match", func(t *testing.T) {
		start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("AND borrower_id = $3")).
			WithArgs("978-607-11-0255-2", "", "2023630123", &start).
			WillReturnRows(loanRows(sampleLoan()))

		loan, err := repo.FindOpenByMatcher(context.Background(), "978-607-11-0255-2", "", "2023630123", &start)
		assert.NoError(t, err)
		assert.NotNil(t, loan)
	})

	t.Run("No match", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("AND borrower_id = $3")).
			WithArgs("", "Rayuela", "999", pgxmock.AnyArg()).
			WillReturnError(pgx.ErrNoRows)

		loan, err := repo.FindOpenByMatcher(context.Background(), "", "Rayuela", "999", nil)
		assert.NoError(t, err)
		assert.Nil(t, loan)
	})
}

func TestRepository_MarkOverdue(t *testing.T) {
	repo, mock, _ := NewMock(t)
	today := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)

	t.Run("Rows affected are reported", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE loans")).
			WithArgs(domain.LoanOverdue, domain.LoanActive, today).
			WillReturnResult(pgxmock.NewResult("UPDATE", 3))

		count, err := repo.MarkOverdue(context.Background(), today)
		assert.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE loans")).
			WithArgs(domain.LoanOverdue, domain.LoanActive, today).
			WillReturnError(errors.New("database error"))

		count, err := repo.MarkOverdue(context.Background(), today)
		assert.Error(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock, txManager := NewMock(t)

	t.Run("Delete runs inside a transaction", func(t *testing.T) {
		txManager.EXPECT().
			Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM loans")).
			WithArgs(12).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.Delete(context.Background(), 12))
	})

	t.Run("Exec error rolls up", func(t *testing.T) {
		txManager.EXPECT().
			Begin(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			})
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM loans")).
			WithArgs(12).
			WillReturnError(errors.New("database error"))

		assert.Error(t, repo.Delete(context.Background(), 12))
	})
}

func TestRepository_CountCreatedBetween(t *testing.T) {
	repo, mock, _ := NewMock(t)
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(5))

	count, err := repo.CountCreatedBetween(context.Background(), from, to)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}
