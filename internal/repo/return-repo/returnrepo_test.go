package returnrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/cecyt19/biblioteca/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_Save(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	rec := &domain.ReturnRecord{
		LoanID:     3,
		BorrowerID: "2023630123",
		Title:      "Rayuela",
		Code:       "9788437604572",
		DueDate:    time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
		CreatedAt:  time.Date(2024, 1, 15, 9, 20, 0, 0, time.UTC),
	}

	t.Run("Mirror row created", func(t *testing.T) {
		mockDB.ExpectQuery(regexp.QuoteMeta("INSERT INTO returns")).
			WithArgs(rec.LoanID, rec.BorrowerID, rec.Title, rec.Code, rec.DueDate, rec.CreatedAt).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))

		assert.NoError(t, repo.Save(ctx, rec))
		assert.Equal(t, 11, rec.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Insert failure", func(t *testing.T) {
		mockDB.ExpectQuery(regexp.QuoteMeta("INSERT INTO returns")).
			WithArgs(rec.LoanID, rec.BorrowerID, rec.Title, rec.Code, rec.DueDate, rec.CreatedAt).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.Save(ctx, rec))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_DeleteByLoanID(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	t.Run("Rows cleared with the loan", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM returns")).
			WithArgs(3).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repo.DeleteByLoanID(ctx, 3))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Delete failure", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM returns")).
			WithArgs(3).
			WillReturnError(errors.New("db error"))

		assert.Error(t, repo.DeleteByLoanID(ctx, 3))
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
