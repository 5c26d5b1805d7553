package chessrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
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

func sessionRows(sessions ...domain.ChessSession) *pgxmock.Rows {
	rows := pgxmock.NewRows([]string{
		"id", "user_id", "name", "kind", "status", "started_at", "ended_at", "created_at",
	})
	for _, s := range sessions {
		rows.AddRow(s.ID, s.UserID, s.Name, s.Kind, s.Status, s.StartedAt, s.EndedAt, s.CreatedAt)
	}
	return rows
}

func TestRepository_List(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	t.Run("All sessions, newest first", func(t *testing.T) {
		started := time.Date(2024, 1, 15, 12, 45, 0, 0, time.UTC)
		mockDB.ExpectQuery(regexp.QuoteMeta("FROM chess_sessions")).
			WillReturnRows(sessionRows(domain.ChessSession{
				ID: 7, UserID: "2023630123", Name: "Ana López", Kind: "student",
				Status: domain.ChessActive, StartedAt: started, CreatedAt: started,
			}))

		sessions, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, sessions, 1)
		assert.Equal(t, domain.ChessActive, sessions[0].Status)
		assert.Nil(t, sessions[0].EndedAt)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Query failure", func(t *testing.T) {
		mockDB.ExpectQuery(regexp.QuoteMeta("FROM chess_sessions")).
			WillReturnError(errors.New("db error"))

		_, err := repo.List(ctx)
		assert.Error(t, err)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_FindActive(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	t.Run("Running session found", func(t *testing.T) {
		started := time.Date(2024, 1, 15, 12, 45, 0, 0, time.UTC)
		mockDB.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND kind = $2 AND status = $3")).
			WithArgs("2023630123", "student", domain.ChessActive).
			WillReturnRows(sessionRows(domain.ChessSession{
				ID: 7, UserID: "2023630123", Name: "Ana López", Kind: "student",
				Status: domain.ChessActive, StartedAt: started, CreatedAt: started,
			}))

		session, err := repo.FindActive(ctx, "2023630123", "student")
		assert.NoError(t, err)
		assert.Equal(t, 7, session.ID)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("No running session", func(t *testing.T) {
		mockDB.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND kind = $2 AND status = $3")).
			WithArgs("999", "student", domain.ChessActive).
			WillReturnError(pgx.ErrNoRows)

		session, err := repo.FindActive(ctx, "999", "student")
		assert.NoError(t, err)
		assert.Nil(t, session)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_Save(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	started := time.Date(2024, 1, 15, 12, 45, 0, 0, time.UTC)
	session := &domain.ChessSession{
		UserID: "2023630123", Name: "Ana López", Kind: "student",
		Status: domain.ChessActive, StartedAt: started, CreatedAt: started,
	}
	mockDB.ExpectQuery(regexp.QuoteMeta("INSERT INTO chess_sessions")).
		WithArgs(session.UserID, session.Name, session.Kind, session.Status, session.StartedAt, session.CreatedAt).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(7))

	assert.NoError(t, repo.Save(ctx, session))
	assert.Equal(t, 7, session.ID)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_Finish(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	at := time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)

	t.Run("Running session closed", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("SET status = $1, ended_at = $2")).
			WithArgs(domain.ChessFinished, at, "2023630123", "student", domain.ChessActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.Finish(ctx, "2023630123", "student", at)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Nothing running", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("SET status = $1, ended_at = $2")).
			WithArgs(domain.ChessFinished, at, "999", "student", domain.ChessActive).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.Finish(ctx, "999", "student", at)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRepository_Restart(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	at := time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)
	mockDB.ExpectExec(regexp.QuoteMeta("SET status = $1, started_at = $2, ended_at = NULL")).
		WithArgs(domain.ChessActive, at, "2023630123", "student").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	ok, err := repo.Restart(ctx, "2023630123", "student", at)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mockDB := NewMock(t)
	ctx := context.Background()

	t.Run("Session removed", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM chess_sessions")).
			WithArgs(7).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		ok, err := repo.Delete(ctx, 7)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("Unknown id", func(t *testing.T) {
		mockDB.ExpectExec(regexp.QuoteMeta("DELETE FROM chess_sessions")).
			WithArgs(99).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		ok, err := repo.Delete(ctx, 99)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
