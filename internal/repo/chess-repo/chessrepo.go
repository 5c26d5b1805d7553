package chessrepo

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
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

const sessionColumns = `id, user_id, name, kind, status, started_at, ended_at, created_at`

func scanSession(row pgx.Row) (*domain.ChessSession, error) {
	var s domain.ChessSession
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Kind, &s.Status, &s.StartedAt, &s.EndedAt, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *Repository) List(ctx context.Context) ([]domain.ChessSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM chess_sessions
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list chess sessions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.ChessSession
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			zap.L().Error("can't scan chess session", zap.Error(err))
			return nil, err
		}
		sessions = append(sessions, *s)
	}
	return sessions, nil
}

func (r *Repository) FindActive(ctx context.Context, userID, kind string) (*domain.ChessSession, error) {
	query := `
        SELECT ` + sessionColumns + `
        FROM chess_sessions
        WHERE user_id = $1 AND kind = $2 AND status = $3
        LIMIT 1
    `
	s, err := scanSession(r.db.QueryRow(ctx, query, userID, kind, domain.ChessActive))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find chess session", zap.Error(err))
		return nil, err
	}
	return s, nil
}

func (r *Repository) Save(ctx context.Context, s *domain.ChessSession) error {
	query := `
        INSERT INTO chess_sessions (user_id, name, kind, status, started_at, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, s.UserID, s.Name, s.Kind, s.Status, s.StartedAt, s.CreatedAt).Scan(&s.ID)
	if err != nil {
		zap.L().Error("can't save chess session", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Finish(ctx context.Context, userID, kind string, at time.Time) (bool, error) {
	query := `
        UPDATE chess_sessions
        SET status = $1, ended_at = $2
        WHERE user_id = $3 AND kind = $4 AND status = $5
    `
	tag, err := r.db.Exec(ctx, query, domain.ChessFinished, at, userID, kind, domain.ChessActive)
	if err != nil {
		zap.L().Error("can't finish chess session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Restart(ctx context.Context, userID, kind string, at time.Time) (bool, error) {
	query := `
        UPDATE chess_sessions
        SET status = $1, started_at = $2, ended_at = NULL
        WHERE user_id = $3 AND kind = $4
    `
	tag, err := r.db.Exec(ctx, query, domain.ChessActive, at, userID, kind)
	if err != nil {
		zap.L().Error("can't restart chess session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) Delete(ctx context.Context, id int) (bool, error) {
	query := `
        DELETE FROM chess_sessions
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete chess session", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
