package chessservice

import (
	"context"
	"errors"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context) ([]domain.ChessSession, error)
	FindActive(ctx context.Context, userID, kind string) (*domain.ChessSession, error)
	Save(ctx context.Context, s *domain.ChessSession) error
	Finish(ctx context.Context, userID, kind string, at time.Time) (bool, error)
	Restart(ctx context.Context, userID, kind string, at time.Time) (bool, error)
	Delete(ctx context.Context, id int) (bool, error)
}

var (
	ErrValidation = errors.New("user id, name and kind are required")
	ErrNotFound   = errors.New("chess session not found")
)

// Service runs the chess-board clock: one active session per (user, kind),
// finished by the librarian when the board comes back.
type Service struct {
	repo Repo
	loc  *time.Location
	now  func() time.Time
}

func New(repo Repo, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]domain.ChessSession, error) {
	return s.repo.List(ctx)
}

func (s *Service) FindActive(ctx context.Context, userID, kind string) (*domain.ChessSession, error) {
	if userID == "" || kind == "" {
		return nil, nil
	}
	return s.repo.FindActive(ctx, userID, kind)
}

func (s *Service) Start(ctx context.Context, userID, name, kind string) (*domain.ChessSession, error) {
	if userID == "" || name == "" || kind == "" {
		return nil, ErrValidation
	}
	now := s.now().In(s.loc)
	session := &domain.ChessSession{
		UserID:    userID,
		Name:      name,
		Kind:      kind,
		Status:    domain.ChessActive,
		StartedAt: now,
		CreatedAt: now,
	}
	if err := s.repo.Save(ctx, session); err != nil {
		zap.L().Error("failed to start chess session", zap.Error(err))
		return nil, err
	}
	return session, nil
}

func (s *Service) Finish(ctx context.Context, userID, kind string) error {
	if userID == "" || kind == "" {
		return ErrValidation
	}
	ok, err := s.repo.Finish(ctx, userID, kind, s.now().In(s.loc))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Restart(ctx context.Context, userID, kind string) error {
	if userID == "" || kind == "" {
		return ErrValidation
	}
	ok, err := s.repo.Restart(ctx, userID, kind, s.now().In(s.loc))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
