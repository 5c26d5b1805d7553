package siteservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/pkg/businessdays"
	"go.uber.org/zap"
)

type Repo interface {
	Save(ctx context.Context, entry *domain.SiteEntry) error
	List(ctx context.Context) ([]domain.SiteEntry, error)
	SoftDelete(ctx context.Context, id int) (bool, error)
	Restart(ctx context.Context, id int, now time.Time) (bool, error)
	AppendObservation(ctx context.Context, kind, borrowerID string, obs domain.Observation) (bool, error)
	ListOlderThan(ctx context.Context, cutoff time.Time) ([]domain.SiteEntry, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
	SaveSummary(ctx context.Context, s *domain.SiteSummary) error
}

var (
	ErrNotFound            = errors.New("site entry not found")
	ErrObservationRequired = errors.New("observation text required")
)

type Service struct {
	repo          Repo
	retentionDays int
	loc           *time.Location
	now           func() time.Time
}

func New(repo Repo, retentionDays int, loc *time.Location) *Service {
	if retentionDays <= 0 {
		retentionDays = 30
	}
	return &Service{
		repo:          repo,
		retentionDays: retentionDays,
		loc:           loc,
		now:           time.Now,
	}
}

// inferShift guesses the shift from the schedule-load text the student signed
// up with; morning is the historical default when nothing matches.
func inferShift(load string) string {
	upper := strings.ToUpper(load)
	switch {
	case strings.Contains(upper, "MATUTINO") || strings.Contains(upper, "MAÑANA"):
		return "Matutino"
	case strings.Contains(upper, "VESPERTINO") || strings.Contains(upper, "TARDE"):
		return "Vespertino"
	case strings.Contains(upper, "NOCTURNO") || strings.Contains(upper, "NOCHE"):
		return "Nocturno"
	default:
		return "Matutino"
	}
}

type CheckInRequest struct {
	Kind       string
	Name       string
	BorrowerID string
	Group      string
	Load       string
	Email      string
	Shift      string
	Occupation string
}

func (s *Service) CheckIn(ctx context.Context, req CheckInRequest) (*domain.SiteEntry, error) {
	now := s.now().In(s.loc)
	shift := req.Shift
	if shift == "" {
		shift = inferShift(req.Load)
	}

	entry := &domain.SiteEntry{
		Kind:         req.Kind,
		Name:         req.Name,
		BorrowerID:   req.BorrowerID,
		Group:        req.Group,
		Load:         req.Load,
		Email:        req.Email,
		Shift:        shift,
		Occupation:   req.Occupation,
		Date:         now.Format("2006-01-02"),
		EntryTime:    now.Format("15:04:05"),
		Observations: []domain.Observation{},
		CreatedAt:    now,
	}
	if err := s.repo.Save(ctx, entry); err != nil {
		zap.L().Error("failed to register check-in", zap.Error(err))
		return nil, err
	}
	return entry, nil
}

func (s *Service) List(ctx context.Context) ([]domain.SiteEntry, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	ok, err := s.repo.SoftDelete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) RestartCounter(ctx context.Context, id int) error {
	ok, err := s.repo.Restart(ctx, id, s.now().In(s.loc))
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (s *Service) AddObservation(ctx context.Context, kind, borrowerID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrObservationRequired
	}
	obs := domain.Observation{
		Text: text,
		Date: s.now().In(s.loc).Format("2006-01-02 15:04:05"),
	}
	ok, err := s.repo.AppendObservation(ctx, kind, borrowerID, obs)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// EnforceRetention deletes entries older than the retention window. On the
// last day of the month the stale entries are first rolled up into one
// summary row per (shift, kind), so raw rows never outlive a cycle without
// being summarized.
func (s *Service) EnforceRetention(ctx context.Context) (int, error) {
	now := s.now().In(s.loc)
	cutoff := businessdays.Truncate(now).AddDate(0, 0, -s.retentionDays)

	if isMonthEnd(now) {
		if err := s.summarize(ctx, now, cutoff); err != nil {
			zap.L().Error("failed to summarize site entries", zap.Error(err))
			return 0, err
		}
	}

	purged, err := s.repo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		zap.L().Error("failed to purge site entries", zap.Error(err))
		return 0, err
	}
	if purged > 0 {
		zap.L().Info("site entries purged", zap.Int("count", purged))
	}
	return purged, nil
}

func isMonthEnd(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

func (s *Service) summarize(ctx context.Context, now, cutoff time.Time) error {
	entries, err := s.repo.ListOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	type bucket struct {
		month, shift, kind string
	}
	counts := make(map[bucket]int)
	for _, e := range entries {
		b := bucket{
			month: e.CreatedAt.In(s.loc).Format("2006-01"),
			shift: e.Shift,
			kind:  e.Kind,
		}
		counts[b]++
	}

	for b, n := range counts {
		summary := &domain.SiteSummary{
			Month:     b.month,
			Shift:     b.shift,
			Kind:      b.kind,
			Entries:   n,
			CreatedAt: now,
		}
		if err := s.repo.SaveSummary(ctx, summary); err != nil {
			return err
		}
	}
	return nil
}
