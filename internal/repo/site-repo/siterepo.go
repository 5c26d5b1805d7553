package siterepo

import (
	"context"
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

const entryColumns = `id, kind, name, borrower_id, group_name, schedule_load, email, shift, occupation, entry_date, entry_time, observations, deleted, restarted, created_at`

func scanEntry(row pgx.Row) (*domain.SiteEntry, error) {
	var e domain.SiteEntry
	err := row.Scan(
		&e.ID, &e.Kind, &e.Name, &e.BorrowerID, &e.Group, &e.Load, &e.Email,
		&e.Shift, &e.Occupation, &e.Date, &e.EntryTime, &e.Observations,
		&e.Deleted, &e.Restarted, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Save(ctx context.Context, entry *domain.SiteEntry) error {
	query := `
        INSERT INTO site_entries (kind, name, borrower_id, group_name, schedule_load, email, shift, occupation, entry_date, entry_time, observations, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id
    `
	obs := entry.Observations
	if obs == nil {
		obs = []domain.Observation{}
	}
	err := r.db.QueryRow(ctx, query,
		entry.Kind, entry.Name, entry.BorrowerID, entry.Group, entry.Load, entry.Email,
		entry.Shift, entry.Occupation, entry.Date, entry.EntryTime, obs, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		zap.L().Error("can't save site entry", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) List(ctx context.Context) ([]domain.SiteEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM site_entries
        WHERE deleted = FALSE
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list site entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SiteEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan site entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

// SoftDelete hides an entry from the front end without destroying the row;
// the retention purge removes it for real later.
func (r *Repository) SoftDelete(ctx context.Context, id int) (bool, error) {
	query := `
        UPDATE site_entries
        SET deleted = TRUE
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't delete site entry", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Restart re-stamps an entry's times, the "reset counter" button.
func (r *Repository) Restart(ctx context.Context, id int, now time.Time) (bool, error) {
	query := `
        UPDATE site_entries
        SET restarted = TRUE, entry_date = $1, entry_time = $2, created_at = $3
        WHERE id = $4
    `
	tag, err := r.db.Exec(ctx, query, now.Format("2006-01-02"), now.Format("15:04:05"), now, id)
	if err != nil {
		zap.L().Error("can't restart site entry", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AppendObservation pushes an observation onto the newest non-deleted entry
// for the given person.
func (r *Repository) AppendObservation(ctx context.Context, kind, borrowerID string, obs domain.Observation) (bool, error) {
	query := `
        UPDATE site_entries
        SET observations = observations || $1::jsonb
        WHERE id = (
            SELECT id
            FROM site_entries
            WHERE kind = $2 AND borrower_id = $3 AND deleted = FALSE
            ORDER BY created_at DESC
            LIMIT 1
        )
    `
	tag, err := r.db.Exec(ctx, query, []domain.Observation{obs}, kind, borrowerID)
	if err != nil {
		zap.L().Error("can't append observation", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *Repository) ListOlderThan(ctx context.Context, cutoff time.Time) ([]domain.SiteEntry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM site_entries
        WHERE created_at < $1
    `
	rows, err := r.db.Query(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't list stale site entries", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var entries []domain.SiteEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			zap.L().Error("can't scan site entry", zap.Error(err))
			return nil, err
		}
		entries = append(entries, *e)
	}
	return entries, nil
}

func (r *Repository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	query := `
        DELETE FROM site_entries
        WHERE created_at < $1
    `
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		zap.L().Error("can't purge site entries", zap.Error(err))
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *Repository) SaveSummary(ctx context.Context, s *domain.SiteSummary) error {
	query := `
        INSERT INTO site_summaries (month, shift, kind, entries, created_at)
        VALUES ($1, $2, $3, $4, $5)
    `
	if _, err := r.db.Exec(ctx, query, s.Month, s.Shift, s.Kind, s.Entries, s.CreatedAt); err != nil {
		zap.L().Error("can't save site summary", zap.Error(err))
		return err
	}
	return nil
}
