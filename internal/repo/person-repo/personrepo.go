package personrepo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/cecyt19/biblioteca/internal/domain"
	"github.com/cecyt19/biblioteca/internal/pg"
	"go.uber.org/zap"
)

// Identifier key variants per registry. Student records key on the boleta,
// staff records on the employee number; both appear in several spellings and
// sometimes as numbers, which doc->> flattens to text anyway.
var identifierKeys = map[string][]string{
	domain.BorrowerStudent: {"Boleta", "boleta"},
	domain.BorrowerStaff:   {"No Empleado", "NoEmpleado", "no_empleado", "noEmpleado"},
}

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, kind string, page, pageSize int) ([]domain.Person, error) {
	query := `
        SELECT id, kind, doc
        FROM people
        WHERE kind = $1
        ORDER BY id ASC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, kind, pageSize, (page-1)*pageSize)
	if err != nil {
		zap.L().Error("can't list people", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Kind, &p.Doc); err != nil {
			zap.L().Error("can't scan person row", zap.Error(err))
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

func (r *Repository) All(ctx context.Context, kind string) ([]domain.Person, error) {
	query := `
        SELECT id, kind, doc
        FROM people
        WHERE kind = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, kind)
	if err != nil {
		zap.L().Error("can't fetch people", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var people []domain.Person
	for rows.Next() {
		var p domain.Person
		if err := rows.Scan(&p.ID, &p.Kind, &p.Doc); err != nil {
			zap.L().Error("can't scan person row", zap.Error(err))
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

func (r *Repository) Count(ctx context.Context, kind string) (int, error) {
	query := `
        SELECT COUNT(*)
        FROM people
        WHERE kind = $1
    `
	var count int
	if err := r.db.QueryRow(ctx, query, kind).Scan(&count); err != nil {
		zap.L().Error("can't count people", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *Repository) Save(ctx context.Context, kind string, doc domain.Document) error {
	query := `
        INSERT INTO people (kind, doc)
        VALUES ($1, $2)
    `
	if _, err := r.db.Exec(ctx, query, kind, doc); err != nil {
		zap.L().Error("can't save person", zap.Error(err))
		return err
	}
	return nil
}

// FindByIdentifier does a point lookup by boleta or employee number, ORing
// over the key variants the registry uses.
func (r *Repository) FindByIdentifier(ctx context.Context, kind, identifier string) (*domain.Person, error) {
	keys, ok := identifierKeys[kind]
	if !ok {
		return nil, fmt.Errorf("unknown registry kind: %s", kind)
	}

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("doc->>'%s' = $2", k))
	}
	query := fmt.Sprintf(`
        SELECT id, kind, doc
        FROM people
        WHERE kind = $1 AND (%s)
        LIMIT 1
    `, strings.Join(parts, " OR "))

	var p domain.Person
	err := r.db.QueryRow(ctx, query, kind, identifier).Scan(&p.ID, &p.Kind, &p.Doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find person", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
