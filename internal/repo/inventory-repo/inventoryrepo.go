package inventoryrepo

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

// Key variants the legacy spreadsheets used for each searchable column. The
// documents keep their original spelling; queries OR over every variant.
var (
	codeKeys      = []string{"ISBN", "Isbn", "isbn"}
	titleKeys     = []string{"TÍTULO", "TITULO", "Titulo", "titulo", "Título"}
	authorKeys    = []string{"AUTOR", "Autor", "autor"}
	publisherKeys = []string{"EDITORIAL", "Editorial", "editorial"}
	editionKeys   = []string{"EDICIÓN", "EDICION", "Edicion", "edicion", "Edición"}
	shelfKeys     = []string{"ESTANTE", "Estante", "estante"}
)

type Filters struct {
	Title     string
	Author    string
	Publisher string
	Edition   string
	Shelf     string
}

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

// variantClause builds "(doc->>'K1' ILIKE $n OR doc->>'K2' ILIKE $n ...)" and
// appends the pattern argument once per variant.
func variantClause(keys []string, value string, args *[]any) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		*args = append(*args, "%"+value+"%")
		parts = append(parts, fmt.Sprintf("doc->>'%s' ILIKE $%d", k, len(*args)))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

func (f Filters) where(args *[]any) string {
	var clauses []string
	if f.Title != "" {
		clauses = append(clauses, variantClause(titleKeys, f.Title, args))
	}
	if f.Author != "" {
		clauses = append(clauses, variantClause(authorKeys, f.Author, args))
	}
	if f.Publisher != "" {
		clauses = append(clauses, variantClause(publisherKeys, f.Publisher, args))
	}
	if f.Edition != "" {
		clauses = append(clauses, variantClause(editionKeys, f.Edition, args))
	}
	if f.Shelf != "" {
		clauses = append(clauses, variantClause(shelfKeys, f.Shelf, args))
	}
	if len(clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(clauses, " AND ")
}

func (r *Repository) List(ctx context.Context, filters Filters, page, pageSize int) ([]domain.InventoryItem, error) {
	var args []any
	where := filters.where(&args)
	args = append(args, pageSize, (page-1)*pageSize)
	query := fmt.Sprintf(`
        SELECT id, doc
        FROM inventory%s
        ORDER BY id ASC
        LIMIT $%d OFFSET $%d
    `, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't list inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Doc); err != nil {
			zap.L().Error("can't scan inventory row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) Count(ctx context.Context, filters Filters) (int, error) {
	var args []any
	where := filters.where(&args)
	query := "SELECT COUNT(*) FROM inventory" + where

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		zap.L().Error("can't count inventory", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// All streams every document; the global search and the dashboard shelf sum
// resolve fields in memory because the interesting keys are too irregular to
// query.
func (r *Repository) All(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
        SELECT id, doc
        FROM inventory
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't fetch inventory", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.ID, &item.Doc); err != nil {
			zap.L().Error("can't scan inventory row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func exactClause(keys []string, args *[]any, value string) string {
	parts := make([]string, 0, len(keys))
	*args = append(*args, value)
	n := len(*args)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("doc->>'%s' = $%d", k, n))
	}
	return "(" + strings.Join(parts, " OR ") + ")"
}

// FindByCodeOrTitle looks an item up by catalog code first and falls back to
// the exact title, each ORed over the legacy key spellings.
func (r *Repository) FindByCodeOrTitle(ctx context.Context, code, title string) (*domain.InventoryItem, error) {
	if code != "" {
		item, err := r.findWhere(ctx, codeKeys, code)
		if err != nil || item != nil {
			return item, err
		}
	}
	if title != "" {
		return r.findWhere(ctx, titleKeys, title)
	}
	return nil, nil
}

func (r *Repository) findWhere(ctx context.Context, keys []string, value string) (*domain.InventoryItem, error) {
	var args []any
	query := fmt.Sprintf(`
        SELECT id, doc
        FROM inventory
        WHERE %s
        LIMIT 1
    `, exactClause(keys, &args, value))

	var item domain.InventoryItem
	err := r.db.QueryRow(ctx, query, args...).Scan(&item.ID, &item.Doc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find inventory item", zap.Error(err))
		return nil, err
	}
	return &item, nil
}

func (r *Repository) Save(ctx context.Context, doc domain.Document) error {
	query := `
        INSERT INTO inventory (doc)
        VALUES ($1)
    `
	if _, err := r.db.Exec(ctx, query, doc); err != nil {
		zap.L().Error("can't save inventory item", zap.Error(err))
		return err
	}
	return nil
}

// SetAvailable writes the availability counter back under the canonical
// DISPONIBLES key, whatever alias the document used before.
func (r *Repository) SetAvailable(ctx context.Context, id, count int) error {
	query := `
        UPDATE inventory
        SET doc = jsonb_set(doc, '{DISPONIBLES}', to_jsonb($1::int), true)
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, count, id); err != nil {
		zap.L().Error("can't set availability", zap.Error(err))
		return err
	}
	return nil
}
