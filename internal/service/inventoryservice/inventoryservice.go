package inventoryservice

import (
	"context"
	"strings"

	"github.com/cecyt19/biblioteca/internal/domain"
	inventoryrepo "github.com/cecyt19/biblioteca/internal/repo/inventory-repo"
	"github.com/cecyt19/biblioteca/pkg/fields"
	"go.uber.org/zap"
)

type Repo interface {
	List(ctx context.Context, filters inventoryrepo.Filters, page, pageSize int) ([]domain.InventoryItem, error)
	Count(ctx context.Context, filters inventoryrepo.Filters) (int, error)
	All(ctx context.Context) ([]domain.InventoryItem, error)
	FindByCodeOrTitle(ctx context.Context, code, title string) (*domain.InventoryItem, error)
	Save(ctx context.Context, doc domain.Document) error
	SetAvailable(ctx context.Context, id, count int) error
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

// Item is an inventory document flattened to the canonical fields the front
// end displays, whatever keys the source document used.
type Item struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Publisher string `json:"publisher"`
	Edition   string `json:"edition"`
	Shelf     string `json:"shelf"`
	Available int    `json:"available"`
}

func flatten(doc domain.Document) Item {
	edition := fields.ResolveString(doc, "EDICIÓN", "EDICION", "Edicion", "edicion", "Edición")
	if edition == "" {
		edition = "-"
	}
	count, _ := fields.ResolveCount(doc)
	return Item{
		ISBN:      fields.ResolveString(doc, "ISBN", "Isbn", "isbn"),
		Title:     fields.ResolveString(doc, "TÍTULO", "TITULO", "Titulo", "titulo"),
		Author:    fields.ResolveString(doc, "AUTOR", "Autor", "autor"),
		Publisher: fields.ResolveString(doc, "EDITORIAL", "Editorial", "editorial"),
		Edition:   edition,
		Shelf:     fields.ResolveString(doc, "ESTANTE", "Estante", "estante"),
		Available: count,
	}
}

func (s *Service) List(ctx context.Context, filters inventoryrepo.Filters, page, pageSize int) ([]Item, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 50
	}
	docs, err := s.repo.List(ctx, filters, page, pageSize)
	if err != nil {
		zap.L().Error("failed to list inventory", zap.Error(err))
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, filters)
	if err != nil {
		zap.L().Error("failed to count inventory", zap.Error(err))
		return nil, 0, err
	}

	items := make([]Item, 0, len(docs))
	for _, d := range docs {
		items = append(items, flatten(d.Doc))
	}
	return items, total, nil
}

func (s *Service) Register(ctx context.Context, doc domain.Document) error {
	return s.repo.Save(ctx, doc)
}

// Search matches the query against title, ISBN, author and publisher with
// accents and case ignored.
func (s *Service) Search(ctx context.Context, query string) ([]Item, error) {
	q := strings.ToLower(fields.Normalize(query))
	docs, err := s.repo.All(ctx)
	if err != nil {
		zap.L().Error("failed to fetch inventory for search", zap.Error(err))
		return nil, err
	}

	var matches []Item
	for _, d := range docs {
		item := flatten(d.Doc)
		haystack := strings.ToLower(fields.Normalize(
			item.Title + "\x00" + item.ISBN + "\x00" + item.Author + "\x00" + item.Publisher,
		))
		if q != "" && strings.Contains(haystack, q) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// ShelfTotal sums resolvable availability over the whole inventory.
func (s *Service) ShelfTotal(ctx context.Context) (int, error) {
	docs, err := s.repo.All(ctx)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, d := range docs {
		if n, ok := fields.ResolveCount(d.Doc); ok && n > 0 {
			total += n
		}
	}
	return total, nil
}

// Adjust changes an item's availability by delta, flooring at zero. The item
// is looked up by catalog code first, then by title. The counter is read
// through the field resolver (it may hide under legacy aliases) and written
// back under the canonical key. An unresolvable counter behaves like a
// missing field: it becomes max(delta, 0), so a checkout writes a defensive
// zero and a return seeds the counter at one.
func (s *Service) Adjust(ctx context.Context, code, title string, delta int) error {
	item, err := s.repo.FindByCodeOrTitle(ctx, code, title)
	if err != nil {
		return err
	}
	if item == nil {
		zap.L().Warn("no inventory item matched for adjustment",
			zap.String("code", code), zap.String("title", title))
		return nil
	}

	count, ok := fields.ResolveCount(item.Doc)
	if !ok {
		count = 0
	}
	next := count + delta
	if next < 0 {
		next = 0
	}
	return s.repo.SetAvailable(ctx, item.ID, next)
}
