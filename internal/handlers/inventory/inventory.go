package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/cecyt19/biblioteca/internal/domain"
	inventoryrepo "github.com/cecyt19/biblioteca/internal/repo/inventory-repo"
	"github.com/cecyt19/biblioteca/internal/service/inventoryservice"
	"github.com/cecyt19/biblioteca/internal/service/personservice"
	"github.com/cecyt19/biblioteca/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filters inventoryrepo.Filters, page, pageSize int) ([]inventoryservice.Item, int, error)
	Register(ctx context.Context, doc domain.Document) error
	Search(ctx context.Context, query string) ([]inventoryservice.Item, error)
}

type People interface {
	SearchStudents(ctx context.Context, query string) ([]personservice.Student, error)
}

type InventoryHandler struct {
	inventoryService Service
	personService    People
}

func New(inventoryService Service, personService People) *InventoryHandler {
	return &InventoryHandler{
		inventoryService: inventoryService,
		personService:    personService,
	}
}

type listResponse struct {
	Items []inventoryservice.Item `json:"items"`
	Total int                     `json:"total"`
	Page  int                     `json:"page"`
}

// List godoc
//
//	@Summary		List inventory
//	@Description	Paged inventory listing with optional per-column filters.
//	@Tags			Inventory
//	@Produce		json
//	@Param			page		query		int		false	"Page number"		default(1)
//	@Param			title		query		string	false	"Title filter"
//	@Param			author		query		string	false	"Author filter"
//	@Param			publisher	query		string	false	"Publisher filter"
//	@Param			edition		query		string	false	"Edition filter"
//	@Param			shelf		query		string	false	"Shelf filter"
//	@Success		200			{object}	listResponse
//	@Failure		500			{object}	utils.Response
//	@Router			/api/inventory [get]
func (h *InventoryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	pageSize, _ := strconv.Atoi(q.Get("page_size"))

	filters := inventoryrepo.Filters{
		Title:     q.Get("title"),
		Author:    q.Get("author"),
		Publisher: q.Get("publisher"),
		Edition:   q.Get("edition"),
		Shelf:     q.Get("shelf"),
	}

	items, total, err := h.inventoryService.List(r.Context(), filters, page, pageSize)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if page < 1 {
		page = 1
	}
	if items == nil {
		items = []inventoryservice.Item{}
	}
	utils.RespondWithJSON(w, http.StatusOK, listResponse{Items: items, Total: total, Page: page})
}

// Register godoc
//
//	@Summary		Register an inventory item
//	@Description	Stores the record as received; key spellings are preserved.
//	@Tags			Inventory
//	@Accept			json
//	@Produce		json
//	@Param			item	body		map[string]interface{}	true	"Item record"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response
//	@Failure		500		{object}	utils.Response
//	@Router			/api/inventory [post]
func (h *InventoryHandler) Register(w http.ResponseWriter, r *http.Request) {
	var doc domain.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil || len(doc) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Failed to parse request body")
		return
	}

	if err := h.inventoryService.Register(r.Context(), doc); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "registered"})
}

type searchResponse struct {
	Books    []inventoryservice.Item `json:"books"`
	Students []personservice.Student `json:"students"`
}

// Search godoc
//
//	@Summary		Global search
//	@Description	Matches books and students by any field, ignoring accents and case.
//	@Tags			Inventory
//	@Produce		json
//	@Param			q	query		string	true	"Search text"
//	@Success		200	{object}	searchResponse
//	@Failure		400	{object}	utils.Response	"Empty query"
//	@Failure		500	{object}	utils.Response
//	@Router			/api/search [get]
func (h *InventoryHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Search text is required")
		return
	}

	books, err := h.inventoryService.Search(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	students, err := h.personService.SearchStudents(r.Context(), query)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if books == nil {
		books = []inventoryservice.Item{}
	}
	if students == nil {
		students = []personservice.Student{}
	}
	utils.RespondWithJSON(w, http.StatusOK, searchResponse{Books: books, Students: students})
}
