package handlers

import (
	"net/http"

	_ "github.com/cecyt19/biblioteca/docs"
	"github.com/cecyt19/biblioteca/internal/config"
	chesshandlers "github.com/cecyt19/biblioteca/internal/handlers/chess"
	dashboardhandlers "github.com/cecyt19/biblioteca/internal/handlers/dashboard"
	fineshandlers "github.com/cecyt19/biblioteca/internal/handlers/fines"
	inventoryhandlers "github.com/cecyt19/biblioteca/internal/handlers/inventory"
	loanshandlers "github.com/cecyt19/biblioteca/internal/handlers/loans"
	peoplehandlers "github.com/cecyt19/biblioteca/internal/handlers/people"
	sitehandlers "github.com/cecyt19/biblioteca/internal/handlers/site"
	"github.com/cecyt19/biblioteca/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type LoanHandler interface {
	Checkout(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PendingReturns(w http.ResponseWriter, r *http.Request)
	Return(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)
	Upcoming(w http.ResponseWriter, r *http.Request)
}

type FineHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Settle(w http.ResponseWriter, r *http.Request)
}

type InventoryHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
	Search(w http.ResponseWriter, r *http.Request)
}

type PersonHandler interface {
	ListStudents(w http.ResponseWriter, r *http.Request)
	ListStaff(w http.ResponseWriter, r *http.Request)
	RegisterStudent(w http.ResponseWriter, r *http.Request)
	RegisterStaff(w http.ResponseWriter, r *http.Request)
	LookupStudent(w http.ResponseWriter, r *http.Request)
	LookupStaff(w http.ResponseWriter, r *http.Request)
}

type SiteHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)
	AddObservation(w http.ResponseWriter, r *http.Request)
}

type ChessHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Lookup(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Finish(w http.ResponseWriter, r *http.Request)
	Restart(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type DashboardHandler interface {
	Snapshot(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	LoanHandler      LoanHandler
	FineHandler      FineHandler
	InventoryHandler InventoryHandler
	PersonHandler    PersonHandler
	SiteHandler      SiteHandler
	ChessHandler     ChessHandler
	DashboardHandler DashboardHandler
}

func New(s *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		LoanHandler:      loanshandlers.New(s.LoanService, cfg.FineRatePerDay),
		FineHandler:      fineshandlers.New(s.FineService),
		InventoryHandler: inventoryhandlers.New(s.InventoryService, s.PersonService),
		PersonHandler:    peoplehandlers.New(s.PersonService),
		SiteHandler:      sitehandlers.New(s.SiteService),
		ChessHandler:     chesshandlers.New(s.ChessService),
		DashboardHandler: dashboardhandlers.New(s.DashboardService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Route("/loans", func(r chi.Router) {
			r.Post("/", h.LoanHandler.Checkout)
			r.Get("/", h.LoanHandler.List)
			r.Get("/upcoming", h.LoanHandler.Upcoming)
			r.Post("/return", h.LoanHandler.Return)
			r.Post("/restart", h.LoanHandler.Restart)
		})
		r.Get("/returns", h.LoanHandler.PendingReturns)
		r.Route("/fines", func(r chi.Router) {
			r.Get("/", h.FineHandler.List)
			r.Post("/settle", h.FineHandler.Settle)
		})
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.InventoryHandler.List)
			r.Post("/", h.InventoryHandler.Register)
		})
		r.Get("/search", h.InventoryHandler.Search)
		r.Route("/students", func(r chi.Router) {
			r.Get("/", h.PersonHandler.ListStudents)
			r.Post("/", h.PersonHandler.RegisterStudent)
			r.Get("/lookup", h.PersonHandler.LookupStudent)
		})
		r.Route("/staff", func(r chi.Router) {
			r.Get("/", h.PersonHandler.ListStaff)
			r.Post("/", h.PersonHandler.RegisterStaff)
			r.Get("/lookup", h.PersonHandler.LookupStaff)
		})
		r.Route("/site", func(r chi.Router) {
			r.Get("/", h.SiteHandler.List)
			r.Post("/checkin", h.SiteHandler.CheckIn)
			r.Post("/delete", h.SiteHandler.Delete)
			r.Post("/restart", h.SiteHandler.Restart)
			r.Post("/observation", h.SiteHandler.AddObservation)
		})
		r.Route("/chess", func(r chi.Router) {
			r.Get("/", h.ChessHandler.List)
			r.Get("/lookup", h.ChessHandler.Lookup)
			r.Post("/start", h.ChessHandler.Start)
			r.Post("/finish", h.ChessHandler.Finish)
			r.Post("/restart", h.ChessHandler.Restart)
			r.Post("/delete", h.ChessHandler.Delete)
		})
		r.Get("/dashboard", h.DashboardHandler.Snapshot)
	})

	return r
}
