package service

import (
	"github.com/cecyt19/biblioteca/internal/config"
	"github.com/cecyt19/biblioteca/internal/repo"
	chessservice "github.com/cecyt19/biblioteca/internal/service/chessservice"
	dashboardservice "github.com/cecyt19/biblioteca/internal/service/dashboardservice"
	fineservice "github.com/cecyt19/biblioteca/internal/service/fineservice"
	inventoryservice "github.com/cecyt19/biblioteca/internal/service/inventoryservice"
	loanservice "github.com/cecyt19/biblioteca/internal/service/loanservice"
	personservice "github.com/cecyt19/biblioteca/internal/service/personservice"
	siteservice "github.com/cecyt19/biblioteca/internal/service/siteservice"
)

type Services struct {
	LoanService      *loanservice.Service
	FineService      *fineservice.Service
	InventoryService *inventoryservice.Service
	PersonService    *personservice.Service
	SiteService      *siteservice.Service
	ChessService     *chessservice.Service
	DashboardService *dashboardservice.Service
}

func New(repo *repo.Repositories, cfg *config.Config) *Services {
	loc := cfg.Location()

	inventoryService := inventoryservice.New(repo.InventoryRepo)
	loanService := loanservice.New(repo.LoanRepo, repo.ReturnRepo, repo.FineRepo, inventoryService, loc, cfg.DefaultLoanDays)
	fineService := fineservice.New(repo.FineRepo, repo.LoanRepo, repo.ReturnRepo, inventoryService, cfg.FineRatePerDay, loc)
	personService := personservice.New(repo.PersonRepo)
	siteService := siteservice.New(repo.SiteRepo, cfg.SiteRetentionDays, loc)
	chessService := chessservice.New(repo.ChessRepo, loc)
	dashboardService := dashboardservice.New(repo.LoanRepo, inventoryService, personService, loc)

	return &Services{
		LoanService:      loanService,
		FineService:      fineService,
		InventoryService: inventoryService,
		PersonService:    personService,
		SiteService:      siteService,
		ChessService:     chessService,
		DashboardService: dashboardService,
	}
}
