package repo

import (
	"github.com/cecyt19/biblioteca/internal/pg"
	chessrepo "github.com/cecyt19/biblioteca/internal/repo/chess-repo"
	finerepo "github.com/cecyt19/biblioteca/internal/repo/fine-repo"
	inventoryrepo "github.com/cecyt19/biblioteca/internal/repo/inventory-repo"
	loanrepo "github.com/cecyt19/biblioteca/internal/repo/loan-repo"
	personrepo "github.com/cecyt19/biblioteca/internal/repo/person-repo"
	returnrepo "github.com/cecyt19/biblioteca/internal/repo/return-repo"
	siterepo "github.com/cecyt19/biblioteca/internal/repo/site-repo"
)

type Repositories struct {
	LoanRepo      *loanrepo.Repository
	FineRepo      *finerepo.Repository
	InventoryRepo *inventoryrepo.Repository
	ReturnRepo    *returnrepo.Repository
	PersonRepo    *personrepo.Repository
	SiteRepo      *siterepo.Repository
	ChessRepo     *chessrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		LoanRepo:      loanrepo.New(conn, txManager),
		FineRepo:      finerepo.New(conn, txManager),
		InventoryRepo: inventoryrepo.New(conn, txManager),
		ReturnRepo:    returnrepo.New(conn),
		PersonRepo:    personrepo.New(conn),
		SiteRepo:      siterepo.New(conn),
		ChessRepo:     chessrepo.New(conn),
	}
}
