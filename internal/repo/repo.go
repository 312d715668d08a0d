package repo

import (
	"github.com/amigomontador/backend/internal/pg"
	applicationrepo "github.com/amigomontador/backend/internal/repo/application-repo"
	assemblerrepo "github.com/amigomontador/backend/internal/repo/assembler-repo"
	bankrepo "github.com/amigomontador/backend/internal/repo/bank-repo"
	messagerepo "github.com/amigomontador/backend/internal/repo/message-repo"
	ratingrepo "github.com/amigomontador/backend/internal/repo/rating-repo"
	servicerepo "github.com/amigomontador/backend/internal/repo/service-repo"
	storerepo "github.com/amigomontador/backend/internal/repo/store-repo"
	userrepo "github.com/amigomontador/backend/internal/repo/user-repo"
)

// Repositories exposes the concrete repositories; each service narrows them
// to the interface it declares.
type Repositories struct {
	UserRepo        *userrepo.Repository
	StoreRepo       *storerepo.Repository
	AssemblerRepo   *assemblerrepo.Repository
	ServiceRepo     *servicerepo.Repository
	ApplicationRepo *applicationrepo.Repository
	MessageRepo     *messagerepo.Repository
	RatingRepo      *ratingrepo.Repository
	BankRepo        *bankrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		UserRepo:        userrepo.New(conn),
		StoreRepo:       storerepo.New(conn),
		AssemblerRepo:   assemblerrepo.New(conn),
		ServiceRepo:     servicerepo.New(conn),
		ApplicationRepo: applicationrepo.New(conn),
		MessageRepo:     messagerepo.New(conn),
		RatingRepo:      ratingrepo.New(conn),
		BankRepo:        bankrepo.New(conn),
	}
}
