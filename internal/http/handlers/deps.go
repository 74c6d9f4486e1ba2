package handlers

import (
	"finanzas/internal/config"
	"finanzas/internal/repos"
	"finanzas/internal/services"

	"github.com/jmoiron/sqlx"
)

type Deps struct {
	TransactionHandler *TransactionHandler
	UserHandler        *UserHandler
	ProfileHandler     *ProfileHandler
	ReportHandler      *ReportHandler
	PageHandler        *PageHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, auth *services.AuthService) *Deps {
	userRepo := repos.NewUserRepo(db)
	txnRepo := repos.NewTransactionRepo(db)

	txnSvc := services.NewTransactionService(txnRepo)
	userSvc := services.NewUserService(userRepo, txnRepo)
	repSvc := services.NewReportService(txnRepo)

	return &Deps{
		TransactionHandler: &TransactionHandler{Txns: txnSvc},
		UserHandler:        &UserHandler{Users: userSvc},
		ProfileHandler:     &ProfileHandler{Users: userSvc},
		ReportHandler:      &ReportHandler{Reports: repSvc},
		PageHandler:        &PageHandler{Txns: txnSvc, Users: userSvc},
	}
}
