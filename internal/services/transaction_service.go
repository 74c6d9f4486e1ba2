package services

import (
	"finanzas/internal/domain"
	"finanzas/internal/repos"
	"finanzas/internal/validate"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionService struct {
	Txns *repos.TransactionRepo
}

func NewTransactionService(txns *repos.TransactionRepo) *TransactionService {
	return &TransactionService{Txns: txns}
}

// TransactionInput is the validated-at-the-service creation payload.
type TransactionInput struct {
	Concepto string
	Monto    decimal.Decimal
	Fecha    string
}

// List returns every transaction with its owner annotation, fecha descending.
func (s *TransactionService) List() ([]domain.TransactionWithOwner, error) {
	rows, err := s.Txns.ListWithOwner()
	if err != nil {
		return nil, err
	}
	out := make([]domain.TransactionWithOwner, 0, len(rows))
	for _, r := range rows {
		out = append(out, withOwner(r))
	}
	return out, nil
}

// Create validates the payload and inserts one transaction owned by owner.
// All validation happens before any store access.
func (s *TransactionService) Create(owner *domain.User, in TransactionInput) (*domain.TransactionWithOwner, error) {
	concepto, ok := validate.Concepto(in.Concepto)
	if !ok {
		return nil, ValidationError("concepto must be 3-100 characters")
	}
	if !validate.Monto(in.Monto) {
		return nil, ValidationError("monto must be non-zero")
	}
	fecha, ok := validate.Fecha(in.Fecha)
	if !ok {
		return nil, ValidationError("fecha must be a valid date")
	}

	id := uuid.NewString()
	if err := s.Txns.Create(id, concepto, in.Monto, fecha, owner.ID); err != nil {
		return nil, err
	}
	row, err := s.Txns.GetWithOwner(id)
	if err != nil {
		return nil, err
	}
	created := withOwner(*row)
	return &created, nil
}

func withOwner(r repos.TransactionRow) domain.TransactionWithOwner {
	return domain.TransactionWithOwner{
		Transaction: domain.Transaction{
			ID:        r.ID,
			Concepto:  r.Concepto,
			Monto:     r.Monto,
			Fecha:     r.Fecha,
			UserID:    r.UserID,
			CreatedAt: r.CreatedAt,
		},
		User: domain.Owner{Name: r.OwnerName, Email: r.OwnerEmail},
	}
}
