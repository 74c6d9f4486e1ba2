package domain

import "github.com/shopspring/decimal"

// Transaction is a signed monetary record attributed to one user. The sign
// of Monto encodes income (positive) vs expense (negative); zero is invalid.
type Transaction struct {
	ID        string          `json:"id"`
	Concepto  string          `json:"concepto"`
	Monto     decimal.Decimal `json:"monto"`
	Fecha     string          `json:"fecha"` // YYYY-MM-DD
	UserID    string          `json:"userId"`
	CreatedAt string          `json:"createdAt"`
}

// Owner annotates a transaction with its owning user's public identity.
type Owner struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type TransactionWithOwner struct {
	Transaction
	User Owner `json:"user"`
}

// ProfileStats are derived per-user figures shown on the profile page.
type ProfileStats struct {
	TransactionCount int             `json:"transactionCount"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
}

type Profile struct {
	UserProjection
	Statistics ProfileStats `json:"statistics"`
}
