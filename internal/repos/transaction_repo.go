package repos

import (
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type TransactionRepo struct{ db *sqlx.DB }

func NewTransactionRepo(db *sqlx.DB) *TransactionRepo { return &TransactionRepo{db: db} }

// TransactionRow is a transaction joined with its owner's public identity.
type TransactionRow struct {
	ID         string          `db:"id"`
	Concepto   string          `db:"concepto"`
	Monto      decimal.Decimal `db:"monto"`
	Fecha      string          `db:"fecha"`
	UserID     string          `db:"user_id"`
	CreatedAt  string          `db:"created_at"`
	OwnerName  string          `db:"owner_name"`
	OwnerEmail string          `db:"owner_email"`
}

// ListWithOwner returns every transaction, newest fecha first. Ties on fecha
// keep store arrival order (sqlite rowid is insertion order).
func (r *TransactionRepo) ListWithOwner() ([]TransactionRow, error) {
	out := []TransactionRow{}
	err := r.db.Select(&out, `
		SELECT t.id, t.concepto, t.monto, t.fecha, t.user_id, t.created_at,
		       u.name AS owner_name, u.email AS owner_email
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.fecha DESC, t.rowid ASC
	`)
	return out, err
}

func (r *TransactionRepo) GetWithOwner(id string) (*TransactionRow, error) {
	var row TransactionRow
	err := r.db.Get(&row, `
		SELECT t.id, t.concepto, t.monto, t.fecha, t.user_id, t.created_at,
		       u.name AS owner_name, u.email AS owner_email
		FROM transactions t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = ?
	`, id)
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Create inserts a new transaction owned by userID. One statement; the store
// provides per-row atomicity.
func (r *TransactionRepo) Create(id, concepto string, monto decimal.Decimal, fecha, userID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO transactions(id, concepto, monto, fecha, user_id, created_at)
	  VALUES(?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, id, concepto, monto, fecha, userID)
	return err
}

// MontosByUser returns the amounts of one user's transactions, for the
// profile statistics. Summing happens in the service with exact decimals.
func (r *TransactionRepo) MontosByUser(userID string) ([]decimal.Decimal, error) {
	out := []decimal.Decimal{}
	err := r.db.Select(&out, `SELECT monto FROM transactions WHERE user_id=?`, userID)
	return out, err
}

func (r *TransactionRepo) Count() (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM transactions`)
	return n, err
}
