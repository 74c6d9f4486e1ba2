package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	// Ensure users exist (idempotent; safe to run every start)
	if err := seedUsers(db); err != nil {
		return nil, err
	}
	// Seed demo ledger if the transactions table is empty
	if err := seedTransactionsIfEmpty(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Users & Sessions
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  role TEXT NOT NULL CHECK (role IN ('admin','user')),
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
CREATE INDEX IF NOT EXISTS idx_users_name ON users(name);

CREATE TABLE IF NOT EXISTS sessions(
  id TEXT PRIMARY KEY,               -- same value as the 'sid' cookie
  user_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  last_seen  TEXT
);
CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user_id);

-- Transactions: owner is set at creation and immutable; monto sign encodes
-- income vs expense and zero is rejected at the schema as well.
CREATE TABLE IF NOT EXISTS transactions(
  id TEXT PRIMARY KEY,
  concepto TEXT NOT NULL,
  monto NUMERIC NOT NULL CHECK (monto <> 0),
  fecha TEXT NOT NULL,
  user_id TEXT NOT NULL REFERENCES users(id) ON DELETE RESTRICT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_transactions_fecha ON transactions(fecha);
CREATE INDEX IF NOT EXISTS idx_transactions_user  ON transactions(user_id);
`
	_, err := db.Exec(schema)
	return err
}

// seedUsers ensures one admin and three regular users exist (idempotent).
func seedUsers(db *sqlx.DB) error {
	type u struct {
		ID, Email, Name, Role, Hash string
	}
	mk := func(id, email, name, role, raw string) u {
		h, _ := bcrypt.GenerateFromPassword([]byte(raw), 12)
		return u{ID: id, Email: email, Name: name, Role: role, Hash: string(h)}
	}

	users := []u{
		mk("u-admin", "admin@example.com", "Admin User", "admin", "password123"),
		mk("u-user1", "user1@example.com", "User 1", "user", "password123"),
		mk("u-user2", "user2@example.com", "User 2", "user", "password123"),
		mk("u-user3", "user3@example.com", "User 3", "user", "password123"),
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	for _, x := range users {
		// OR IGNORE keys on any conflict: a seeded user may have changed
		// their email through the profile endpoint, so the row id is the
		// only stable identity across restarts.
		if _, err := tx.Exec(`
			INSERT OR IGNORE INTO users(id,email,name,password_hash,role)
			VALUES(?,?,?,?,?)
		`, x.ID, x.Email, x.Name, x.Hash, x.Role); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func seedTransactionsIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM transactions`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo transactions")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO transactions(id,concepto,monto,fecha,user_id) VALUES
	  ('t-0001','Salary',      2500.00,'2024-10-01','u-admin'),
	  ('t-0002','Groceries',   -150.00,'2024-10-02','u-admin'),
	  ('t-0003','Freelance',    500.00,'2024-10-03','u-user1'),
	  ('t-0004','Rent',        -800.00,'2024-10-04','u-user1'),
	  ('t-0005','Sale',        1500.00,'2024-10-05','u-user2'),
	  ('t-0006','Utilities',   -100.00,'2024-10-06','u-user2'),
	  ('t-0007','Bonus',       1000.00,'2024-10-07','u-user3'),
	  ('t-0008','Dining',       -50.00,'2024-10-08','u-user3'),
	  ('t-0009','Investment',  -500.00,'2024-10-09','u-admin'),
	  ('t-0010','Gift',         200.00,'2024-10-10','u-user1')`)

	return tx.Commit()
}
