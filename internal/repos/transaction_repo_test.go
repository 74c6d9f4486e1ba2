package repos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestListTiesKeepArrivalOrder(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	repo := NewTransactionRepo(db)

	// Two rows sharing the newest fecha; arrival order breaks the tie.
	require.NoError(t, repo.Create("t-tie-1", "Primero", decimal.NewFromInt(10), "2024-12-01", "u-admin"))
	require.NoError(t, repo.Create("t-tie-2", "Segundo", decimal.NewFromInt(20), "2024-12-01", "u-admin"))

	rows, err := repo.ListWithOwner()
	require.NoError(t, err)
	require.Equal(t, "t-tie-1", rows[0].ID)
	require.Equal(t, "t-tie-2", rows[1].ID)
	require.Equal(t, "2024-10-10", rows[2].Fecha)
}

func TestSchemaRejectsZeroMonto(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	repo := NewTransactionRepo(db)

	err = repo.Create("t-zero", "Nada", decimal.Zero, "2024-12-01", "u-admin")
	require.Error(t, err, "the CHECK constraint backs up service validation")
}

func TestMontosByUser(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	repo := NewTransactionRepo(db)

	montos, err := repo.MontosByUser("u-user1")
	require.NoError(t, err)
	require.Len(t, montos, 3)

	total := decimal.Zero
	for _, m := range montos {
		total = total.Add(m)
	}
	require.Equal(t, "-100", total.String())
}
