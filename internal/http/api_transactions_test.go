package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

type txnResp struct {
	ID       string  `json:"id"`
	Concepto string  `json:"concepto"`
	Monto    float64 `json:"monto"`
	Fecha    string  `json:"fecha"`
	UserID   string  `json:"userId"`
	User     struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func TestListTransactionsOrderedByFechaDesc(t *testing.T) {
	app, _ := newAPIApp(t)

	resp := apiReq(t, app, "GET", "/api/transactions", "sid-user", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []txnResp
	decodeBody(t, resp, &list)
	require.Len(t, list, 10)

	// Seed dates run 2024-10-01..10; newest first
	require.Equal(t, "Gift", list[0].Concepto)
	require.Equal(t, "2024-10-10", list[0].Fecha)
	require.Equal(t, "Salary", list[9].Concepto)
	for i := 1; i < len(list); i++ {
		require.LessOrEqual(t, list[i].Fecha, list[i-1].Fecha)
	}

	// Owner annotation present on every record
	for _, tx := range list {
		require.NotEmpty(t, tx.User.Name)
		require.NotEmpty(t, tx.User.Email)
	}
}

// Scenario: admin creates a transaction, then the list yields it exactly
// once, first under descending-date order.
func TestCreateTransactionAsAdmin(t *testing.T) {
	app, _ := newAPIApp(t)

	resp := apiReq(t, app, "POST", "/api/transactions", "sid-admin", map[string]any{
		"concepto": "Venta de productos",
		"monto":    1500.50,
		"fecha":    "2024-12-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created txnResp
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Venta de productos", created.Concepto)
	require.Equal(t, 1500.50, created.Monto)
	require.Equal(t, "2024-12-01", created.Fecha)
	require.Equal(t, "u-admin", created.UserID)
	require.Equal(t, "Admin User", created.User.Name)
	require.Equal(t, "admin@example.com", created.User.Email)

	listResp := apiReq(t, app, "GET", "/api/transactions", "sid-admin", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var list []txnResp
	decodeBody(t, listResp, &list)
	require.Len(t, list, 11)
	require.Equal(t, created.ID, list[0].ID, "newest fecha sorts first")

	seen := 0
	for _, tx := range list {
		if tx.ID == created.ID {
			seen++
		}
	}
	require.Equal(t, 1, seen)
}

// Scenario: a non-admin attempting the same POST gets 403 and the ledger is
// unchanged.
func TestCreateTransactionForbiddenForUser(t *testing.T) {
	app, db := newAPIApp(t)
	before := txnCount(t, db)

	resp := apiReq(t, app, "POST", "/api/transactions", "sid-user", map[string]any{
		"concepto": "Venta de productos",
		"monto":    1500.50,
		"fecha":    "2024-01-15",
	})
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "Forbidden: Admin access required", body["message"])
	require.Equal(t, before, txnCount(t, db))
}

func TestCreateTransactionValidation(t *testing.T) {
	app, db := newAPIApp(t)
	before := txnCount(t, db)

	cases := []struct {
		name string
		body map[string]any
	}{
		{"missing concepto", map[string]any{"monto": 10, "fecha": "2024-01-15"}},
		{"missing monto", map[string]any{"concepto": "Venta", "fecha": "2024-01-15"}},
		{"missing fecha", map[string]any{"concepto": "Venta", "monto": 10}},
		{"zero monto", map[string]any{"concepto": "Venta", "monto": 0, "fecha": "2024-01-15"}},
		{"short concepto", map[string]any{"concepto": "ab", "monto": 10, "fecha": "2024-01-15"}},
		{"bad fecha", map[string]any{"concepto": "Venta", "monto": 10, "fecha": "not-a-date"}},
	}
	for _, tc := range cases {
		resp := apiReq(t, app, "POST", "/api/transactions", "sid-admin", tc.body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, tc.name)
	}

	require.Equal(t, before, txnCount(t, db), "rejected payloads never reach the store")
}

// monto arrives as a numeric string from some clients; the decoder accepts
// it and the stored value round-trips exactly.
func TestCreateTransactionMontoAsString(t *testing.T) {
	app, _ := newAPIApp(t)

	resp := apiReq(t, app, "POST", "/api/transactions", "sid-admin", map[string]any{
		"concepto": "Reembolso parcial",
		"monto":    "-250.75",
		"fecha":    "2024-11-20",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created txnResp
	decodeBody(t, resp, &created)
	require.Equal(t, -250.75, created.Monto)
}

// Scenario: the store fails during the request; the handler answers 500 with
// the generic message and nothing else.
func TestTransactionsStoreFailure(t *testing.T) {
	app, db := newAPIApp(t)
	db.MustExec(`DROP TABLE transactions`)

	resp := apiReq(t, app, "POST", "/api/transactions", "sid-admin", map[string]any{
		"concepto": "Venta de productos",
		"monto":    1500.50,
		"fecha":    "2024-01-15",
	})
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	var body map[string]string
	decodeBody(t, resp, &body)
	require.Equal(t, "Internal server error", body["message"])

	listResp := apiReq(t, app, "GET", "/api/transactions", "sid-user", nil)
	require.Equal(t, http.StatusInternalServerError, listResp.StatusCode)
}
