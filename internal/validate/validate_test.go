package validate

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConcepto(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Venta de productos", "Venta de productos", true},
		{"  padded  ", "padded", true},
		{"ab", "", false},
		{"", "", false},
		{strings.Repeat("x", 100), strings.Repeat("x", 100), true},
		{strings.Repeat("x", 101), "", false},
	}
	for _, tc := range cases {
		got, ok := Concepto(tc.in)
		assert.Equal(t, tc.ok, ok, tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got)
		}
	}
}

func TestMonto(t *testing.T) {
	assert.True(t, Monto(decimal.RequireFromString("1500.50")))
	assert.True(t, Monto(decimal.RequireFromString("-0.01")))
	assert.False(t, Monto(decimal.Zero))
	assert.False(t, Monto(decimal.RequireFromString("0.00")))
}

func TestFecha(t *testing.T) {
	got, ok := Fecha("2024-01-15")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15", got)

	got, ok = Fecha("2024-01-15T09:30:00Z")
	assert.True(t, ok)
	assert.Equal(t, "2024-01-15", got)

	for _, bad := range []string{"", "15/01/2024", "2024-13-40", "ayer"} {
		_, ok := Fecha(bad)
		assert.False(t, ok, bad)
	}
}

func TestRole(t *testing.T) {
	for _, good := range []string{"admin", "user", " admin "} {
		got, ok := Role(good)
		assert.True(t, ok, good)
		assert.Contains(t, []string{"admin", "user"}, got)
	}
	for _, bad := range []string{"", "ADMIN", "administrador", "root"} {
		_, ok := Role(bad)
		assert.False(t, ok, bad)
	}
}

func TestEmail(t *testing.T) {
	_, ok := Email("user1@example.com")
	assert.True(t, ok)
	for _, bad := range []string{"", "no-at", "a@b", "x@y."} {
		_, ok := Email(bad)
		assert.False(t, ok, bad)
	}
}

func TestPassword(t *testing.T) {
	assert.True(t, Password("password123"))
	assert.False(t, Password("short"))
	assert.False(t, Password(strings.Repeat("p", 73)))
}
