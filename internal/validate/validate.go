package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reRole  = regexp.MustCompile(`^(admin|user)$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name validates a displayable name: at least 2 characters, bounded length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 100 {
		return "", false
	}
	return s, true
}

// ID validates a simple resource identifier (user/transaction ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Role validates the closed role enumeration.
func Role(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reRole.MatchString(s)
}

// Concepto validates the transaction concept text: 3-100 characters.
func Concepto(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 3 || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Monto rejects a zero amount; the sign carries income vs expense.
func Monto(d decimal.Decimal) bool {
	return !d.IsZero()
}

// Fecha accepts a calendar date (or an RFC3339 timestamp, from which the
// date part is taken) and normalizes it to YYYY-MM-DD.
func Fecha(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.Format("2006-01-02"), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC().Format("2006-01-02"), true
	}
	return "", false
}

// Password enforces the signup minimum length; bcrypt caps input at 72 bytes.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 72
}
