package services

import (
	"encoding/csv"
	"io"
	"sort"

	"finanzas/internal/repos"

	"github.com/shopspring/decimal"
)

type ReportService struct {
	Txns *repos.TransactionRepo
}

func NewReportService(txns *repos.TransactionRepo) *ReportService {
	return &ReportService{Txns: txns}
}

// DailyNet is one day's summed movement inside the report range.
type DailyNet struct {
	Fecha string
	Total decimal.Decimal
}

// Report aggregates the ledger for the admin reports page. Daily, Income and
// Expense cover [From,To]; Balance is the net of the whole ledger regardless
// of range.
type Report struct {
	From    string
	To      string
	Count   int
	Daily   []DailyNet
	Income  decimal.Decimal
	Expense decimal.Decimal // positive magnitude of outgoing montos
	Balance decimal.Decimal
}

// Build filters by fecha in [from,to] (inclusive, YYYY-MM-DD strings) and
// computes the daily net series and the income vs expense split.
func (s *ReportService) Build(from, to string) (*Report, error) {
	rows, err := s.Txns.ListWithOwner()
	if err != nil {
		return nil, err
	}

	rep := &Report{
		From:    from,
		To:      to,
		Income:  decimal.Zero,
		Expense: decimal.Zero,
		Balance: decimal.Zero,
	}

	daily := map[string]decimal.Decimal{}
	for _, r := range rows {
		rep.Balance = rep.Balance.Add(r.Monto)
		if (from != "" && r.Fecha < from) || (to != "" && r.Fecha > to) {
			continue
		}
		rep.Count++
		daily[r.Fecha] = daily[r.Fecha].Add(r.Monto)
		if r.Monto.IsPositive() {
			rep.Income = rep.Income.Add(r.Monto)
		} else {
			rep.Expense = rep.Expense.Add(r.Monto.Abs())
		}
	}

	days := make([]string, 0, len(daily))
	for d := range daily {
		days = append(days, d)
	}
	sort.Strings(days)
	rep.Daily = make([]DailyNet, 0, len(days))
	for _, d := range days {
		rep.Daily = append(rep.Daily, DailyNet{Fecha: d, Total: daily[d]})
	}

	return rep, nil
}

// WriteDailyCSV streams the daily net-movement series as CSV.
func (s *ReportService) WriteDailyCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"fecha", "total"}); err != nil {
		return err
	}
	for _, d := range rep.Daily {
		if err := cw.Write([]string{d.Fecha, d.Total.String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSplitCSV streams the income vs expense split as CSV.
func (s *ReportService) WriteSplitCSV(w io.Writer, rep *Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"tipo", "total"}); err != nil {
		return err
	}
	records := [][]string{
		{"ingresos", rep.Income.String()},
		{"egresos", rep.Expense.String()},
	}
	for _, rec := range records {
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
