package core

import "github.com/shopspring/decimal"

// Summary holds the derived totals over a set of transactions. It is
// recomputed on every query and never stored.
type Summary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Savings decimal.Decimal
	Balance decimal.Decimal
}

// IsZero reports whether all three totals are zero, i.e. there is
// nothing meaningful to chart.
func (s Summary) IsZero() bool {
	return s.Income.IsZero() && s.Expense.IsZero() && s.Savings.IsZero()
}

// Summarize reduces transactions into per-type totals and the balance
// (income - expense - savings) in a single pass. Amounts with an
// unrecognized type are silently excluded from all four outputs.
// An empty input yields the all-zero summary.
func Summarize(rows []Transaction) Summary {
	var s Summary
	for _, tx := range rows {
		switch tx.Type {
		case Income:
			s.Income = s.Income.Add(tx.Amount)
		case Expense:
			s.Expense = s.Expense.Add(tx.Amount)
		case Savings:
			s.Savings = s.Savings.Add(tx.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense).Sub(s.Savings)
	return s
}
