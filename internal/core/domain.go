package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  Type = "Income"
	Expense Type = "Expense"
	Savings Type = "Savings"
)

const dateLayout = "2006-01-02"

type (
	// Type classifies a money movement.
	Type string

	// Date is a calendar date without a time component. It renders and
	// marshals as YYYY-MM-DD, which is also the wire format of the store.
	Date struct {
		time.Time
	}

	// Transaction is one dated money movement. The date is stamped at
	// creation time and never changes; the store-assigned identity is not
	// referenced by this application.
	Transaction struct {
		Date     Date
		Type     Type
		Category string
		Amount   decimal.Decimal
	}
)

var (
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrEmptyCategory = errors.New("empty category")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// IsValid returns true for the fixed set of transaction types.
func (t Type) IsValid() bool {
	switch t {
	case Income, Expense, Savings:
		return true
	default:
		return false
	}
}

func (t Type) String() string {
	return string(t)
}

// NewDate creates a Date from year, month, day (UTC).
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// After reports whether d falls on a later calendar day than other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Validate checks the invariants the UI enforces before submission:
// a known type, a non-empty category and a strictly positive amount.
// The store itself performs no validation.
func (tx Transaction) Validate() error {
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if !tx.Type.IsValid() {
		return ErrInvalidType
	}
	if strings.TrimSpace(tx.Category) == "" {
		return ErrEmptyCategory
	}
	if !tx.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}
