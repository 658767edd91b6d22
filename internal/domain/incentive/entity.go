package incentive

import "github.com/shopspring/decimal"

// Entry is one incentive (격려금) sheet row.
type Entry struct {
	Date        string // YYYY-MM-DD
	WorkerName  string
	Amount      decimal.Decimal
	Description string
}
