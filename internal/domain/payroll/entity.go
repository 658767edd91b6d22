package payroll

import "github.com/shopspring/decimal"

// TransportationRate is the flat per-work-day allowance.
var TransportationRate = decimal.NewFromInt(10000)

// DailyPayLine prices one work-date of a month at the tier rate of its
// cumulative tenure position.
type DailyPayLine struct {
	Date           string          `json:"date"`
	CumulativeDays int             `json:"cumulative_days"`
	Amount         decimal.Decimal `json:"amount"`
}

// IncentiveLine is one incentive ledger row carried into the pay-slip.
type IncentiveLine struct {
	Date        string          `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// MonthlyPayroll is one worker's settlement for a calendar month.
// Recomputed fresh per request, never persisted by the engine.
type MonthlyPayroll struct {
	WorkerName     string          `json:"worker_name"`
	RosterKey      string          `json:"roster_key,omitempty"`
	Year           int             `json:"year"`
	Month          int             `json:"month"`
	WorkDays       int             `json:"work_days"`
	BasePay        decimal.Decimal `json:"base_pay"`
	Commission     decimal.Decimal `json:"commission"`
	Transportation decimal.Decimal `json:"transportation"`
	TotalPay       decimal.Decimal `json:"total_pay"`
	Breakdown      []DailyPayLine  `json:"breakdown,omitempty"`
	Incentives     []IncentiveLine `json:"incentives,omitempty"`
}

// Failure is one isolated per-worker error inside a batch run.
type Failure struct {
	WorkerName string `json:"worker_name"`
	Reason     string `json:"reason"`
}

// BatchResult carries the payrolls of every worker with at least one
// qualifying work-day in the month plus the isolated failures.
type BatchResult struct {
	BatchID  string           `json:"batch_id"`
	Year     int              `json:"year"`
	Month    int              `json:"month"`
	Payrolls []MonthlyPayroll `json:"payrolls"`
	Failures []Failure        `json:"failures,omitempty"`
}
