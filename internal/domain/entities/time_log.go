package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeLogEntry is one logged interval of work, immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (employee_id-index): employee_id, sort key date (YYYY-MM-DD)
//
// Duration is kept in minutes as a decimal so ledger sums and the hour
// conversion keep exact cents, mirroring the payroll side of the system.
type TimeLogEntry struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Date       time.Time       `json:"date"`
	Minutes    decimal.Decimal `json:"minutes"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TimeLogDateFormat is the storage/sort-key format for entry dates.
const TimeLogDateFormat = "2006-01-02"
