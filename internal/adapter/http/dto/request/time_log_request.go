package request

import (
	"errors"
	"strings"
	"time"

	"autocare360/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTimeLogDate    = errors.New("invalid time log date")
	ErrInvalidTimeLogMinutes = errors.New("invalid time log minutes")
)

// TimeLogRequest is the POST /time-logs payload. Minutes comes in as a string
// so fractional quantities survive JSON number round-trips intact.
type TimeLogRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Minutes    string `json:"minutes" binding:"required"`
}

func (r TimeLogRequest) ResolveEmployeeID() string {
	return strings.TrimSpace(r.EmployeeID)
}

func (r TimeLogRequest) ResolveDate() (time.Time, error) {
	d, err := time.Parse(entities.TimeLogDateFormat, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, ErrInvalidTimeLogDate
	}
	return d, nil
}

func (r TimeLogRequest) ResolveMinutes() (decimal.Decimal, error) {
	m, err := decimal.NewFromString(strings.TrimSpace(r.Minutes))
	if err != nil {
		return decimal.Zero, ErrInvalidTimeLogMinutes
	}
	return m, nil
}
