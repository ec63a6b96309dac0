package interfaces

import (
	"context"
	"time"

	"autocare360/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ITimeLogRepository abstracts DynamoDB persistence for TimeLogEntry.
//
// SumMinutes aggregates logged minutes for one employee over
// [startInclusive, endExclusive). The NullDecimal is invalid when the window
// holds no entries, mirroring a SQL SUM over zero rows.

type ITimeLogRepository interface {
	Insert(ctx context.Context, e entities.TimeLogEntry) (entities.TimeLogEntry, error)
	SumMinutes(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) (decimal.NullDecimal, error)
	ListByEmployee(ctx context.Context, employeeID string, startInclusive, endExclusive time.Time) ([]entities.TimeLogEntry, error)
}
