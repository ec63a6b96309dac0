package usecase

import (
	"time"

	"autocare360/internal/usecase/interfaces"
)

// SystemClock reads the wall clock. Tests substitute a fixed clock.
type SystemClock struct{}

var _ interfaces.Clock = SystemClock{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
