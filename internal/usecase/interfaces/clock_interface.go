package interfaces

import "time"

// Clock supplies the current time to the workload calculator so week/month
// windows can be fixed in tests instead of reading the wall clock.

type Clock interface {
	Now() time.Time
}
