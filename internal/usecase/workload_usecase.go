package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrWorkItemNotFound   = errors.New("work item not found")
	ErrAssignmentConflict = errors.New("active assignment already exists")
	ErrAssignmentNotFound = errors.New("active assignment not found")
	ErrInvalidEmployeeID  = errors.New("invalid employee id")
	ErrInvalidWorkItemID  = errors.New("invalid work item id")
)

// standardWeekHours is the 40-hour week capacity utilization is measured
// against, capped at 100%.
var standardWeekHours = decimal.NewFromInt(40)

var (
	busyThreshold       = decimal.NewFromInt(60)
	overloadedThreshold = decimal.NewFromInt(90)
	maxUtilization      = decimal.NewFromInt(100)
	minutesPerHour      = decimal.NewFromInt(60)
)

// IWorkloadUseCase exposes the employee workload & capacity operations.
//
// Snapshots are derived views recomputed per request; the only write this
// usecase performs is against the assignment registry. Utilization is purely
// reported, never enforced: assigning more work to an employee at 100% is
// allowed.

type IWorkloadUseCase interface {
	GetEmployeeWorkload(ctx context.Context, employeeID string) (entities.WorkloadSnapshot, error)
	ListWorkloads(ctx context.Context) ([]entities.WorkloadSnapshot, error)
	ListAvailability(ctx context.Context) ([]entities.WorkloadSnapshot, error)
	GetCapacityMetrics(ctx context.Context) (entities.CapacityMetrics, error)
	Assign(ctx context.Context, workItemID, employeeID, roleOnJob string) (entities.JobAssignment, error)
	Unassign(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error)
}

type WorkloadUseCase struct {
	employees   interfaces.IEmployeeRepository
	workItems   interfaces.IWorkItemRepository
	assignments interfaces.IJobAssignmentRepository
	timeLogs    interfaces.ITimeLogRepository
	clock       interfaces.Clock
}

var _ IWorkloadUseCase = (*WorkloadUseCase)(nil)

func NewWorkloadUseCase(
	employees interfaces.IEmployeeRepository,
	workItems interfaces.IWorkItemRepository,
	assignments interfaces.IJobAssignmentRepository,
	timeLogs interfaces.ITimeLogRepository,
	clock interfaces.Clock,
) *WorkloadUseCase {
	if clock == nil {
		clock = SystemClock{}
	}
	return &WorkloadUseCase{
		employees:   employees,
		workItems:   workItems,
		assignments: assignments,
		timeLogs:    timeLogs,
		clock:       clock,
	}
}

func (u *WorkloadUseCase) GetEmployeeWorkload(ctx context.Context, employeeID string) (entities.WorkloadSnapshot, error) {
	employeeID = strings.TrimSpace(employeeID)
	if employeeID == "" {
		return entities.WorkloadSnapshot{}, ErrInvalidEmployeeID
	}

	e, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return entities.WorkloadSnapshot{}, err
	}
	if e.ID == "" {
		return entities.WorkloadSnapshot{}, ErrEmployeeNotFound
	}
	return u.computeSnapshot(ctx, e)
}

func (u *WorkloadUseCase) ListWorkloads(ctx context.Context) ([]entities.WorkloadSnapshot, error) {
	all, err := u.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	snapshots := make([]entities.WorkloadSnapshot, 0, len(all))
	for _, e := range all {
		s, err := u.computeSnapshot(ctx, e)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, nil
}

// ListAvailability returns all snapshots least-loaded first. The sort is
// stable, so equal utilizations keep directory order.
func (u *WorkloadUseCase) ListAvailability(ctx context.Context) ([]entities.WorkloadSnapshot, error) {
	snapshots, err := u.ListWorkloads(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(snapshots, func(i, j int) bool {
		return snapshots[i].CapacityUtilization < snapshots[j].CapacityUtilization
	})
	return snapshots, nil
}

func (u *WorkloadUseCase) GetCapacityMetrics(ctx context.Context) (entities.CapacityMetrics, error) {
	snapshots, err := u.ListWorkloads(ctx)
	if err != nil {
		return entities.CapacityMetrics{}, err
	}

	m := entities.CapacityMetrics{TotalEmployees: len(snapshots)}
	total := decimal.Zero
	for _, s := range snapshots {
		switch s.Status {
		case entities.WorkloadStatusAvailable:
			m.AvailableEmployees++
		case entities.WorkloadStatusBusy:
			m.BusyEmployees++
		case entities.WorkloadStatusOverloaded:
			m.OverloadedEmployees++
		}
		total = total.Add(decimal.NewFromFloat(s.CapacityUtilization))
	}
	if len(snapshots) > 0 {
		m.AverageCapacity = round2(total.Div(decimal.NewFromInt(int64(len(snapshots)))))
	}

	active, err := u.workItems.CountActive(ctx)
	if err != nil {
		return entities.CapacityMetrics{}, err
	}
	m.TotalActiveWorkItems = active
	return m, nil
}

func (u *WorkloadUseCase) Assign(ctx context.Context, workItemID, employeeID, roleOnJob string) (entities.JobAssignment, error) {
	workItemID = strings.TrimSpace(workItemID)
	employeeID = strings.TrimSpace(employeeID)
	if workItemID == "" {
		return entities.JobAssignment{}, ErrInvalidWorkItemID
	}
	if employeeID == "" {
		return entities.JobAssignment{}, ErrInvalidEmployeeID
	}

	w, err := u.workItems.GetByID(ctx, workItemID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if w.ID == "" {
		return entities.JobAssignment{}, ErrWorkItemNotFound
	}

	e, err := u.employees.GetByID(ctx, employeeID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if e.ID == "" {
		return entities.JobAssignment{}, ErrEmployeeNotFound
	}

	// Pair-scoped conflict check only: the same employee may carry many work
	// items and the same work item many employees.
	existing, err := u.assignments.GetActiveByWorkItemAndEmployee(ctx, workItemID, employeeID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if existing.ID != "" {
		return entities.JobAssignment{}, ErrAssignmentConflict
	}

	roleOnJob = strings.TrimSpace(roleOnJob)
	if roleOnJob == "" {
		roleOnJob = entities.DefaultRoleOnJob
	}

	a := entities.JobAssignment{
		ID:         uuid.NewString(),
		WorkItemID: workItemID,
		EmployeeID: employeeID,
		RoleOnJob:  roleOnJob,
		Active:     true,
		AssignedAt: u.clock.Now().UTC(),
	}
	created, err := u.assignments.Insert(ctx, a)
	if err != nil {
		// The store's conditional put closes the check-then-insert race.
		if errors.Is(err, interfaces.ErrAssignmentPairTaken) {
			return entities.JobAssignment{}, ErrAssignmentConflict
		}
		return entities.JobAssignment{}, err
	}
	log.Printf("[workload][usecase] assigned work_item_id=%s employee_id=%s role=%s", workItemID, employeeID, roleOnJob)
	return created, nil
}

func (u *WorkloadUseCase) Unassign(ctx context.Context, workItemID, employeeID string) (entities.JobAssignment, error) {
	workItemID = strings.TrimSpace(workItemID)
	employeeID = strings.TrimSpace(employeeID)
	if workItemID == "" {
		return entities.JobAssignment{}, ErrInvalidWorkItemID
	}
	if employeeID == "" {
		return entities.JobAssignment{}, ErrInvalidEmployeeID
	}

	deactivated, err := u.assignments.Deactivate(ctx, workItemID, employeeID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if deactivated.ID == "" {
		return entities.JobAssignment{}, ErrAssignmentNotFound
	}
	log.Printf("[workload][usecase] unassigned work_item_id=%s employee_id=%s", workItemID, employeeID)
	return deactivated, nil
}

// computeSnapshot assembles the point-in-time workload view for one employee.
func (u *WorkloadUseCase) computeSnapshot(ctx context.Context, e entities.Employee) (entities.WorkloadSnapshot, error) {
	s := entities.WorkloadSnapshot{
		EmployeeID:    e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Department:    e.DepartmentOrDefault(),
		UpcomingTasks: []entities.TaskSummary{},
	}

	active, err := u.assignments.ListActiveByEmployee(ctx, e.ID)
	if err != nil {
		return entities.WorkloadSnapshot{}, err
	}

	for _, a := range active {
		w, err := u.workItems.GetByID(ctx, a.WorkItemID)
		if err != nil {
			return entities.WorkloadSnapshot{}, err
		}
		if w.ID == "" {
			// Dangling link; tolerate it and omit the task.
			continue
		}
		if w.IsCompleted() {
			continue
		}
		if w.IsAppointment() {
			s.ActiveAppointments++
		} else if w.IsProject() {
			s.ActiveProjects++
		}
		s.UpcomingTasks = append(s.UpcomingTasks, entities.TaskSummary{
			AssignmentID:   a.ID,
			WorkItemID:     w.ID,
			Title:          w.Title,
			Type:           string(w.Type),
			Date:           w.CreatedAt.Format(entities.TimeLogDateFormat),
			EstimatedHours: entities.PlaceholderEstimatedHours,
			Status:         w.Status,
			CustomerName:   entities.PlaceholderCustomerName,
		})
	}

	now := u.clock.Now()
	weekStart, weekEnd := weekWindow(now)
	monthStart, monthEnd := monthWindow(now)

	weekHours, err := u.sumHours(ctx, e.ID, weekStart, weekEnd)
	if err != nil {
		return entities.WorkloadSnapshot{}, err
	}
	monthHours, err := u.sumHours(ctx, e.ID, monthStart, monthEnd)
	if err != nil {
		return entities.WorkloadSnapshot{}, err
	}

	utilization := weekHours.Div(standardWeekHours).Mul(maxUtilization)
	if utilization.GreaterThan(maxUtilization) {
		utilization = maxUtilization
	}

	s.Status = classify(utilization)
	s.HoursThisWeek = round2(weekHours)
	s.HoursThisMonth = round2(monthHours)
	s.CapacityUtilization = round2(utilization)
	return s, nil
}

func (u *WorkloadUseCase) sumHours(ctx context.Context, employeeID string, start, end time.Time) (decimal.Decimal, error) {
	minutes, err := u.timeLogs.SumMinutes(ctx, employeeID, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	if !minutes.Valid {
		return decimal.Zero, nil
	}
	return minutes.Decimal.Div(minutesPerHour), nil
}

// classify buckets utilization with inclusive lower bounds on the upper
// bands: 60 is busy, 90 is overloaded.
func classify(utilization decimal.Decimal) entities.WorkloadStatus {
	switch {
	case utilization.LessThan(busyThreshold):
		return entities.WorkloadStatusAvailable
	case utilization.LessThan(overloadedThreshold):
		return entities.WorkloadStatusBusy
	default:
		return entities.WorkloadStatusOverloaded
	}
}

// round2 rounds half-up to two decimals, matching the ledger's scaled-integer
// rounding rule.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// weekWindow is Monday 00:00 of now's week (inclusive) through the following
// Monday 00:00 (exclusive), in now's location.
func weekWindow(now time.Time) (time.Time, time.Time) {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -daysSinceMonday)
	return start, start.AddDate(0, 0, 7)
}

// monthWindow is the first of now's month 00:00 (inclusive) through the first
// of the next month 00:00 (exclusive).
func monthWindow(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}
