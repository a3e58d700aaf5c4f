package ports

import (
	"context"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// Repositories wrap the remote table/RPC REST API. Every method returns an
// explicit error so callers can tell "zero rows" apart from "fetch failed";
// the remote call is the only side effect — no caching, no retries.

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Get(ctx context.Context, deptID int) (*domain.Department, error)
	Add(ctx context.Context, dept domain.Department) (*domain.Department, error)
	Update(ctx context.Context, deptID int, dept domain.Department) (*domain.Department, error)
	Delete(ctx context.Context, deptID int) error
}

// EmployeeRepository lists from the employee_hierarchy view (supervisor and
// department names joined remotely) and falls back to the bare table when
// the view is unavailable.
type EmployeeRepository interface {
	List(ctx context.Context) ([]domain.Employee, error)
	Get(ctx context.Context, empID int) (*domain.Employee, error)
	Add(ctx context.Context, emp domain.Employee) (*domain.Employee, error)
	Update(ctx context.Context, empID int, emp domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, empID int) error
}

type SatelliteRepository interface {
	List(ctx context.Context) ([]domain.Satellite, error)
	ListOperational(ctx context.Context) ([]domain.Satellite, error)
	Get(ctx context.Context, satID int) (*domain.Satellite, error)
	Add(ctx context.Context, sat domain.Satellite) (*domain.Satellite, error)
	Update(ctx context.Context, satID int, sat domain.Satellite) (*domain.Satellite, error)
	Delete(ctx context.Context, satID int) error
}

// MissionRepository operations address rows by the full composite key.
type MissionRepository interface {
	List(ctx context.Context) ([]domain.Mission, error)
	ListActive(ctx context.Context) ([]domain.Mission, error)
	Get(ctx context.Context, key domain.MissionKey) (*domain.Mission, error)
	Add(ctx context.Context, m domain.Mission) (*domain.Mission, error)
	Update(ctx context.Context, key domain.MissionKey, m domain.Mission) (*domain.Mission, error)
	Delete(ctx context.Context, key domain.MissionKey) error
}

// ResearchRepository assigns the next per-user fact id on Add; callers never
// pick fact ids themselves.
type ResearchRepository interface {
	List(ctx context.Context) ([]domain.ResearchFact, error)
	Add(ctx context.Context, fact domain.ResearchFact) (*domain.ResearchFact, error)
	Update(ctx context.Context, key domain.FactKey, fact domain.ResearchFact) (*domain.ResearchFact, error)
	Delete(ctx context.Context, key domain.FactKey) error
}

type TelemetryRepository interface {
	List(ctx context.Context) ([]domain.Telemetry, error)
	Latest(ctx context.Context, satID, limit int) ([]domain.Telemetry, error)
}

type EquipmentRepository interface {
	List(ctx context.Context) ([]domain.Equipment, error)
}

// ReportRepository calls the remote stored procedures and reporting views.
type ReportRepository interface {
	DepartmentSummary(ctx context.Context) ([]map[string]any, error)
	EmployeeDetails(ctx context.Context, empID int) ([]map[string]any, error)
	YearsOfService(ctx context.Context, empID int) (float64, error)
	CountSubordinates(ctx context.Context, empID int) (int, error)
	SalaryReport(ctx context.Context) ([]map[string]any, error)
}
