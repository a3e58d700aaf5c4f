package ports

import (
	"context"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// CatalogService covers missions, satellites and equipment: the records
// every signed-in role may read and only admins may mutate.
type CatalogService interface {
	ListMissions(ctx context.Context) ([]domain.Mission, error)
	ActiveMissions(ctx context.Context) ([]domain.Mission, error)
	GetMission(ctx context.Context, key domain.MissionKey) (*domain.Mission, error)
	AddMission(ctx context.Context, m domain.Mission) (*domain.Mission, error)
	UpdateMission(ctx context.Context, key domain.MissionKey, m domain.Mission) (*domain.Mission, error)
	DeleteMission(ctx context.Context, key domain.MissionKey) error

	ListSatellites(ctx context.Context) ([]domain.Satellite, error)
	OperationalSatellites(ctx context.Context) ([]domain.Satellite, error)
	GetSatellite(ctx context.Context, satID int) (*domain.Satellite, error)
	AddSatellite(ctx context.Context, sat domain.Satellite) (*domain.Satellite, error)
	UpdateSatellite(ctx context.Context, satID int, sat domain.Satellite) (*domain.Satellite, error)
	DeleteSatellite(ctx context.Context, satID int) error

	ListEquipment(ctx context.Context) ([]domain.Equipment, error)
}

// PersonnelService covers employees and departments (admin-only pages).
type PersonnelService interface {
	ListEmployees(ctx context.Context) ([]domain.Employee, error)
	GetEmployee(ctx context.Context, empID int) (*domain.Employee, error)
	AddEmployee(ctx context.Context, emp domain.Employee) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, empID int, emp domain.Employee) (*domain.Employee, error)
	DeleteEmployee(ctx context.Context, empID int) error

	ListDepartments(ctx context.Context) ([]domain.Department, error)
	AddDepartment(ctx context.Context, dept domain.Department) (*domain.Department, error)
	UpdateDepartment(ctx context.Context, deptID int, dept domain.Department) (*domain.Department, error)
	DeleteDepartment(ctx context.Context, deptID int) error
}

// ResearchService lists facts with contributor usernames joined in and
// mutates facts by their composite key.
type ResearchService interface {
	ListFacts(ctx context.Context) ([]domain.ResearchFact, error)
	AddFact(ctx context.Context, fact domain.ResearchFact) (*domain.ResearchFact, error)
	UpdateFact(ctx context.Context, key domain.FactKey, fact domain.ResearchFact) (*domain.ResearchFact, error)
	DeleteFact(ctx context.Context, key domain.FactKey) error
}

type TelemetryService interface {
	ListReadings(ctx context.Context) ([]domain.Telemetry, error)
	LatestReadings(ctx context.Context, satID, limit int) ([]domain.Telemetry, error)
}

// MissionStats aggregates mission counts by status plus total budget.
type MissionStats struct {
	Total       int     `json:"total"`
	Completed   int     `json:"completed"`
	InProgress  int     `json:"in_progress"`
	Planned     int     `json:"planned"`
	TotalBudget float64 `json:"total_budget"`
}

// SatelliteStats aggregates fleet counts and total mass.
type SatelliteStats struct {
	Total       int     `json:"total"`
	Operational int     `json:"operational"`
	Maintenance int     `json:"maintenance"`
	TotalMass   float64 `json:"total_mass"`
}

// SalaryOutlier is an employee earning above their department average.
type SalaryOutlier struct {
	Employee domain.Employee `json:"employee"`
	DeptAvg  float64         `json:"dept_avg"`
}

// AnalyticsService computes the dashboard aggregates. Mission and satellite
// statistics and the above-average-salary report are computed locally over
// the full lists; the department summary and salary report come from remote
// views and procedures.
type AnalyticsService interface {
	MissionStatistics(ctx context.Context) (MissionStats, error)
	SatelliteStatistics(ctx context.Context) (SatelliteStats, error)
	DepartmentSummary(ctx context.Context) ([]map[string]any, error)
	AboveAverageSalaries(ctx context.Context) ([]SalaryOutlier, error)
	EmployeeDetails(ctx context.Context, empID int) ([]map[string]any, error)
	YearsOfService(ctx context.Context, empID int) (float64, error)
	CountSubordinates(ctx context.Context, empID int) (int, error)
	SalaryReport(ctx context.Context) ([]map[string]any, error)
}
