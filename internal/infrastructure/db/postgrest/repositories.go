package postgrest

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
)

// first returns a pointer to the only row callers care about, or
// ErrNotFound when the remote matched nothing.
func first[T any](rows []T) (*T, error) {
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}
	return &rows[0], nil
}

// DepartmentRepository wraps the department table.
type DepartmentRepository struct {
	client *Client
}

func NewDepartmentRepository(client *Client) *DepartmentRepository {
	return &DepartmentRepository{client: client}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	var rows []domain.Department
	if err := r.client.From("department").Order("dept_id", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *DepartmentRepository) Get(ctx context.Context, deptID int) (*domain.Department, error) {
	var rows []domain.Department
	if err := r.client.From("department").Eq("dept_id", deptID).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *DepartmentRepository) Add(ctx context.Context, dept domain.Department) (*domain.Department, error) {
	var rows []domain.Department
	if err := r.client.From("department").Insert(ctx, dept, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *DepartmentRepository) Update(ctx context.Context, deptID int, dept domain.Department) (*domain.Department, error) {
	var rows []domain.Department
	if err := r.client.From("department").Eq("dept_id", deptID).Update(ctx, dept, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *DepartmentRepository) Delete(ctx context.Context, deptID int) error {
	return r.client.From("department").Eq("dept_id", deptID).Delete(ctx)
}

// EmployeeRepository wraps the employee table. List prefers the
// employee_hierarchy view (supervisor and department names joined remotely)
// and falls back to the bare table when the view is unavailable.
type EmployeeRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewEmployeeRepository(client *Client, logger zerolog.Logger) *EmployeeRepository {
	return &EmployeeRepository{client: client, logger: logger}
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	var rows []domain.Employee
	err := r.client.From("employee_hierarchy").Order("emp_id", false).Select(ctx, &rows)
	if err == nil {
		return rows, nil
	}
	r.logger.Warn().Err(err).Msg("employee_hierarchy view unavailable, falling back to employee table")

	if err := r.client.From("employee").Order("emp_id", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *EmployeeRepository) Get(ctx context.Context, empID int) (*domain.Employee, error) {
	var rows []domain.Employee
	if err := r.client.From("employee").Eq("emp_id", empID).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *EmployeeRepository) Add(ctx context.Context, emp domain.Employee) (*domain.Employee, error) {
	var rows []domain.Employee
	if err := r.client.From("employee").Insert(ctx, emp, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *EmployeeRepository) Update(ctx context.Context, empID int, emp domain.Employee) (*domain.Employee, error) {
	var rows []domain.Employee
	if err := r.client.From("employee").Eq("emp_id", empID).Update(ctx, emp, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *EmployeeRepository) Delete(ctx context.Context, empID int) error {
	return r.client.From("employee").Eq("emp_id", empID).Delete(ctx)
}

// SatelliteRepository wraps the satellite table, preferring the
// satellite_status_report view for listings.
type SatelliteRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewSatelliteRepository(client *Client, logger zerolog.Logger) *SatelliteRepository {
	return &SatelliteRepository{client: client, logger: logger}
}

func (r *SatelliteRepository) List(ctx context.Context) ([]domain.Satellite, error) {
	var rows []domain.Satellite
	err := r.client.From("satellite_status_report").Order("sat_id", false).Select(ctx, &rows)
	if err == nil {
		return rows, nil
	}
	r.logger.Warn().Err(err).Msg("satellite_status_report view unavailable, falling back to satellite table")

	if err := r.client.From("satellite").Order("sat_id", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SatelliteRepository) ListOperational(ctx context.Context) ([]domain.Satellite, error) {
	var rows []domain.Satellite
	if err := r.client.From("satellite").Eq("status", "Operational").Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SatelliteRepository) Get(ctx context.Context, satID int) (*domain.Satellite, error) {
	var rows []domain.Satellite
	if err := r.client.From("satellite").Eq("sat_id", satID).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *SatelliteRepository) Add(ctx context.Context, sat domain.Satellite) (*domain.Satellite, error) {
	var rows []domain.Satellite
	if err := r.client.From("satellite").Insert(ctx, sat, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *SatelliteRepository) Update(ctx context.Context, satID int, sat domain.Satellite) (*domain.Satellite, error) {
	var rows []domain.Satellite
	if err := r.client.From("satellite").Eq("sat_id", satID).Update(ctx, sat, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *SatelliteRepository) Delete(ctx context.Context, satID int) error {
	return r.client.From("satellite").Eq("sat_id", satID).Delete(ctx)
}

// MissionRepository wraps the mission table; rows are addressed by the full
// (mission_id, pad_id, loc_id) composite key.
type MissionRepository struct {
	client *Client
	logger zerolog.Logger
}

func NewMissionRepository(client *Client, logger zerolog.Logger) *MissionRepository {
	return &MissionRepository{client: client, logger: logger}
}

func (r *MissionRepository) List(ctx context.Context) ([]domain.Mission, error) {
	var rows []domain.Mission
	if err := r.client.From("mission").Order("mission_id", false).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MissionRepository) ListActive(ctx context.Context) ([]domain.Mission, error) {
	var rows []domain.Mission
	err := r.client.From("active_missions").Select(ctx, &rows)
	if err == nil {
		return rows, nil
	}
	r.logger.Warn().Err(err).Msg("active_missions view unavailable, falling back to status filter")

	if err := r.client.From("mission").In("status", "In Progress", "Planned").Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *MissionRepository) byKey(key domain.MissionKey) *Query {
	return r.client.From("mission").
		Eq("mission_id", key.MissionID).
		Eq("pad_id", key.PadID).
		Eq("loc_id", key.LocID)
}

func (r *MissionRepository) Get(ctx context.Context, key domain.MissionKey) (*domain.Mission, error) {
	var rows []domain.Mission
	if err := r.byKey(key).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *MissionRepository) Add(ctx context.Context, m domain.Mission) (*domain.Mission, error) {
	var rows []domain.Mission
	if err := r.client.From("mission").Insert(ctx, m, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *MissionRepository) Update(ctx context.Context, key domain.MissionKey, m domain.Mission) (*domain.Mission, error) {
	var rows []domain.Mission
	if err := r.byKey(key).Update(ctx, m, &rows); err != nil {
		return nil, err
	}
	return first(rows)
}

func (r *MissionRepository) Delete(ctx context.Context, key domain.MissionKey) error {
	return r.byKey(key).Delete(ctx)
}

// TelemetryRepository wraps the telemetry table (append-only upstream; this
// side only reads).
type TelemetryRepository struct {
	client *Client
}

func NewTelemetryRepository(client *Client) *TelemetryRepository {
	return &TelemetryRepository{client: client}
}

func (r *TelemetryRepository) List(ctx context.Context) ([]domain.Telemetry, error) {
	var rows []domain.Telemetry
	if err := r.client.From("telemetry").Order("timestamp", true).Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *TelemetryRepository) Latest(ctx context.Context, satID, limit int) ([]domain.Telemetry, error) {
	var rows []domain.Telemetry
	err := r.client.From("telemetry").
		Eq("sat_id", satID).
		Order("timestamp", true).
		Limit(limit).
		Select(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// EquipmentRepository wraps the equipment table.
type EquipmentRepository struct {
	client *Client
}

func NewEquipmentRepository(client *Client) *EquipmentRepository {
	return &EquipmentRepository{client: client}
}

func (r *EquipmentRepository) List(ctx context.Context) ([]domain.Equipment, error) {
	var rows []domain.Equipment
	if err := r.client.From("equipment").Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
