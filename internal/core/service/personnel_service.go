package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// PersonnelService fronts the employee and department repositories.
type PersonnelService struct {
	employees   ports.EmployeeRepository
	departments ports.DepartmentRepository
	logger      zerolog.Logger
}

func NewPersonnelService(employees ports.EmployeeRepository, departments ports.DepartmentRepository, logger zerolog.Logger) *PersonnelService {
	return &PersonnelService{employees: employees, departments: departments, logger: logger}
}

func (s *PersonnelService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employees.List(ctx)
}

func (s *PersonnelService) GetEmployee(ctx context.Context, empID int) (*domain.Employee, error) {
	return s.employees.Get(ctx, empID)
}

func (s *PersonnelService) AddEmployee(ctx context.Context, emp domain.Employee) (*domain.Employee, error) {
	created, err := s.employees.Add(ctx, emp)
	if err != nil {
		s.logger.Error().Err(err).Str("emp_name", emp.EmpName).Msg("add employee failed")
		return nil, err
	}
	return created, nil
}

func (s *PersonnelService) UpdateEmployee(ctx context.Context, empID int, emp domain.Employee) (*domain.Employee, error) {
	return s.employees.Update(ctx, empID, emp)
}

func (s *PersonnelService) DeleteEmployee(ctx context.Context, empID int) error {
	return s.employees.Delete(ctx, empID)
}

func (s *PersonnelService) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	return s.departments.List(ctx)
}

func (s *PersonnelService) AddDepartment(ctx context.Context, dept domain.Department) (*domain.Department, error) {
	return s.departments.Add(ctx, dept)
}

func (s *PersonnelService) UpdateDepartment(ctx context.Context, deptID int, dept domain.Department) (*domain.Department, error) {
	return s.departments.Update(ctx, deptID, dept)
}

func (s *PersonnelService) DeleteDepartment(ctx context.Context, deptID int) error {
	return s.departments.Delete(ctx, deptID)
}
