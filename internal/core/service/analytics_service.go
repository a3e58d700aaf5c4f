package service

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// AnalyticsService computes dashboard aggregates. Mission and satellite
// statistics and the above-average-salary report are folded locally over the
// full record lists; the remote service exposes no aggregate endpoints for
// them. Everything else delegates to reporting views and stored procedures.
type AnalyticsService struct {
	missions   ports.MissionRepository
	satellites ports.SatelliteRepository
	employees  ports.EmployeeRepository
	reports    ports.ReportRepository
	logger     zerolog.Logger
}

func NewAnalyticsService(missions ports.MissionRepository, satellites ports.SatelliteRepository, employees ports.EmployeeRepository, reports ports.ReportRepository, logger zerolog.Logger) *AnalyticsService {
	return &AnalyticsService{
		missions:   missions,
		satellites: satellites,
		employees:  employees,
		reports:    reports,
		logger:     logger,
	}
}

func (s *AnalyticsService) MissionStatistics(ctx context.Context) (ports.MissionStats, error) {
	missions, err := s.missions.List(ctx)
	if err != nil {
		return ports.MissionStats{}, err
	}

	stats := ports.MissionStats{Total: len(missions)}
	for _, m := range missions {
		switch m.Status {
		case "Completed":
			stats.Completed++
		case "In Progress":
			stats.InProgress++
		case "Planned":
			stats.Planned++
		}
		stats.TotalBudget += m.Budget
	}
	return stats, nil
}

func (s *AnalyticsService) SatelliteStatistics(ctx context.Context) (ports.SatelliteStats, error) {
	satellites, err := s.satellites.List(ctx)
	if err != nil {
		return ports.SatelliteStats{}, err
	}

	stats := ports.SatelliteStats{Total: len(satellites)}
	for _, sat := range satellites {
		switch sat.CurrentStatus() {
		case "Operational":
			stats.Operational++
		case "Maintenance":
			stats.Maintenance++
		}
		stats.TotalMass += sat.Mass
	}
	return stats, nil
}

func (s *AnalyticsService) DepartmentSummary(ctx context.Context) ([]map[string]any, error) {
	return s.reports.DepartmentSummary(ctx)
}

// AboveAverageSalaries returns employees earning more than their department
// average. Employees without a department are skipped; averages are rounded
// to cents for display.
func (s *AnalyticsService) AboveAverageSalaries(ctx context.Context) ([]ports.SalaryOutlier, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, err
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, emp := range employees {
		if emp.DeptID == nil {
			continue
		}
		sums[*emp.DeptID] += emp.Salary
		counts[*emp.DeptID]++
	}

	var outliers []ports.SalaryOutlier
	for _, emp := range employees {
		if emp.DeptID == nil {
			continue
		}
		avg := sums[*emp.DeptID] / float64(counts[*emp.DeptID])
		if emp.Salary > avg {
			outliers = append(outliers, ports.SalaryOutlier{
				Employee: emp,
				DeptAvg:  math.Round(avg*100) / 100,
			})
		}
	}
	return outliers, nil
}

func (s *AnalyticsService) EmployeeDetails(ctx context.Context, empID int) ([]map[string]any, error) {
	return s.reports.EmployeeDetails(ctx, empID)
}

func (s *AnalyticsService) YearsOfService(ctx context.Context, empID int) (float64, error) {
	return s.reports.YearsOfService(ctx, empID)
}

func (s *AnalyticsService) CountSubordinates(ctx context.Context, empID int) (int, error) {
	return s.reports.CountSubordinates(ctx, empID)
}

func (s *AnalyticsService) SalaryReport(ctx context.Context) ([]map[string]any, error) {
	return s.reports.SalaryReport(ctx)
}

// compile-time interface checks
var (
	_ ports.AuthService      = (*AuthService)(nil)
	_ ports.CatalogService   = (*CatalogService)(nil)
	_ ports.PersonnelService = (*PersonnelService)(nil)
	_ ports.ResearchService  = (*ResearchService)(nil)
	_ ports.TelemetryService = (*TelemetryService)(nil)
	_ ports.AnalyticsService = (*AnalyticsService)(nil)
)
