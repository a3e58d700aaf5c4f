package postgrest

import "context"

// ReportRepository calls the remote stored procedures and reporting views.
// Parameter names match the procedure signatures exactly; the remote side
// rejects anything else.
type ReportRepository struct {
	client *Client
}

func NewReportRepository(client *Client) *ReportRepository {
	return &ReportRepository{client: client}
}

func (r *ReportRepository) DepartmentSummary(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	if err := r.client.From("department_summary").Select(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) EmployeeDetails(ctx context.Context, empID int) ([]map[string]any, error) {
	var rows []map[string]any
	err := r.client.Rpc(ctx, "get_employee_details", map[string]any{"emp_id_param": empID}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReportRepository) YearsOfService(ctx context.Context, empID int) (float64, error) {
	var years float64
	err := r.client.Rpc(ctx, "get_years_of_service", map[string]any{"emp_id_param": empID}, &years)
	if err != nil {
		return 0, err
	}
	return years, nil
}

func (r *ReportRepository) CountSubordinates(ctx context.Context, empID int) (int, error) {
	var count int
	err := r.client.Rpc(ctx, "count_subordinates", map[string]any{"supervisor_id_param": empID}, &count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ReportRepository) SalaryReport(ctx context.Context) ([]map[string]any, error) {
	var rows []map[string]any
	if err := r.client.Rpc(ctx, "generate_salary_report", map[string]any{}, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
