package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/ports"
)

// PersonnelHandler exposes employee and department records. All routes here
// sit behind the admin RBAC middleware.
type PersonnelHandler struct {
	personnel ports.PersonnelService
}

func NewPersonnelHandler(personnel ports.PersonnelService) *PersonnelHandler {
	return &PersonnelHandler{personnel: personnel}
}

type employeeRequest struct {
	EmpID        int     `json:"emp_id" validate:"omitempty,gte=1"`
	EmpName      string  `json:"emp_name" validate:"required"`
	Position     string  `json:"position" validate:"required"`
	Salary       float64 `json:"salary" validate:"gte=0"`
	HireDate     string  `json:"hire_date" validate:"required"`
	Phone        string  `json:"phone"`
	SupervisorID *int    `json:"supervisor_id"`
	DeptID       *int    `json:"dept_id"`
}

func (r employeeRequest) toDomain() domain.Employee {
	return domain.Employee{
		EmpID:        r.EmpID,
		EmpName:      r.EmpName,
		Position:     r.Position,
		Salary:       r.Salary,
		HireDate:     r.HireDate,
		Phone:        r.Phone,
		SupervisorID: r.SupervisorID,
		DeptID:       r.DeptID,
	}
}

type departmentRequest struct {
	DeptID   int     `json:"dept_id" validate:"omitempty,gte=1"`
	DeptName string  `json:"dept_name" validate:"required"`
	Budget   float64 `json:"budget" validate:"gte=0"`
	HeadID   *int    `json:"head_id"`
}

func (r departmentRequest) toDomain() domain.Department {
	return domain.Department{
		DeptID:   r.DeptID,
		DeptName: r.DeptName,
		Budget:   r.Budget,
		HeadID:   r.HeadID,
	}
}

func (h *PersonnelHandler) ListEmployees(c echo.Context) error {
	employees, err := h.personnel.ListEmployees(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employees)
}

func (h *PersonnelHandler) GetEmployee(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}
	emp, err := h.personnel.GetEmployee(c.Request().Context(), empID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *PersonnelHandler) AddEmployee(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.personnel.AddEmployee(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, emp)
}

func (h *PersonnelHandler) UpdateEmployee(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	emp, err := h.personnel.UpdateEmployee(c.Request().Context(), empID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, emp)
}

func (h *PersonnelHandler) DeleteEmployee(c echo.Context) error {
	empID, err := intParam(c, "emp_id")
	if err != nil {
		return err
	}
	if err := h.personnel.DeleteEmployee(c.Request().Context(), empID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *PersonnelHandler) ListDepartments(c echo.Context) error {
	departments, err := h.personnel.ListDepartments(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, departments)
}

func (h *PersonnelHandler) AddDepartment(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.personnel.AddDepartment(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, dept)
}

func (h *PersonnelHandler) UpdateDepartment(c echo.Context) error {
	deptID, err := intParam(c, "dept_id")
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	dept, err := h.personnel.UpdateDepartment(c.Request().Context(), deptID, req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dept)
}

func (h *PersonnelHandler) DeleteDepartment(c echo.Context) error {
	deptID, err := intParam(c, "dept_id")
	if err != nil {
		return err
	}
	if err := h.personnel.DeleteDepartment(c.Request().Context(), deptID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
