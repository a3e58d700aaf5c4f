package domain

// Entity shapes mirror the remote table columns. The remote service owns the
// schema; this side only enforces composite-key completeness and carries the
// fields the pages render.

// Department is a mission-control organizational unit.
type Department struct {
	DeptID   int     `json:"dept_id,omitempty"`
	DeptName string  `json:"dept_name"`
	Budget   float64 `json:"budget"`
	HeadID   *int    `json:"head_id,omitempty"`
}

// Employee is a staff record. SupervisorName and DeptName are populated only
// when the row comes from the employee_hierarchy view.
type Employee struct {
	EmpID          int     `json:"emp_id,omitempty"`
	EmpName        string  `json:"emp_name"`
	Position       string  `json:"position"`
	Salary         float64 `json:"salary"`
	HireDate       string  `json:"hire_date"`
	Phone          string  `json:"phone,omitempty"`
	SupervisorID   *int    `json:"supervisor_id,omitempty"`
	DeptID         *int    `json:"dept_id,omitempty"`
	SupervisorName string  `json:"supervisor_name,omitempty"`
	DeptName       string  `json:"dept_name,omitempty"`
}

// Satellite is a spacecraft record. SatStatus is the column name used by the
// satellite_status_report view; Status is the bare table column.
type Satellite struct {
	SatID      int     `json:"sat_id,omitempty"`
	SatName    string  `json:"sat_name"`
	LaunchDate string  `json:"launch_date"`
	Status     string  `json:"status,omitempty"`
	SatStatus  string  `json:"sat_status,omitempty"`
	OrbitType  string  `json:"orbit_type"`
	Mass       float64 `json:"mass"`
	ManagerID  *int    `json:"manager_id,omitempty"`
}

// CurrentStatus returns the view column when present, else the table column.
func (s Satellite) CurrentStatus() string {
	if s.SatStatus != "" {
		return s.SatStatus
	}
	return s.Status
}

// MissionKey identifies a mission by its full composite key.
type MissionKey struct {
	MissionID int `json:"mission_id"`
	PadID     int `json:"pad_id"`
	LocID     int `json:"loc_id"`
}

// Validate rejects partial keys: all three components must be set.
func (k MissionKey) Validate() error {
	if k.MissionID <= 0 || k.PadID <= 0 || k.LocID <= 0 {
		return ErrIncompleteKey
	}
	return nil
}

// Mission is a launch-mission record keyed by (mission_id, pad_id, loc_id).
type Mission struct {
	MissionKey
	MissionName string  `json:"mission_name"`
	LaunchDate  string  `json:"launch_date"`
	EndDate     string  `json:"end_date,omitempty"`
	Status      string  `json:"status"`
	Objective   string  `json:"objective,omitempty"`
	Budget      float64 `json:"budget"`
}

// FactKey identifies a research fact by its per-user composite key.
type FactKey struct {
	FactID int    `json:"fact_id"`
	UserID string `json:"user_id"`
}

func (k FactKey) Validate() error {
	if k.FactID <= 0 || k.UserID == "" {
		return ErrIncompleteKey
	}
	return nil
}

// ResearchFact is a user-contributed finding. Username is joined in from the
// user table when listing; it is not a column of research_fact.
type ResearchFact struct {
	FactKey
	FactTitle   string `json:"fact_title"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"`
	DateAdded   string `json:"date_added,omitempty"`
	Username    string `json:"username,omitempty"`
}

// Telemetry is a single reading downlinked from a satellite.
type Telemetry struct {
	SatID     int     `json:"sat_id"`
	Timestamp string  `json:"timestamp"`
	DataType  string  `json:"data_type"`
	Value     float64 `json:"value"`
	Unit      string  `json:"unit,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// Equipment is a ground or on-board hardware record.
type Equipment struct {
	EquipID   int    `json:"equip_id,omitempty"`
	EquipName string `json:"equip_name"`
	EquipType string `json:"equip_type,omitempty"`
	Status    string `json:"status,omitempty"`
	SatID     *int   `json:"sat_id,omitempty"`
}
