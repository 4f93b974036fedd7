package dashboard

// Summary is the admin analytics snapshot for one calendar date.
type Summary struct {
	Date           string  `json:"date"`
	Headcount      int     `json:"headcount"`
	Present        int     `json:"present"`
	Late           int     `json:"late"`
	OnLeave        int     `json:"on_leave"`
	Absent         int     `json:"absent"`
	PendingLeaves  int     `json:"pending_leaves"`
	AttendanceRate float64 `json:"attendance_rate"`

	Departments []DepartmentBreakdown `json:"departments"`
}

// DepartmentBreakdown counts active employees per department.
type DepartmentBreakdown struct {
	Department string `json:"department"`
	Headcount  int    `json:"headcount"`
}
