package attendance

type BulkMarkRequest struct {
	EmployeeIDs []string `json:"employee_ids" binding:"required,min=1,dive,required"`
	Date        string   `json:"date"`
	Status      string   `json:"status" binding:"omitempty,oneof=PRESENT ABSENT"`
}

type AttendanceResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name,omitempty"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
	Source         string `json:"source"`
	MarkedBy       string `json:"marked_by,omitempty"`
	MarkedAt       string `json:"marked_at"`
}

const (
	MarkCreated       = "created"
	MarkAlreadyMarked = "already_marked"
)

type MarkResult struct {
	Result     string             `json:"result"`
	Attendance *AttendanceResponse `json:"attendance,omitempty"`
}

type BulkMarkResult struct {
	Date        string `json:"date"`
	CountMarked int    `json:"count_marked"`
}

type Person struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

type SummaryResponse struct {
	Date      string   `json:"date"`
	IsHoliday bool     `json:"is_holiday"`
	Present   []Person `json:"present"`
	Absent    []Person `json:"absent"`
}
