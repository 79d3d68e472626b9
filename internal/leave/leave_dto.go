package leave

type SubmitLeaveRequest struct {
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
	Reason      string `json:"reason" binding:"required,max=1000"`
	LeaveTypeID string `json:"leave_type_id" binding:"required"`
}

type UpdateLeaveRequest struct {
	Reason string `json:"reason" binding:"required,max=1000"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}

type ListFilter struct {
	Status     string
	EmployeeID string
}

type LeaveResponse struct {
	ID            string `json:"id"`
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id,omitempty"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	TotalDays     int    `json:"total_days"`
	Reason        string `json:"reason"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}

type LeaveLogResponse struct {
	ID             string `json:"id"`
	LeaveID        string `json:"leave_id"`
	ActorID        string `json:"actor_id,omitempty"`
	PreviousStatus string `json:"previous_status"`
	NewStatus      string `json:"new_status"`
	ChangedAt      string `json:"changed_at"`
}

type LeaveTypeRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	AnnualLimit *int   `json:"annual_limit" binding:"required,min=0"`
}

type LeaveTypeResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AnnualLimit int    `json:"annual_limit"`
}

type SetBalanceRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	LeaveTypeID string `json:"leave_type_id" binding:"required,uuid"`
	Remaining   *int   `json:"remaining" binding:"required,min=0"`
}

type LeaveBalanceResponse struct {
	EmployeeID    string `json:"employee_id"`
	LeaveTypeID   string `json:"leave_type_id"`
	LeaveTypeName string `json:"leave_type_name,omitempty"`
	Remaining     int    `json:"remaining"`
}
