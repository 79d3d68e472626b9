package rbac

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

type Permission struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicy is what every EMPLOYEE may do. ADMIN inherits all of it.
var DefaultPolicy = []Permission{
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "leave", "read_own"},
	{RoleEmployee, "leave_type", "read"},
	{RoleEmployee, "leave_balance", "read_own"},
	{RoleEmployee, "attendance", "mark"},
	{RoleEmployee, "attendance", "read_own"},
	{RoleEmployee, "holiday", "read"},

	{RoleAdmin, "leave", "read"},
	{RoleAdmin, "leave", "approve"},
	{RoleAdmin, "leave_log", "read"},
	{RoleAdmin, "leave_type", "create"},
	{RoleAdmin, "leave_type", "update"},
	{RoleAdmin, "leave_balance", "update"},
	{RoleAdmin, "attendance", "bulk"},
	{RoleAdmin, "attendance", "read"},
	{RoleAdmin, "holiday", "create"},
	{RoleAdmin, "holiday", "delete"},
	{RoleAdmin, "employee", "read"},
	{RoleAdmin, "employee", "create"},
}

// RoleInheritance lists (role, parent) pairs.
var RoleInheritance = [][2]string{
	{RoleAdmin, RoleEmployee},
}
