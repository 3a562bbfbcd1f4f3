package user

import "time"

type Role string

const (
	RoleAdministrator Role = "administrasi"
	RoleManager       Role = "manager"
	RoleStaff         Role = "staff"
)

// CanManageAttendance reports whether a role may bulk-edit other
// employees' attendance months.
func (r Role) CanManageAttendance() bool {
	return r == RoleAdministrator || r == RoleManager
}

type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
