package models

import "time"

type EmployeeRole string

const (
	EmployeeRoleLawyer     EmployeeRole = "lawyer"
	EmployeeRoleParalegal  EmployeeRole = "paralegal"
	EmployeeRoleSecretary  EmployeeRole = "secretary"
	EmployeeRoleAccountant EmployeeRole = "accountant"
	EmployeeRoleManager    EmployeeRole = "manager"
)

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "Active"
	EmployeeInactive EmployeeStatus = "Inactive"
)

// Employee is a staff directory record managed from the dashboard.
type Employee struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"size:255;not null"`
	Email     string         `json:"email" gorm:"size:255;not null"`
	Role      EmployeeRole   `json:"role" gorm:"type:varchar(30);not null;check:role IN ('lawyer','paralegal','secretary','accountant','manager')"`
	Status    EmployeeStatus `json:"status" gorm:"type:varchar(20);not null;default:'Active';check:status IN ('Active','Inactive')"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}

// IsValidEmployeeRole checks if the role is one of the known labels
func IsValidEmployeeRole(r EmployeeRole) bool {
	switch r {
	case EmployeeRoleLawyer, EmployeeRoleParalegal, EmployeeRoleSecretary, EmployeeRoleAccountant, EmployeeRoleManager:
		return true
	default:
		return false
	}
}
