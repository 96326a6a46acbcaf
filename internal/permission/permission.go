package permission

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

// Capability adalah satu named permission flag untuk satu aksi administratif.
type Capability string

const (
	CapabilityAdmin             Capability = "admin"
	CapabilityApproveLeaves     Capability = "approve_leaves"
	CapabilityRequestLeaves     Capability = "request_leaves"
	CapabilityApproveOtherGroup Capability = "approve_other_groups"
	CapabilityManageEmployees   Capability = "manage_employees"
	CapabilityViewReports       Capability = "view_reports"
	CapabilityManageSchedules   Capability = "manage_schedules"
	CapabilityProcessPayroll    Capability = "process_payroll"
	CapabilityViewAllAttendance Capability = "view_all_attendance"
	CapabilityEditSettings      Capability = "edit_settings"
)

var ErrUnknownCapability = apperror.New(
	apperror.CodeInvalidInput,
	"unknown capability",
	http.StatusBadRequest,
)

// Flags adalah permission set milik satu employee. Di-embed ke entity employee
// (kolom perm_*), satu kolom boolean per capability.
type Flags struct {
	IsAdmin              bool `gorm:"column:perm_is_admin;not null;default:false" json:"is_admin"`
	CanApproveLeaves     bool `gorm:"column:perm_approve_leaves;not null;default:false" json:"can_approve_leaves"`
	CanRequestLeaves     bool `gorm:"column:perm_request_leaves;not null;default:false" json:"can_request_leaves"`
	CanApproveOtherGroup bool `gorm:"column:perm_approve_other_groups;not null;default:false" json:"can_approve_other_groups"`
	CanManageEmployees   bool `gorm:"column:perm_manage_employees;not null;default:false" json:"can_manage_employees"`
	CanViewReports       bool `gorm:"column:perm_view_reports;not null;default:false" json:"can_view_reports"`
	CanManageSchedules   bool `gorm:"column:perm_manage_schedules;not null;default:false" json:"can_manage_schedules"`
	CanProcessPayroll    bool `gorm:"column:perm_process_payroll;not null;default:false" json:"can_process_payroll"`
	CanViewAllAttendance bool `gorm:"column:perm_view_all_attendance;not null;default:false" json:"can_view_all_attendance"`
	CanEditSettings      bool `gorm:"column:perm_edit_settings;not null;default:false" json:"can_edit_settings"`
}

// AllGranted mengembalikan permission set admin penuh (dipakai seeding)
func AllGranted() Flags {
	return Flags{
		IsAdmin:              true,
		CanApproveLeaves:     true,
		CanRequestLeaves:     true,
		CanApproveOtherGroup: true,
		CanManageEmployees:   true,
		CanViewReports:       true,
		CanManageSchedules:   true,
		CanProcessPayroll:    true,
		CanViewAllAttendance: true,
		CanEditSettings:      true,
	}
}

// HasPermission resolve satu capability dari permission set.
// IsAdmin meng-override semua flag lain. Nama capability yang tidak dikenal
// adalah error, bukan false — typo tidak boleh jadi silent deny.
func HasPermission(f Flags, c Capability) (bool, error) {
	var flag bool
	switch c {
	case CapabilityAdmin:
		flag = f.IsAdmin
	case CapabilityApproveLeaves:
		flag = f.CanApproveLeaves
	case CapabilityRequestLeaves:
		flag = f.CanRequestLeaves
	case CapabilityApproveOtherGroup:
		flag = f.CanApproveOtherGroup
	case CapabilityManageEmployees:
		flag = f.CanManageEmployees
	case CapabilityViewReports:
		flag = f.CanViewReports
	case CapabilityManageSchedules:
		flag = f.CanManageSchedules
	case CapabilityProcessPayroll:
		flag = f.CanProcessPayroll
	case CapabilityViewAllAttendance:
		flag = f.CanViewAllAttendance
	case CapabilityEditSettings:
		flag = f.CanEditSettings
	default:
		return false, ErrUnknownCapability
	}

	if f.IsAdmin {
		return true, nil
	}
	return flag, nil
}

// CanApproveForGroup memeriksa otoritas approve untuk leave milik satu group:
// butuh approve_leaves, plus approve_other_groups atau membership di group target.
func CanApproveForGroup(f Flags, memberOf []string, targetGroup string) (bool, error) {
	canApprove, err := HasPermission(f, CapabilityApproveLeaves)
	if err != nil {
		return false, err
	}
	if !canApprove {
		return false, nil
	}

	crossGroup, err := HasPermission(f, CapabilityApproveOtherGroup)
	if err != nil {
		return false, err
	}
	if crossGroup {
		return true, nil
	}

	for _, g := range memberOf {
		if g == targetGroup {
			return true, nil
		}
	}
	return false, nil
}
