package rbac

import "go-hrm/internal/identity"

// Resources and actions guarded at the route level. Per-object checks
// (owner, assigned TL, project PM) stay inside the feature services.
const (
	ResourceEmployee     = "employee"
	ResourceAttendance   = "attendance"
	ResourceLeave        = "leave"
	ResourceLeaveBalance = "leave_balance"
	ResourceProject      = "project"
	ResourceSalary       = "salary"
	ResourcePayroll      = "payroll"
	ResourceAnnouncement = "announcement"
	ResourceSupport      = "support"
	ResourceLoginSupport = "login_support"

	ActionCreate   = "create"
	ActionList     = "list"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionCorrect  = "correct"
	ActionDecide   = "decide"
	ActionTeam     = "team"
	ActionAssign   = "assign"
	ActionManage   = "manage"
	ActionFinalize = "finalize"
)

// Group names used as casbin subjects.
const (
	GroupHR            = "group:hr"
	GroupTL            = "group:tl"
	GroupDM            = "group:dm"
	GroupPM            = "group:pm"
	GroupEmployee      = "group:employee"
	GroupSupportStaff  = "group:support_staff"
	GroupAuthenticated = "group:authenticated"
)

var groupMembers = map[string][]identity.Role{
	GroupHR:            identity.HRRoles,
	GroupTL:            identity.TLRoles,
	GroupDM:            identity.DMRoles,
	GroupPM:            identity.PMRoles,
	GroupEmployee:      identity.EmployeeRoles,
	GroupSupportStaff:  identity.SupportStaffRoles,
	GroupAuthenticated: identity.AllRoles,
}

type Permission struct {
	Group    string
	Resource string
	Action   string
}

var permissionTable = []Permission{
	{GroupHR, ResourceEmployee, ActionCreate},
	{GroupHR, ResourceEmployee, ActionList},
	{GroupHR, ResourceEmployee, ActionUpdate},

	{GroupHR, ResourceAttendance, ActionCorrect},
	{GroupHR, ResourceAttendance, ActionTeam},
	{GroupTL, ResourceAttendance, ActionTeam},

	{GroupHR, ResourceLeave, ActionDecide},
	{GroupTL, ResourceLeave, ActionTeam},
	{GroupHR, ResourceLeaveBalance, ActionUpdate},

	{GroupDM, ResourceProject, ActionCreate},
	{GroupDM, ResourceProject, ActionAssign},
	{GroupPM, ResourceProject, ActionManage},
	{GroupTL, ResourceProject, ActionManage},

	{GroupHR, ResourceSalary, ActionManage},
	{GroupHR, ResourcePayroll, ActionCreate},
	{GroupHR, ResourcePayroll, ActionList},
	{GroupHR, ResourcePayroll, ActionFinalize},

	{GroupHR, ResourceAnnouncement, ActionCreate},
	{GroupHR, ResourceAnnouncement, ActionUpdate},
	{GroupHR, ResourceAnnouncement, ActionDelete},
	{GroupTL, ResourceAnnouncement, ActionTeam},

	{GroupSupportStaff, ResourceSupport, ActionManage},
	{GroupSupportStaff, ResourceLoginSupport, ActionManage},
}
