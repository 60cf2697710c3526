package constants

// Canonical role set. Defined once here; DTO validation and route gates
// all reference these values.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RolePM         = "pm"
	RoleMember     = "member"
	RoleClient     = "client"
)

// DecisionMakerRoles may accept/decline a pipeline and edit budgets.
var DecisionMakerRoles = []string{RolePM, RoleAdmin, RoleSuperAdmin}

// StaffRoles covers everyone working inside the agency (not clients).
var StaffRoles = []string{RolePM, RoleAdmin, RoleSuperAdmin, RoleMember}
