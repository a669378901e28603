package constants

// Role names carried in JWT claims.
const (
	RoleOwner      = "owner"       // platform operator, cross-institute
	RoleAdmin      = "admin"       // institute administrator
	RoleFinance    = "finance"     // fee collection / verification staff
	RoleInstructor = "instructor"  // attendance marking
	RoleStudent    = "student"
)

// AdminRoles are the roles allowed into the /api/a group.
var AdminRoles = []string{RoleOwner, RoleAdmin, RoleFinance}

// VerifierRoles may approve or reject payment transactions.
var VerifierRoles = []string{RoleOwner, RoleAdmin, RoleFinance}
