package user

// Session carries the caller's identity and role, resolved once from the
// access token claims and passed explicitly to role-sensitive logic. Core
// packages never read auth state from anywhere else.
type Session struct {
	UserID     string
	EmployeeID int64 // zero when the account has no employee record
	Role       Role
}
