package auth

// Context is the acting identity resolved by the HTTP layer from JWT claims.
// Services trust it completely and perform no further identity checks.
type Context struct {
	EmployeeID string
	IsAdmin    bool
}
