package auth

// Keys under which the JWT middleware stores caller identity in gin context.
// They live here (not in the middleware package) so auth handlers can read
// them without an import cycle.
const (
	ContextUserID      = "user_id"
	ContextUserRole    = "user_role"
	ContextOrgID       = "organization_id"
	ContextTokenID     = "token_id"
	ContextTokenExpiry = "token_expiry"
)
