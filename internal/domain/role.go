package domain

// Role distinguishes the two kinds of authenticated callers.
type Role string

const (
	RoleTrainer Role = "trainer"
	RoleClient  Role = "client"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleTrainer || r == RoleClient
}
