package entity

// Role IDs carried in access-token claims. Roles are issued by the identity
// service; this service only checks them.
const (
	RoleIDAdmin  = 1
	RoleIDCoach  = 2
	RoleIDPlayer = 3
)
