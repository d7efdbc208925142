package entity

// Role is the account type chosen at registration.
type Role string

const (
	RolePlayer Role = "player"
	RoleCoach  Role = "coach"
	RoleAdmin  Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePlayer, RoleCoach, RoleAdmin:
		return true
	}
	return false
}
