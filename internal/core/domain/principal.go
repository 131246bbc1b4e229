package domain

// Principal is the caller identity handed over by the authentication
// collaborator. The zero value is the anonymous principal.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

// Anonymous reports whether the principal carries no identity.
func (p Principal) Anonymous() bool {
	return p.UserID == ""
}
