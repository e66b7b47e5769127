package enums

import "fmt"

// UserRole governs what a signed-in account may do. Professionals and admins
// may edit listed plan prices; visitors may only browse and save favorites.
type UserRole string

const (
	UserRoleVisitor      UserRole = "visitor"
	UserRoleProfessional UserRole = "professional"
	UserRoleAdmin        UserRole = "admin"
)

var validUserRoles = []UserRole{
	UserRoleVisitor,
	UserRoleProfessional,
	UserRoleAdmin,
}

// String implements fmt.Stringer.
func (r UserRole) String() string {
	return string(r)
}

// IsValid reports whether the value is a known UserRole.
func (r UserRole) IsValid() bool {
	for _, candidate := range validUserRoles {
		if candidate == r {
			return true
		}
	}
	return false
}

// CanEditPrices reports whether the role may mutate plan prices.
func (r UserRole) CanEditPrices() bool {
	return r == UserRoleProfessional || r == UserRoleAdmin
}

// ParseUserRole converts raw input into a UserRole.
func ParseUserRole(value string) (UserRole, error) {
	for _, candidate := range validUserRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid user role %q", value)
}
