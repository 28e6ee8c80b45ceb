package authorization

type UserRole string

const (
	RoleSales   UserRole = "sales"
	RoleManager UserRole = "manager"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsManager() bool {
	return r == RoleManager
}

func (r UserRole) IsValid() bool {
	return r == RoleSales || r == RoleManager
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleSales
}
