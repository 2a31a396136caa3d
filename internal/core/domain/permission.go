package domain

// Permission is a single capability bit. Permissions combine into a role's
// mask with bitwise OR.
type Permission int

const (
	PermFollow Permission = 1 << iota
	PermComment
	PermWrite
	PermModerate
	PermAdmin
)

// AllPermissions lists every defined flag in ascending bit order.
var AllPermissions = []Permission{PermFollow, PermComment, PermWrite, PermModerate, PermAdmin}

// Recognized role names.
const (
	RoleNameUser          = "User"
	RoleNameModerator     = "Moderator"
	RoleNameAdministrator = "Administrator"
	RoleNameAnonymous     = "AnonymousUser"
)

// defaultRoleName is the role assigned to newly created users.
const defaultRoleName = RoleNameUser

// rolePresets seeds the permission mask for each named role. The anonymous
// role is intentionally absent: it always carries an empty mask.
var rolePresets = map[string][]Permission{
	RoleNameUser:      {PermFollow, PermComment, PermWrite},
	RoleNameModerator: {PermFollow, PermComment, PermWrite, PermModerate},
	RoleNameAdministrator: {
		PermFollow, PermComment, PermWrite, PermModerate, PermAdmin,
	},
}

// Role is a named bundle of permissions owned by at most one user.
type Role struct {
	ID          int64      `json:"id" bson:"_id,omitempty"`
	Name        string     `json:"name" bson:"name" validate:"min=4,max=32"`
	Default     bool       `json:"default" bson:"default"`
	Permissions Permission `json:"permissions" bson:"permissions"`
}

// HasPermission reports whether every bit of perm is set on the role's mask.
func HasPermission(r Role, perm Permission) bool {
	return r.Permissions&perm == perm
}

// AddPermission returns a copy of the role with perm set. Idempotent.
func AddPermission(r Role, perm Permission) Role {
	r.Permissions |= perm
	return r
}

// RemovePermission returns a copy of the role with perm cleared. Idempotent.
func RemovePermission(r Role, perm Permission) Role {
	r.Permissions &^= perm
	return r
}

// ResetPermission returns a copy of the role with an empty mask.
func ResetPermission(r Role) Role {
	r.Permissions = 0
	return r
}

// GetRole builds a role from its named preset, marking the default role.
// Callers must pass one of the four recognized names; an unknown name yields
// a role with an empty mask.
func GetRole(name string) Role {
	r := Role{Name: name, Default: name == defaultRoleName}
	for _, perm := range rolePresets[name] {
		r = AddPermission(r, perm)
	}
	return r
}
