// Package authorization holds the role model and the pure access decisions
// applied across reports, comments, customers and users.
package authorization

// Identity is the authenticated caller as decoded from the access token.
type Identity struct {
	UserID uint
	Email  string
	Role   UserRole
}

// CanViewReport reports whether the caller may read a report owned by ownerID.
// Managers may view any report; sales only their own.
func CanViewReport(id Identity, ownerID uint) bool {
	if id.Role.IsManager() {
		return true
	}
	return id.UserID == ownerID
}

// CanMutateReport reports whether the caller may update or delete a report
// owned by ownerID. Only the owner may, regardless of role.
func CanMutateReport(id Identity, ownerID uint) bool {
	return id.UserID == ownerID
}

// CanListReportsOf reports whether the caller may list reports filtered to
// targetUserID. A sales caller naming another user is denied, not silently
// narrowed.
func CanListReportsOf(id Identity, targetUserID uint) bool {
	if id.Role.IsManager() {
		return true
	}
	return id.UserID == targetUserID
}

// CanCreateComment reports whether the caller may comment on a report.
// Only managers create comments.
func CanCreateComment(id Identity) bool {
	return id.Role.IsManager()
}

// CanMutateComment reports whether the caller may update or delete a comment
// authored by authorID. Author only, even for other managers.
func CanMutateComment(id Identity, authorID uint) bool {
	return id.UserID == authorID
}

// CanManageUsers reports whether the caller may create, update, delete or
// list user records.
func CanManageUsers(id Identity) bool {
	return id.Role.IsManager()
}
