package domain

// Caller is the authenticated actor invoking an operation.
type Caller struct {
	ID   string
	Role string
}

// IsAdmin reports whether the caller holds the admin role.
func (c Caller) IsAdmin() bool { return c.Role == RoleAdmin }

// The functions below form the single authorization policy consulted by the
// request, project, and messaging workflows. They are pure decisions over
// (caller, resource); callers translate a false result into ErrForbidden.

// CanAccessProject decides project visibility: admins see everything, clients
// see their own projects, employees see projects they are assigned to. The
// same rule governs sending and reading project-scoped messages.
func CanAccessProject(caller Caller, p *Project) bool {
	switch caller.Role {
	case RoleAdmin:
		return true
	case RoleClient:
		return caller.ID == p.ClientID
	case RoleEmployee:
		return p.IsAssigned(caller.ID)
	}
	return false
}

// CanReadMessage decides direct-message visibility: only the sender and the
// receiver. Admins get no blanket read access; the admin override applies to
// delete only.
func CanReadMessage(caller Caller, m *Message) bool {
	return caller.ID == m.SenderID || caller.ID == m.ReceiverID
}

// CanMarkRead decides who may flip the read flag: the receiver, nobody else.
func CanMarkRead(caller Caller, m *Message) bool {
	return caller.ID == m.ReceiverID
}

// CanDeleteMessage decides message deletion: an admin or the original sender.
func CanDeleteMessage(caller Caller, m *Message) bool {
	return caller.IsAdmin() || caller.ID == m.SenderID
}

// CanUpdateUser decides profile updates: a user may update themselves;
// only an admin may update another user's record.
func CanUpdateUser(caller Caller, target *User) bool {
	return caller.IsAdmin() || caller.ID == target.ID
}

// CanChangeRole decides role changes: admin only, even on one's own record.
func CanChangeRole(caller Caller) bool {
	return caller.IsAdmin()
}

// CanUpdateProjectStatus decides status execution: the caller must be an
// employee assigned to the project. Admins manage projects through full
// updates, not through the status operation.
func CanUpdateProjectStatus(caller Caller, p *Project) bool {
	return caller.Role == RoleEmployee && p.IsAssigned(caller.ID)
}
