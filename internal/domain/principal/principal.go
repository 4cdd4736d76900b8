package principal

import "strconv"

// ===============================
// Role
// ===============================

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return r, true
	}
	return "", false
}

func (r Role) Valid() bool {
	_, ok := ParseRole(string(r))
	return ok
}

func (r Role) String() string { return string(r) }

// ===============================
// Principal
// ===============================

// Principal is the identity asserted by a session token. Exactly one of the
// id fields is set, matching Role.
type Principal struct {
	CustID  *uint  `json:"custId"`
	StaffID *uint  `json:"staffId"`
	AdminID *uint  `json:"adminId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    Role   `json:"role"`
}

func New(role Role, id uint, name, email string) Principal {
	p := Principal{Name: name, Email: email, Role: role}
	switch role {
	case RoleCustomer:
		p.CustID = &id
	case RoleStaff:
		p.StaffID = &id
	case RoleAdmin:
		p.AdminID = &id
	}
	return p
}

// Identifier returns the id that belongs to the principal's own role.
func (p Principal) Identifier() (uint, bool) {
	var id *uint
	switch p.Role {
	case RoleCustomer:
		id = p.CustID
	case RoleStaff:
		id = p.StaffID
	case RoleAdmin:
		id = p.AdminID
	}
	if id == nil {
		return 0, false
	}
	return *id, true
}

func (p Principal) Subject() string {
	id, ok := p.Identifier()
	if !ok {
		return ""
	}
	return strconv.FormatUint(uint64(id), 10)
}

// Resource names a row owned by a principal of the given kind.
type Resource struct {
	Kind Role
	ID   uint
}

// Owns reports whether the principal is the owner of r. Ids of different
// principal kinds never match each other.
func (p Principal) Owns(r Resource) bool {
	if p.Role != r.Kind {
		return false
	}
	id, ok := p.Identifier()
	return ok && id == r.ID
}

func (p Principal) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}
