package entities

// PermissionScope is how far a permission reaches for the actor.
type PermissionScope string

const (
	ScopeAll   PermissionScope = "all"
	ScopeAdded PermissionScope = "added"
	ScopeOwned PermissionScope = "owned"
	ScopeBoth  PermissionScope = "both"
	ScopeNone  PermissionScope = "none"
)

const ModuleEstimates = "estimates"

// Actor is the authenticated party performing an operation.
type Actor struct {
	UserID      uint
	CompanyID   *uint
	Name        string
	Email       string
	Locale      string
	Roles       []string
	Permissions map[string]PermissionScope
	Modules     []string
}

func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Permission returns the scope granted for name, or ScopeNone.
func (a Actor) Permission(name string) PermissionScope {
	if s, ok := a.Permissions[name]; ok && s != "" {
		return s
	}
	return ScopeNone
}

func (a Actor) HasModule(module string) bool {
	for _, m := range a.Modules {
		if m == module {
			return true
		}
	}
	return false
}

// SameCompany reports whether companyID is the actor's company. Two nil
// companies match.
func (a Actor) SameCompany(companyID *uint) bool {
	if a.CompanyID == nil || companyID == nil {
		return a.CompanyID == nil && companyID == nil
	}
	return *a.CompanyID == *companyID
}
