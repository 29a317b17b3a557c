package identity

// Identity is the per-request caller context derived from the external
// identity provider's token claims. The core trusts this pairing and never
// re-verifies it; every operation still checks ownership against it.
type Identity struct {
	UserID    string
	CompanyID string
	Role      string
	Email     string
	Name      string
}

const (
	RoleManager  = "manager"
	RoleEmployee = "employee"
)

func (id Identity) IsManager() bool { return id.Role == RoleManager }

func (id Identity) HasCompany() bool { return id.CompanyID != "" }
