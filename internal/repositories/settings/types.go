package settings

// Keys persisted by the widgets
const (
	KeyRouletteOptions         = "rouletteOptions"
	KeyRouletteHistory         = "rouletteHistory"
	KeyRoleAssignmentRoles     = "roleAssignmentRoles"
	KeyRoleAssignmentUsernames = "roleAssignmentUsernames"
	KeyAutoDisableEnabled      = "autoDisableEnabled"
)

// SaveInput contains parameters for saving a value
type SaveInput struct {
	Scope string
	Key   string
	Value string
}

// LoadInput contains parameters for loading a value
type LoadInput struct {
	Scope string
	Key   string
}

// LoadOutput contains the loaded value
type LoadOutput struct {
	Value string
	Found bool
}

// DeleteInput contains parameters for deleting a value
type DeleteInput struct {
	Scope string
	Key   string
}

// ClearInput contains parameters for clearing a scope
type ClearInput struct {
	Scope string
}

// LoadAllInput contains parameters for loading a whole scope
type LoadAllInput struct {
	Scope string
}

// LoadAllOutput contains every value of a scope
type LoadAllOutput struct {
	Values map[string]string
}
