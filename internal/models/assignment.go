package models

// Assignment pairs a role with the username drawn for it
type Assignment struct {
	// Role is the role text, in the order the roles were entered
	Role string `json:"role"`

	// Username is the username drawn for the role
	Username string `json:"username"`

	// Index is the role's position in the input
	Index int `json:"index"`
}
