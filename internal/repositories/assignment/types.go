package assignment

import "github.com/KirkDiggler/spinwheel/internal/models"

// SaveInput contains parameters for storing a result
type SaveInput struct {
	Scope       string
	Assignments []models.Assignment
}

// GetInput contains parameters for reading a result
type GetInput struct {
	Scope string
}

// GetOutput contains the stored result in role order
type GetOutput struct {
	Assignments []models.Assignment
}

// ClearInput contains parameters for clearing a result
type ClearInput struct {
	Scope string
}
