package domain

import "strings"

// Courier represents the authenticated delivery employee.
type Courier struct {
	ID           int64
	EmployeeCode string
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	Position     string
	Status       string
	ProfilePhoto string
}

// FullName returns the courier's display name.
func (c Courier) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
