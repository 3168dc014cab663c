package types

import "strings"

// Astronomer creates and submits science plans.
type Astronomer struct {
	ID          int    `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email,omitempty"`
	Institution string `json:"institution,omitempty"`
}

// FullName returns "First Last", trimmed.
func (a Astronomer) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

// ScienceObserver validates plans and runs observing programs.
type ScienceObserver struct {
	ID         int    `json:"id"`
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Department string `json:"department,omitempty"`
}

// FullName returns "First Last", falling back to the department.
func (o ScienceObserver) FullName() string {
	name := strings.TrimSpace(o.FirstName + " " + o.LastName)
	if name == "" {
		return o.Department
	}
	return name
}
