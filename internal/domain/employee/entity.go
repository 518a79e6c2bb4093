package employee

import "time"

// Employee entity
type Employee struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash *string
	Phone        *string
	HireDate     time.Time
	IsAdmin      bool
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used in joined read models.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
