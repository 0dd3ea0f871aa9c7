// Package accountsapi describes the accounts gRPC service: its messages,
// its service descriptor and a typed client. Messages travel as JSON.
package accountsapi

import "time"

// AccountFields carries the optional account attributes. Nil flags are left
// to the server defaults.
type AccountFields struct {
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	Role        string `json:"role,omitempty"`
	IsActive    *bool  `json:"is_active,omitempty"`
	IsStaff     *bool  `json:"is_staff,omitempty"`
	IsSuperuser *bool  `json:"is_superuser,omitempty"`
}

type CreateAccountRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password,omitempty"`
	Fields   AccountFields `json:"fields"`
}

// GetAccountRequest selects an account by ID or, when ID is empty, by email.
type GetAccountRequest struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type Account struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
	IsStaff     bool      `json:"is_staff"`
	IsSuperuser bool      `json:"is_superuser"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PermissionRequest struct {
	AccountID  string `json:"account_id"`
	Permission string `json:"permission"`
}

type HasPermissionResponse struct {
	Allowed bool `json:"allowed"`
}

type ExportResponse struct {
	Key string `json:"key"`
}

type Empty struct{}
