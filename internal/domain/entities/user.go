package entities

// UserRole restricts what a caller may do at the HTTP boundary.

type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleAdmin    UserRole = "Admin"
)

// User is the identity-provider projection used for authorization checks and
// for notification content (display name and email). The service never owns
// credential data.
//
// Storage model (DynamoDB):
//   - PK: id (string, uuid)
//   - GSI1 (role-index): role

type User struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Email string   `json:"email"`
	Role  UserRole `json:"role"`
}
