package entities

// Role is the marketplace-facing role of a user.
type Role string

const (
	RoleCustomer   Role = "customer"
	RoleContractor Role = "contractor"
	RoleAdmin      Role = "admin"
)

// User is the slice of the identity directory the core reads: role, id and a
// notification address. Authentication itself lives outside this service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
