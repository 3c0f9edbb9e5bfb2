// internal/model/user.go
package model

const (
    RoleManager   = "manager"
    RoleExecutive = "executive"
)

// User is seeded at initialization and immutable afterwards; there are no
// user-management operations.
type User struct {
    ID         string `json:"id"`
    Name       string `json:"name"`
    Email      string `json:"email"`
    Role       string `json:"role"`
    Department string `json:"department,omitempty"`
    Avatar     string `json:"avatar"`
}
