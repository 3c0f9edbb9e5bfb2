// internal/auth/session.go
package auth

// Session is the identity every authorization decision is made under. It is
// resolved once at login and passed explicitly into each service call; no
// service reads ambient state to decide permissions.
//
// An empty Role means an unauthenticated guest with no mutation rights.
type Session struct {
    Email      string `json:"email"`
    Role       string `json:"role"`
    Department string `json:"department,omitempty"`
}

func (s Session) IsGuest() bool {
    return s.Role == ""
}
