package session

// Role is a coarse authorization tag gating access to pages and actions.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"

	// RoleAny matches any authenticated session.
	RoleAny Role = ""
)

// User is the identity carried inside a session token.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  Role   `json:"role,omitempty"`
}

// Session is the authenticated identity and access credential attached to a
// browser for a bounded period. Immutable once issued, replaced wholesale on
// re-login, destroyed on logout or expiry.
type Session struct {
	User        User   `json:"user"`
	AccessToken string `json:"accessToken"`
}

// IsAdmin reports whether the session user carries the admin role.
func (s *Session) IsAdmin() bool {
	return s.User.Role == RoleAdmin
}
