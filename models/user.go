package models

// Role is the authorization category of the authenticated user.
type Role string

const (
	RoleGuest  Role = "GUEST"
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// Credentials is the login request payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser is the registration request payload.
type NewUser struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// Session is the authenticated identity held by the client. Zero value means
// anonymous.
type Session struct {
	Token    string `json:"token"`
	Role     Role   `json:"role"`
	Username string `json:"username"`
}

// Authenticated reports whether a token is present.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Profile is the account detail returned by GET /api/auth/profile.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	Street      string `json:"street"`
	City        string `json:"city"`
	Zip         string `json:"zip"`
	Country     string `json:"country"`
	PhoneNumber string `json:"phoneNumber"`
}

// ProfileUpdate is the partial update payload for PUT /api/auth/profile.
// Empty fields are omitted so the server only touches what was sent.
type ProfileUpdate struct {
	Password    string `json:"password,omitempty"`
	Street      string `json:"street,omitempty"`
	City        string `json:"city,omitempty"`
	Zip         string `json:"zip,omitempty"`
	Country     string `json:"country,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}
