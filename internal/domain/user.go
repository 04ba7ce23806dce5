package domain

import "time"

type UserRole string

const (
	RoleTenant   UserRole = "TENANT"
	RoleLandlord UserRole = "LANDLORD"
	RoleAdmin    UserRole = "ADMIN"
)

type UserStatus string

const (
	UserStatusActive  UserStatus = "ACTIVE"
	UserStatusBlocked UserStatus = "BLOCKED"
)

type User struct {
	ID           int64      `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone"`
	AvatarURL    string     `json:"avatar_url"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	Bio          string     `json:"bio"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// AuthToken records an issued access token by its JTI so that logout can
// revoke the token before the JWT itself expires.
type AuthToken struct {
	JTI       string    `json:"jti"`
	UserID    int64     `json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
	Revoked   bool      `json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
