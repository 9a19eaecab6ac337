package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// DefaultAvatar is assigned when a registering user does not supply one.
const DefaultAvatar = "https://lyt-oss-web.oss-cn-beijing.aliyuncs.com/default-avatar.png"

// User represents a blog account. Email is unique among live rows.
type User struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	Username     string     `db:"username" json:"username"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Nickname     string     `db:"nickname" json:"nickname"`
	Avatar       string     `db:"avatar" json:"avatar"`
	Role         string     `db:"role" json:"role"`
	IsActive     bool       `db:"is_active" json:"isActive"`
	LastLoginAt  *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
	DeletedAt    *time.Time `db:"deleted_at" json:"-"`
}

// PublicUser is the sanitized shape returned to clients.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	Avatar    string    `json:"avatar,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credentials and audit fields off a user row.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Nickname:  u.Nickname,
		Avatar:    u.Avatar,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
