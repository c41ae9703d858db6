package models

import "time"

// Roles recognised by the API.
const (
	RoleAdmin  = "ADMIN"
	RoleSeller = "SELLER"
)

// Seller represents a platform account: either a seller logging work
// sessions or an administrator reviewing them.
type Seller struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	Role         string    `bson:"role" json:"role"`
	Phone        string    `bson:"phone,omitempty" json:"phone,omitempty"`
	GCash        string    `bson:"gcash,omitempty" json:"gcash,omitempty"`
	PasswordHash string    `bson:"password_hash,omitempty" json:"-"`
	TokenHash    string    `bson:"token_hash,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// IsAdmin reports whether the account carries the admin role.
func (s *Seller) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// SellerUpdateRequest carries the profile fields a seller may change.
type SellerUpdateRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Phone string `json:"phone,omitempty"`
	GCash string `json:"gcash,omitempty"`
}
