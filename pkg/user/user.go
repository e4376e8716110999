package user

import "time"

// User represents the domain model for a registered wallet owner.
type User struct {
	WalletAddress string    `json:"walletAddress"`
	DOB           string    `json:"dob"`
	BirthTime     string    `json:"birthTime"`
	BirthPlace    string    `json:"birthPlace"`
	CreatedAt     time.Time `json:"createdAt"`
}

// New creates a User from a registration request.
func New(req *RegisterRequest) *User {
	return &User{
		WalletAddress: req.WalletAddress,
		DOB:           req.DOB,
		BirthTime:     req.BirthTime,
		BirthPlace:    req.BirthPlace,
	}
}

// RegisterRequest represents a registration request.
// Registering an already known wallet acts as a login.
type RegisterRequest struct {
	WalletAddress string `json:"walletAddress" validate:"required,min=32,max=64"`
	DOB           string `json:"dob" validate:"required,max=64"`
	BirthTime     string `json:"birthTime" validate:"required,max=32"`
	BirthPlace    string `json:"birthPlace" validate:"required,max=128"`
}

// RegisterResponse represents a registration response
type RegisterResponse struct {
	User    *User  `json:"user"`
	Token   string `json:"token"`
	Created bool   `json:"-"`
}
