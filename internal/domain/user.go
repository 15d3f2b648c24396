package domain

import "time"

// User represents a player account as provisioned from a verified identity
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	TribeID   *int      `json:"tribe_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is the caller as described by a verified access token
type Identity struct {
	UserID    string
	Username  string
	Email     string
	FirstName string
	LastName  string
}

// CurrentUserResponse is returned by /users/me
type CurrentUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
}

// PlayerResponse is returned by /users/player
type PlayerResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	TribeID     *int   `json:"tribe_id"`
	HasVillages bool   `json:"has_villages"`
}
