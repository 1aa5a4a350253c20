package models

import (
	"strings"
	"time"
)

// User is the profile returned by /auth/login and /auth/signup.
type User struct {
	ID        ID     `json:"id"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// DisplayName prefers the full name, then the username, then the email.
func (u User) DisplayName() string {
	if full := strings.TrimSpace(u.FirstName + " " + u.LastName); full != "" {
		return full
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// AuthResponse is the payload of both auth endpoints.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// Session is the signed-in state of this device. At most one exists.
type Session struct {
	UserID      ID        `json:"userId"`
	DisplayName string    `json:"displayName"`
	Email       string    `json:"email"`
	Token       string    `json:"-"`
	IssuedAt    time.Time `json:"issuedAt"`
}

// Credentials are the login form fields.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the sign-up form.
type Registration struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}
