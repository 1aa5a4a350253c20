// Package models defines the records kept by the development backend and
// the JSON shapes it returns.
package models

import "time"

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AuthResult is returned by login and signup.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
