package models

import "time"

// Role names known to the service.
const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is an identity record as stored by the credential store. PasswordHash
// never leaves the server.
type User struct {
	ID           string
	Email        string
	UserName     string
	Name         string
	PhoneNumber  string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the public view of a User.
type Profile struct {
	ID          string
	Email       string
	Name        string
	PhoneNumber string
	UserName    string
}

func (u *User) Profile() *Profile {
	return &Profile{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		PhoneNumber: u.PhoneNumber,
		UserName:    u.UserName,
	}
}
