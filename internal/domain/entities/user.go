package entities

import (
	"errors"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleStandard Role = "standard"
	RoleAdmin    Role = "admin"
)

const (
	MaxUsernameLen = 50
	MaxEmailLen    = 100
)

type User struct {
	ID        uint
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Email     string
	Password  string // bcrypt hash, never plaintext
	Role      Role
}

func NewUser(username, email, password string) *User {
	now := time.Now()
	return &User{
		CreatedAt: now,
		UpdatedAt: now,
		Username:  username,
		Email:     email,
		Password:  password,
		Role:      RoleStandard,
	}
}

func (u *User) validate() error {
	if u.Username == "" {
		return errors.New("username must not be empty")
	}
	if utf8.RuneCountInString(u.Username) > MaxUsernameLen {
		return errors.New("username must be at most 50 characters")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if utf8.RuneCountInString(u.Email) > MaxEmailLen {
		return errors.New("email must be at most 100 characters")
	}
	if u.Password == "" {
		return errors.New("password must not be empty")
	}
	if u.Role != RoleStandard && u.Role != RoleAdmin {
		return errors.New("unknown role")
	}
	return nil
}

func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}

// SetHashedPassword replaces the stored hash with one derived from the new
// plaintext.
func (u *User) SetHashedPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	u.UpdatedAt = time.Now()
	return nil
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
