package db

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// User is an account that owns generated blogs.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Blogs    []Blog `json:"-"`
}

// SetPassword hashes and stores the given plain text password.
func (u *User) SetPassword(plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword reports whether plain matches the stored hash.
func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// EnsureUser creates a bcrypt-hashed account when username, email and
// password are all non-empty and no account with that username exists yet.
// Used to seed an initial account from the environment.
func EnsureUser(username, email, password string) error {
	trimmedUser := strings.TrimSpace(username)
	trimmedEmail := strings.TrimSpace(email)
	trimmedPassword := strings.TrimSpace(password)
	if trimmedUser == "" || trimmedEmail == "" || trimmedPassword == "" {
		return nil
	}

	if DB == nil {
		return errors.New("database not initialized")
	}

	var existing User
	if err := DB.Where("username = ?", trimmedUser).First(&existing).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		user := User{Username: trimmedUser, Email: trimmedEmail}
		if err := user.SetPassword(trimmedPassword); err != nil {
			return err
		}
		return DB.Create(&user).Error
	}

	return nil
}
