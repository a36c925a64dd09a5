package models

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserByEmail finds the local user record matching an identity-provider email.
func UserByEmail(db *gorm.DB, email string) (*User, error) {
	if email == "" {
		return nil, gorm.ErrRecordNotFound
	}
	user := &User{}
	if err := db.Where("email = ?", email).First(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetOrCreateUser finds a user by email, creating one lazily on first sign-in.
func GetOrCreateUser(db *gorm.DB, email string, provider string) (*User, error) {
	user, err := UserByEmail(db, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "user lookup failed")
	}

	user = &User{Email: email, Provider: provider}
	if err := db.Create(user).Error; err != nil {
		// Two first sign-ins can race on the email unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return UserByEmail(db, email)
		}
		return nil, errors.Wrap(err, "user creation failed")
	}
	return user, nil
}
