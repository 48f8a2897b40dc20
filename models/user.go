package models

import (
	"time"
)

type UserRole string

const (
	RoleOwner    UserRole = "OWNER"
	RoleAdmin    UserRole = "ADMIN"
	RoleEditor   UserRole = "EDITOR"
	RoleReporter UserRole = "REPORTER"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleEditor, RoleReporter:
		return true
	}
	return false
}

type User struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      UserRole  `json:"role" gorm:"type:varchar(20);not null;default:'REPORTER'"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
