package domain

import "time"

type Role string

const (
	RoleGuest Role = "GUEST"
	RoleAdmin Role = "ADMIN"
)

type User struct {
	ID           string `gorm:"primaryKey"`
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string
	Name         string
	Role         Role
	CreatedAt    time.Time
}
