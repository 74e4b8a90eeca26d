package models

import (
	"time"

	"github.com/google/uuid"
)

// Роли пользователей. Дашборд доступен только для ngo/city/admin.
const (
	RoleUser  = "user"
	RoleNGO   = "ngo"
	RoleCity  = "city"
	RoleAdmin = "admin"
)

// User представляет зарегистрированного пользователя системы
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsDashboardRole сообщает, имеет ли роль доступ к аналитическому дашборду
func IsDashboardRole(role string) bool {
	return role == RoleNGO || role == RoleCity || role == RoleAdmin
}
