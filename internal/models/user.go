// Package models содержит доменные сущности agro-community.
package models

import "time"

// Role — закрытый набор ролей пользователя.
type Role string

const (
	RoleFarmer Role = "Farmer"
	RoleBuyer  Role = "Buyer"
	RoleAdmin  Role = "Admin"
)

// Valid сообщает, входит ли роль в допустимый набор.
func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleAdmin:
		return true
	default:
		return false
	}
}

// User — учётная запись.
// Важно:
//   - Phone уникален (уникальный индекс в хранилище);
//   - PasswordHash никогда не сериализуется наружу;
//   - Name служит ключом денормализации аватара в ленте.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Location     string    `json:"location,omitempty"`
	Avatar       string    `json:"avatar,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserPatch — частичное обновление профиля; nil-поля не меняются.
type UserPatch struct {
	Name     *string
	Location *string
	Avatar   *string
	Role     *Role
}

// Session — результат регистрации или входа.
type Session struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}
