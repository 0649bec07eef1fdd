package domain

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleUser  UserRole = "user"
	RoleAdmin UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// MaxBioLength - ограничение на текст "о себе"
const MaxBioLength = 1000

// User - пользователь площадки. Продавец владеет объявлениями, где SellerID = ID.
type User struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone,omitempty"`
	Role             UserRole  `json:"role"`
	Avatar           string    `json:"avatar,omitempty"`
	RegistrationDate time.Time `json:"registrationDate"`
	Bio              string    `json:"bio,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ProfileUpdate - редактируемые поля профиля. Email и роль здесь не меняются.
type ProfileUpdate struct {
	Name   string
	Phone  string
	Bio    string
	Avatar string
}

func (p ProfileUpdate) Validate() error {
	errs := ValidationErrors{}
	if strings.TrimSpace(p.Name) == "" {
		errs["name"] = "Name is required"
	}
	if len([]rune(p.Bio)) > MaxBioLength {
		errs["bio"] = "Bio is too long"
	}
	return errs.OrNil()
}

// ApplyProfile переносит проверенные поля профиля в пользователя.
func (u *User) ApplyProfile(p ProfileUpdate) {
	u.Name = strings.TrimSpace(p.Name)
	u.Phone = strings.TrimSpace(p.Phone)
	u.Bio = strings.TrimSpace(p.Bio)
	u.Avatar = strings.TrimSpace(p.Avatar)
}
