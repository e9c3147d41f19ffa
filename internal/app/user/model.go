package user

import "time"

// User is the raw store record. It carries credential and bookkeeping fields
// that must never reach a response; outward code works with Profile instead.
type User struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	FullName  string    `gorm:"column:fullname" json:"fullname"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Avatar    *string   `json:"avatar,omitempty"`
	Banner    *string   `json:"banner,omitempty"`
	Bio       *string   `json:"bio,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"-"`
}

// Profile is the redacted projection of a User: no password, no timestamps.
// Built as a fresh value, the raw record is never mutated or reused.
type Profile struct {
	ID       uint64  `json:"id"`
	Username string  `json:"username"`
	FullName string  `json:"fullname"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
	Banner   *string `json:"banner"`
	Bio      *string `json:"bio"`
}

func NewProfile(u *User) Profile {
	return Profile{
		ID:       u.ID,
		Username: u.Username,
		FullName: u.FullName,
		Email:    u.Email,
		Avatar:   u.Avatar,
		Banner:   u.Banner,
		Bio:      u.Bio,
	}
}
