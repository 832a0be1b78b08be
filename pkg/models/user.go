package models

import "time"

// UserProfile is keyed by the identity provider's user id; accounts
// themselves live with the provider.
type UserProfile struct {
	UserID            string    `gorm:"type:uuid;primary_key" json:"user_id"`
	Name              string    `json:"name"`
	ProfilePictureURL string    `json:"profile_picture_url"`
	IsAdmin           bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profile"
}
