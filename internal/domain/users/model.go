package users

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Email    string  `gorm:"not null;uniqueIndex:idx_users_email" json:"email"`
	Password *string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`

	Orcid       *string `gorm:"uniqueIndex:idx_users_orcid" json:"orcid,omitempty"`
	Employment  string  `json:"employment,omitempty"`
	Affiliation string  `json:"affiliation,omitempty"`

	Role string `gorm:"not null;default:'user'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
