package references

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Type string

const (
	TypeDOI  Type = "DOI"
	TypeURL  Type = "URL"
	TypeText Type = "TEXT"
)

func ValidType(t Type) bool {
	return t == TypeDOI || t == TypeURL || t == TypeText
}

// Reference ids may be assigned by the client, so BeforeCreate only fills
// in a uuid when none was given.
type Reference struct {
	ID            string `gorm:"primaryKey" json:"id"`
	PublicationID string `gorm:"type:uuid;not null;index" json:"publicationId"`

	Type     Type    `gorm:"type:text;not null" json:"type"`
	Text     string  `gorm:"not null" json:"text"`
	Location *string `json:"location"`

	SortIndex int `gorm:"not null;default:0" json:"-"`
}

func (r *Reference) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
